package titles

import (
	"strconv"
	"strings"
)

// YearMode selects which release years a match accepts.
type YearMode int

const (
	// Exact accepts only the catalog year.
	Exact YearMode = iota
	// Tolerant accepts the year before and the year after, but not the
	// catalog year itself; callers run it as a separate pass after Exact.
	Tolerant
)

func (m YearMode) String() string {
	if m == Tolerant {
		return "tolerant"
	}
	return "exact"
}

// Years lists the years tested for year under mode.
func (m YearMode) Years(year int) []int {
	if m == Tolerant {
		return []int{year - 1, year + 1}
	}
	return []int{year}
}

// Matches reports whether candidateName names the release of title in year.
//
// The year has to appear as a standalone token and the tokens before it have
// to begin with the title: "Movie.Title.Extended.2020.1080p" matches
// "Movie Title" but "Other.Movie.Title.2020" does not. Compact forms are
// compared too, anchored at token boundaries, so "Spider-Man" and
// "Spiderman" meet without "Alien" matching "Aliens".
func Matches(candidateName, title string, year int, mode YearMode) bool {
	return NewMatcher(title, year).Match(candidateName, mode)
}

// Matcher holds a normalized catalog entry for matching many candidates.
type Matcher struct {
	title Title
	year  int
}

func NewMatcher(title string, year int) Matcher {
	return Matcher{title: Normalize(title), year: year}
}

func (m Matcher) Title() Title { return m.title }
func (m Matcher) Year() int    { return m.year }

func (m Matcher) Match(candidateName string, mode YearMode) bool {
	if m.title.Empty() {
		return false
	}
	cand := Normalize(candidateName)
	for _, y := range mode.Years(m.year) {
		ys := strconv.Itoa(y)
		for i, tok := range cand.Tokens {
			if tok == ys && m.prefixMatches(cand.Tokens[:i]) {
				return true
			}
		}
	}
	return false
}

// prefixMatches checks the tokens preceding a year token against the title.
func (m Matcher) prefixMatches(prefix []string) bool {
	if len(prefix) == 0 {
		return false
	}
	text := strings.Join(prefix, " ")
	if text == m.title.Text || strings.HasPrefix(text, m.title.Text+" ") {
		return true
	}

	var compact strings.Builder
	for _, tok := range prefix {
		compact.WriteString(tok)
		if compact.Len() >= len(m.title.Compact) {
			break
		}
	}
	return compact.String() == m.title.Compact
}
