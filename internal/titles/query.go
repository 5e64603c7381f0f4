package titles

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonWord        = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
	spaces         = regexp.MustCompile(`\s+`)
	releaseYear    = regexp.MustCompile(`^(.+?)\s+((?:19|20)\d{2})\b`)
	trailingYear   = regexp.MustCompile(`^(.+?)\s+(\d{4})\s*$`)
	releaseSepRepl = strings.NewReplacer(".", " ", "_", " ")
)

// SearchQuery builds the text sent to a search provider: punctuation becomes
// spaces and the year, when set, is appended.
func SearchQuery(title string, year int) string {
	q := nonWord.ReplaceAllString(title, " ")
	q = strings.TrimSpace(spaces.ReplaceAllString(q, " "))
	if year > 0 {
		q += " " + strconv.Itoa(year)
	}
	return strings.TrimSpace(q)
}

// ExtractTitleYear splits a release name such as "Movie.Title.2024.1080p"
// into its title and year.
func ExtractTitleYear(release string) (string, int, bool) {
	m := releaseYear.FindStringSubmatch(releaseSepRepl.Replace(release))
	if m == nil {
		return "", 0, false
	}
	y, _ := strconv.Atoi(m[2])
	return strings.TrimSpace(m[1]), y, true
}

// ParseRequest splits free text like "Movie Name 2024" into title and year.
// The year is 0 when the text does not end in a four-digit number.
func ParseRequest(text string) (string, int) {
	text = strings.TrimSpace(text)
	m := trailingYear.FindStringSubmatch(text)
	if m == nil {
		return text, 0
	}
	y, _ := strconv.Atoi(m[2])
	return strings.TrimSpace(m[1]), y
}
