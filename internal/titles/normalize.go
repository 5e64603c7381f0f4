package titles

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Title is the comparable form of a free-text title or release name.
type Title struct {
	Tokens  []string
	Text    string // tokens joined by single spaces
	Compact string // tokens with no separator
}

var (
	lower = cases.Lower(language.Und)

	conjunctions = strings.NewReplacer("&", "and", "+", "and")
	apostrophes  = strings.NewReplacer("'", "", "’", "", "‘", "", "ʼ", "")
)

// Normalize composes s to NFC and lowercases it, spells out "&" and "+", drops apostrophes and turns
// every other non-alphanumeric rune into a separator. Apostrophes go before
// the generic punctuation pass so "Don't" becomes "dont", not "don t".
func Normalize(s string) Title {
	s = lower.String(norm.NFC.String(s))
	s = conjunctions.Replace(s)
	s = apostrophes.Replace(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, s)

	tokens := strings.Fields(s)
	if tokens == nil {
		tokens = []string{}
	}
	return Title{
		Tokens:  tokens,
		Text:    strings.Join(tokens, " "),
		Compact: strings.Join(tokens, ""),
	}
}

func (t Title) Empty() bool { return len(t.Tokens) == 0 }

func (t Title) String() string { return t.Text }
