package titles

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches_Exact(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		title     string
		year      int
		want      bool
	}{
		{"dotted release", "Movie.Title.2020.1080p.x265-GRP", "Movie Title", 2020, true},
		{"parenthesised year", "Movie Title (2020) [1080p]", "Movie Title", 2020, true},
		{"edition after title", "Movie.Title.Extended.Cut.2020.720p", "Movie Title", 2020, true},
		{"ampersand vs and", "Fast.and.Furious.2009.1080p", "Fast & Furious", 2009, true},
		{"apostrophe in title", "Oceans.Eleven.2001.1080p", "Ocean's Eleven", 2001, true},
		{"apostrophe in release", "Don't.Look.Up.2021.1080p", "Dont Look Up", 2021, true},
		{"split vs joined", "Spiderman.2002.1080p", "Spider-Man", 2002, true},
		{"joined vs split", "Spider.Man.2002.Extended.1080p", "Spiderman", 2002, true},
		{"numeric title", "1917.2019.1080p.BluRay.x264", "1917", 2019, true},
		{"title equals year", "1984.1984.1080p", "1984", 1984, true},
		{"title ends in a year", "Blade.Runner.2049.2017.1080p", "Blade Runner 2049", 2017, true},
		{"case insensitive", "THE.MATRIX.1999.1080P", "the matrix", 1999, true},

		{"wrong year", "Movie.Title.2020.1080p", "Movie Title", 2019, false},
		{"title is longer word", "Aliens.1986.1080p", "Alien", 1986, false},
		{"extra leading words", "Other.Movie.Title.2020.1080p", "Movie Title", 2020, false},
		{"title words scattered after year", "Title.2020.Movie.1080p", "Movie Title", 2020, false},
		{"year glued to text", "Movie.Title.2020p.1080p", "Movie Title", 2020, false},
		{"year missing", "Movie.Title.1080p.x264", "Movie Title", 2020, false},
		{"sequel suffix", "The.Matrix.Reloaded.2003.1080p", "The Matrix", 1999, false},
		{"empty title", "Movie.2020", "", 2020, false},
		{"punctuation-only title", "Movie.2020", "!!", 2020, false},
		{"year first", "2020.Movie.Title.1080p", "Movie Title", 2020, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.candidate, tt.title, tt.year, Exact))
		})
	}
}

func TestMatches_Tolerant(t *testing.T) {
	c := "Movie.Title.2020.1080p.x265-GRP"

	assert.True(t, Matches(c, "Movie Title", 2020, Exact))
	assert.False(t, Matches(c, "Movie Title", 2021, Exact))
	assert.True(t, Matches(c, "Movie Title", 2021, Tolerant))
	assert.True(t, Matches(c, "Movie Title", 2019, Tolerant))
	// tolerant mode tests only the neighbours, never the catalog year
	assert.False(t, Matches(c, "Movie Title", 2020, Tolerant))
	assert.False(t, Matches(c, "Movie Title", 2022, Tolerant))
}

func TestMatches_PerturbedTitleFollowedByYear(t *testing.T) {
	titles := []struct {
		title string
		year  int
	}{
		{"The Grand Budapest Hotel", 2014},
		{"Harry Potter and the Sorcerer's Stone", 2001},
		{"Mission: Impossible - Fallout", 2018},
		{"Lock, Stock and Two Smoking Barrels", 1998},
		{"Crouching Tiger, Hidden Dragon", 2000},
	}
	perturb := []func(string) string{
		func(s string) string { return s },
		func(s string) string { return dotted(s) },
		func(s string) string { return "[" + s + "]" },
		func(s string) string { return underscored(s) },
	}
	for _, tt := range titles {
		for i, p := range perturb {
			cand := fmt.Sprintf("%s.%d.1080p.WEB-DL", p(tt.title), tt.year)
			t.Run(fmt.Sprintf("%s/%d", tt.title, i), func(t *testing.T) {
				assert.True(t, Matches(cand, tt.title, tt.year, Exact), cand)
				assert.False(t, Matches(cand, tt.title, tt.year+1, Exact), cand)
				assert.True(t, Matches(cand, tt.title, tt.year+1, Tolerant), cand)
			})
		}
	}
}

func TestMatches_DecomposedUnicode(t *testing.T) {
	const nfd = "Ame\u0301lie.2001.1080p"
	assert.True(t, Matches(nfd, "Amélie", 2001, Exact))
	assert.True(t, Matches("Amélie.2001.1080p", "Ame\u0301lie", 2001, Exact))
}

func TestMatcher_Reuse(t *testing.T) {
	m := NewMatcher("Dune", 2021)
	assert.Equal(t, "dune", m.Title().Text)
	assert.Equal(t, 2021, m.Year())
	assert.True(t, m.Match("Dune.2021.2160p", Exact))
	assert.False(t, m.Match("Dune.1984.1080p", Exact))
	assert.True(t, m.Match("Dune.2020.1080p", Tolerant))
}

func TestYearMode_Years(t *testing.T) {
	assert.Equal(t, []int{2020}, Exact.Years(2020))
	assert.Equal(t, []int{2019, 2021}, Tolerant.Years(2020))
	assert.Equal(t, "exact", Exact.String())
	assert.Equal(t, "tolerant", Tolerant.String())
}

func dotted(s string) string {
	return Normalize(s).Text
}

func underscored(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r == ' ' {
			out[i] = '_'
		}
	}
	return string(out)
}
