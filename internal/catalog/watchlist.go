package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Movie is one catalog entry.
type Movie struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
}

func (m Movie) String() string { return fmt.Sprintf("%s (%d)", m.Title, m.Year) }

// Match pairs a movie with the torrent file that satisfied it.
type Match struct {
	Movie Movie  `json:"movie"`
	File  string `json:"file"`
}

type Report struct {
	Matched   []Match `json:"matched"`
	Unmatched []Movie `json:"unmatched"`
}

// ReadWatchlist reads a CSV with a header row containing at least "title"
// and "year" columns. Extra columns are ignored.
func ReadWatchlist(r io.Reader) ([]Movie, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read watchlist header: %w", err)
	}
	ti, yi := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case "title":
			ti = i
		case "year":
			yi = i
		}
	}
	if ti < 0 || yi < 0 {
		return nil, fmt.Errorf("watchlist header %v: need title and year columns", header)
	}

	var out []Movie
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read watchlist: %w", err)
		}
		if ti >= len(rec) || yi >= len(rec) {
			return nil, fmt.Errorf("watchlist line %d: short record", line)
		}
		year, err := strconv.Atoi(strings.TrimSpace(rec[yi]))
		if err != nil {
			return nil, fmt.Errorf("watchlist line %d: bad year %q", line, rec[yi])
		}
		out = append(out, Movie{Title: strings.TrimSpace(rec[ti]), Year: year})
	}
}

// Check looks every movie up in files.
func Check(movies []Movie, files []string) Report {
	var rep Report
	for _, m := range movies {
		if f, ok := FindTorrent(files, m.Title, m.Year); ok {
			rep.Matched = append(rep.Matched, Match{Movie: m, File: f})
		} else {
			rep.Unmatched = append(rep.Unmatched, m)
		}
	}
	return rep
}
