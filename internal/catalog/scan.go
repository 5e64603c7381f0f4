// Package catalog answers "do we already have this movie?" over a listing of
// release names.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"torrent-picker/internal/titles"
)

// TorrentExt is the suffix of files FindTorrent considers.
const TorrentExt = ".torrent"

// Passes is the order in which year modes are tried. A tolerant match is only
// reported when no candidate matched the exact year.
var Passes = []titles.YearMode{titles.Exact, titles.Tolerant}

// Result describes a successful lookup.
type Result struct {
	Name  string
	Index int
	Mode  titles.YearMode
}

// Find returns the first candidate that matches title/year, trying every
// candidate with the exact year before any with a tolerant year. Ties between
// candidates are broken by input order, so callers that need determinism must
// pass a stable ordering.
func Find(names []string, title string, year int) (Result, bool) {
	m := titles.NewMatcher(title, year)
	for _, mode := range Passes {
		for i, name := range names {
			if m.Match(name, mode) {
				return Result{Name: name, Index: i, Mode: mode}, true
			}
		}
	}
	return Result{}, false
}

// FindMatch is Find without the match details.
func FindMatch(names []string, title string, year int) (string, bool) {
	r, ok := Find(names, title, year)
	return r.Name, ok
}

// FindTorrent matches .torrent filenames by their name without extension and
// returns the full filename. Other files are skipped.
func FindTorrent(files []string, title string, year int) (string, bool) {
	var names, full []string
	for _, f := range files {
		if !strings.HasSuffix(f, TorrentExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(f, TorrentExt))
		full = append(full, f)
	}
	r, ok := Find(names, title, year)
	if !ok {
		return "", false
	}
	return full[r.Index], true
}

// ListTorrents returns the .torrent filenames in dir sorted by name. A missing
// directory is an empty listing.
func ListTorrents(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), TorrentExt) {
			continue
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out, nil
}
