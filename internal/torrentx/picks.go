package torrentx

import (
	"errors"
	"log"

	"torrent-picker/internal/scoring"
	"torrent-picker/pkg/types"
)

var ErrNoCandidate = errors.New("no acceptable candidate")

// Choose ranks search results and returns the selection. ErrNoCandidate is
// returned, together with the full selection, when nothing survives.
func Choose(results []types.Candidate, q scoring.Query) (scoring.Selection, error) {
	sel := scoring.Select(results, q)
	best, ok := sel.Best()
	if !ok {
		log.Printf("[pick] no candidate for %q (%d) among %d results (ceiling=%s)",
			q.Title, q.Year, len(results), FormatSize(q.SizeCeiling))
		return sel, ErrNoCandidate
	}
	log.Printf("[pick] selected (%s, %s): %s", sel.Tier, FormatSize(best.SizeBytes), best.Name)
	return sel, nil
}
