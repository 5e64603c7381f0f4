package torrentx

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"

	"torrent-picker/pkg/types"
)

// ReadResults decodes a JSON array of search results as written by the
// search collaborator. Entries without size_bytes get it from their size text.
func ReadResults(r io.Reader) ([]types.Candidate, error) {
	var out []types.Candidate
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	for i := range out {
		if out[i].SizeBytes == 0 && out[i].SizeText != "" {
			out[i].SizeBytes = ParseSize(out[i].SizeText)
		}
	}
	return out, nil
}

var sizeText = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(TB|GB|MB|KB)`)

// ParseSize converts "1.45 GB" or "850 MB" to bytes. Units are binary
// multiples, as tracker listings mean them. Unparseable text is 0.
func ParseSize(s string) int64 {
	m := sizeText.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0
	}
	unit := strings.ToUpper(m[2])
	n, err := humanize.ParseBytes(m[1] + " " + unit[:1] + "iB")
	if err != nil {
		return 0
	}
	return int64(n)
}

// FormatSize renders n with IEC units.
func FormatSize(n int64) string {
	if n <= 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(n))
}
