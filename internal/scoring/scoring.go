package scoring

import (
	"regexp"
	"strings"

	"torrent-picker/internal/titles"
	"torrent-picker/pkg/types"
)

// Query is what the caller is looking for.
type Query struct {
	Title       string `json:"title"` // empty skips title matching
	Year        int    `json:"year"`
	SizeCeiling int64  `json:"size_ceiling"` // bytes; <= 0 means unbounded
}

// Reject reasons.
const (
	RejectTitle = "title_mismatch"
	RejectSize  = "over_size_ceiling"
)

type resolutionRule struct {
	res   types.Resolution
	match func(lowerName string) bool
}

type codecRule struct {
	codec types.Codec
	re    *regexp.Regexp
}

// Rules are evaluated in order and the first hit wins, so "1080p" beats
// "720p" for names carrying both.
var (
	resolutionRules = []resolutionRule{
		{types.Res1080p, func(n string) bool { return strings.Contains(n, "1080p") }},
		{types.Res720p, func(n string) bool { return strings.Contains(n, "720p") }},
	}
	codecRules = []codecRule{
		{types.CodecX265, regexp.MustCompile(`x265|h\.?265|hevc`)},
		{types.CodecX264, regexp.MustCompile(`x264|h\.?264`)},
	}
)

// Classify buckets a release name by resolution and codec.
func Classify(name string) (types.Resolution, types.Codec) {
	n := strings.ToLower(name)
	res, codec := types.ResNone, types.CodecOther
	for _, r := range resolutionRules {
		if r.match(n) {
			res = r.res
			break
		}
	}
	for _, r := range codecRules {
		if r.re.MatchString(n) {
			codec = r.codec
			break
		}
	}
	return res, codec
}

// HardReject reports why c cannot be picked at all. m is nil when the query
// carries no title.
func HardReject(c types.Candidate, q Query, m *titles.Matcher) (string, bool) {
	if m != nil && !m.Match(c.Name, titles.Exact) {
		return RejectTitle, true
	}
	if q.SizeCeiling > 0 && c.SizeBytes > q.SizeCeiling {
		return RejectSize, true
	}
	return "", false
}
