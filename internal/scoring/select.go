package scoring

import (
	"fmt"

	"torrent-picker/internal/titles"
	"torrent-picker/pkg/types"
)

// TierFallback names a pick made outside the resolution/codec buckets.
const TierFallback = "fallback"

type sizePref int

const (
	smallest sizePref = iota
	largest
)

type bucket struct {
	res   types.Resolution
	codec types.Codec
	pref  sizePref
}

func (b bucket) String() string { return fmt.Sprintf("%s %s", b.res, b.codec) }

// bucketOrder is the preference order. Within an efficient codec the smallest
// release wins; for anything else the largest is taken as the best quality.
var bucketOrder = []bucket{
	{types.Res1080p, types.CodecX265, smallest},
	{types.Res1080p, types.CodecX264, smallest},
	{types.Res1080p, types.CodecOther, largest},
	{types.Res720p, types.CodecX265, smallest},
	{types.Res720p, types.CodecX264, smallest},
	{types.Res720p, types.CodecOther, largest},
}

// Selection is the outcome of ranking one result list.
type Selection struct {
	entries []types.Ranked
	best    int
	Tier    string // winning bucket, e.g. "1080p x265", or TierFallback
}

// Best returns the chosen release.
func (s Selection) Best() (types.Ranked, bool) {
	if s.best < 0 || s.best >= len(s.entries) {
		return types.Ranked{}, false
	}
	return s.entries[s.best], true
}

// BestIndex is the position of the chosen release in the input, or -1.
func (s Selection) BestIndex() int {
	if _, ok := s.Best(); !ok {
		return -1
	}
	return s.best
}

// Entries returns every input result, in input order, with its
// classification and reject reason. The slice is a copy.
func (s Selection) Entries() []types.Ranked {
	out := make([]types.Ranked, len(s.entries))
	copy(out, s.entries)
	return out
}

// Survivors returns the entries that passed the filters.
func (s Selection) Survivors() []types.Ranked {
	var out []types.Ranked
	for _, e := range s.entries {
		if e.Reject == "" {
			out = append(out, e)
		}
	}
	return out
}

// Select filters results against q and picks exactly one release, or none
// when nothing survives. The same input always yields the same pick; size
// ties keep the earlier result.
func Select(results []types.Candidate, q Query) Selection {
	var m *titles.Matcher
	if q.Title != "" {
		mm := titles.NewMatcher(q.Title, q.Year)
		m = &mm
	}

	sel := Selection{entries: make([]types.Ranked, len(results)), best: -1}
	for i, c := range results {
		res, codec := Classify(c.Name)
		why, _ := HardReject(c, q, m)
		sel.entries[i] = types.Ranked{Candidate: c, Resolution: res, Codec: codec, Reject: why}
	}

	for _, b := range bucketOrder {
		if i := sel.pick(b.pref, func(e types.Ranked) bool { return e.Resolution == b.res && e.Codec == b.codec }); i >= 0 {
			sel.best, sel.Tier = i, b.String()
			return sel
		}
	}
	if i := sel.pick(largest, func(types.Ranked) bool { return true }); i >= 0 {
		sel.best, sel.Tier = i, TierFallback
	}
	return sel
}

func (s Selection) pick(pref sizePref, in func(types.Ranked) bool) int {
	best := -1
	for i, e := range s.entries {
		if e.Reject != "" || !in(e) {
			continue
		}
		if best < 0 ||
			(pref == smallest && e.SizeBytes < s.entries[best].SizeBytes) ||
			(pref == largest && e.SizeBytes > s.entries[best].SizeBytes) {
			best = i
		}
	}
	return best
}
