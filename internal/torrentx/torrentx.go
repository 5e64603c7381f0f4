package torrentx

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/anacrolix/torrent/metainfo"

	"torrent-picker/internal/bencode"
)

// ErrNotTorrent marks payloads that are not bencoded torrents at all, which is
// what a tracker hands back as an HTML error page.
var ErrNotTorrent = errors.New("not a torrent file")

// Summary is what we report about one .torrent payload.
type Summary struct {
	Name      string         `json:"name"`
	InfoHash  string         `json:"info_hash"`
	Magnet    string         `json:"magnet"`
	TotalSize int64          `json:"total_size"`
	Files     []bencode.File `json:"files"`
}

// Validate rejects payloads that cannot be a torrent before any decoding.
func Validate(data []byte) error {
	if len(data) == 0 || data[0] != 'd' {
		preview := data
		if len(preview) > 64 {
			preview = preview[:64]
		}
		return fmt.Errorf("%w (starts with %q)", ErrNotTorrent, preview)
	}
	return nil
}

// Inspect decodes a .torrent payload. Size and file list come from our own
// decoder; the info hash is computed over the raw info dict by metainfo.
func Inspect(data []byte) (Summary, error) {
	if err := Validate(data); err != nil {
		return Summary{}, err
	}
	v, err := bencode.Decode(data)
	if err != nil {
		return Summary{}, err
	}
	md, err := bencode.ParseMetadata(v)
	if err != nil {
		return Summary{}, err
	}
	mi, err := metainfo.Load(bytes.NewReader(data))
	if err != nil {
		return Summary{}, fmt.Errorf("load metainfo: %w", err)
	}
	ih := mi.HashInfoBytes()
	return Summary{
		Name:      md.Name,
		InfoHash:  ih.HexString(),
		Magnet:    MagnetFor(ih, md.Name),
		TotalSize: md.TotalSize,
		Files:     md.Files,
	}, nil
}

// MagnetFor builds a tracker-less magnet link.
func MagnetFor(ih metainfo.Hash, name string) string {
	m := "magnet:?xt=urn:btih:" + strings.ToUpper(ih.HexString())
	if name != "" {
		m += "&dn=" + url.QueryEscape(name)
	}
	return m
}

// InfoHashOf accepts a magnet link or a 40-char hex info hash.
func InfoHashOf(id string) (metainfo.Hash, error) {
	id = strings.TrimSpace(id)
	if strings.HasPrefix(id, "magnet:") {
		m, err := metainfo.ParseMagnetURI(id)
		if err != nil {
			return metainfo.Hash{}, err
		}
		if m.InfoHash == (metainfo.Hash{}) {
			return metainfo.Hash{}, fmt.Errorf("magnet without info hash: %q", id)
		}
		return m.InfoHash, nil
	}
	if len(id) == 40 && strings.IndexFunc(id, func(r rune) bool {
		return !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F'))
	}) == -1 {
		return metainfo.NewHashFromHex(strings.ToUpper(id)), nil
	}
	return metainfo.Hash{}, fmt.Errorf("unrecognized id: %q", id)
}

var unsafeName = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.()]+`)

// SafeFileName strips characters that do not belong in a download filename
// and caps the result at 200 runes.
func SafeFileName(name string) string {
	n := unsafeName.ReplaceAllString(name, "")
	if r := []rune(n); len(r) > 200 {
		n = string(r[:200])
	}
	n = strings.TrimSpace(n)
	if n == "" {
		n = "torrent"
	}
	return n
}
