package bencode

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrMissingSize is returned for metadata that decoded fine but whose info
// dict carries neither a length nor a files list.
var ErrMissingSize = errors.New("bencode: info has neither length nor files")

// File is one payload file of a multi-file torrent.
type File struct {
	Path   string `json:"path"`
	Length int64  `json:"length"`
}

// TorrentMetadata is the subset of a decoded .torrent this module cares about.
type TorrentMetadata struct {
	Name      string `json:"name"`
	Files     []File `json:"files,omitempty"`
	TotalSize int64  `json:"total_size"`
}

// TotalSize returns info.length when present, else the sum of
// info.files[].length. Negative lengths and sums past int64 are rejected.
func TotalSize(meta Value) (int64, error) {
	info, ok := meta.Get("info")
	if !ok {
		return 0, ErrMissingSize
	}
	if n, ok := lengthOf(info); ok {
		if n < 0 {
			return 0, fmt.Errorf("%w: negative length %d", ErrMissingSize, n)
		}
		return n, nil
	}
	files, ok := info.Get("files")
	if !ok {
		return 0, ErrMissingSize
	}
	items, ok := files.List()
	if !ok {
		return 0, fmt.Errorf("%w: files is a %s", ErrMissingSize, files.Kind())
	}
	var total int64
	for i, f := range items {
		n, ok := lengthOf(f)
		if !ok {
			return 0, fmt.Errorf("%w: files[%d] has no length", ErrMissingSize, i)
		}
		if n < 0 {
			return 0, fmt.Errorf("%w: files[%d] has negative length %d", ErrMissingSize, i, n)
		}
		if n > math.MaxInt64-total {
			return 0, fmt.Errorf("%w: files overflow int64 at files[%d]", ErrMissingSize, i)
		}
		total += n
	}
	return total, nil
}

func lengthOf(v Value) (int64, bool) {
	l, ok := v.Get("length")
	if !ok {
		return 0, false
	}
	return l.Int()
}

// TorrentSize decodes raw .torrent bytes and returns the payload size.
func TorrentSize(data []byte) (int64, error) {
	meta, err := Decode(data)
	if err != nil {
		return 0, err
	}
	return TotalSize(meta)
}

// ParseMetadata derives the name, file list and total size of a decoded
// torrent. Single-file torrents report one File named after the torrent.
func ParseMetadata(meta Value) (TorrentMetadata, error) {
	size, err := TotalSize(meta)
	if err != nil {
		return TorrentMetadata{}, err
	}
	info, _ := meta.Get("info")
	var md TorrentMetadata
	md.TotalSize = size
	if name, ok := info.Get("name"); ok {
		md.Name, _ = name.Text()
	}

	if _, single := lengthOf(info); single {
		md.Files = []File{{Path: md.Name, Length: size}}
		return md, nil
	}
	files, _ := info.Get("files")
	items, _ := files.List()
	for _, f := range items {
		n, _ := lengthOf(f)
		md.Files = append(md.Files, File{Path: filePath(f), Length: n})
	}
	return md, nil
}

func filePath(f Value) string {
	p, ok := f.Get("path")
	if !ok {
		return ""
	}
	parts, ok := p.List()
	if !ok {
		return ""
	}
	segs := make([]string, 0, len(parts))
	for _, part := range parts {
		if s, ok := part.Text(); ok {
			segs = append(segs, s)
		}
	}
	return strings.Join(segs, "/")
}
