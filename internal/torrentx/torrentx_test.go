package torrentx

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	abencode "github.com/anacrolix/torrent/bencode"
	"github.com/anacrolix/torrent/metainfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"torrent-picker/internal/bencode"
)

func buildTorrent(t *testing.T, info metainfo.Info) ([]byte, metainfo.Hash) {
	t.Helper()
	infoBytes, err := abencode.Marshal(info)
	require.NoError(t, err)
	mi := metainfo.MetaInfo{
		Announce:  "udp://tracker.example:1337/announce",
		InfoBytes: infoBytes,
	}
	var buf bytes.Buffer
	require.NoError(t, mi.Write(&buf))
	return buf.Bytes(), mi.HashInfoBytes()
}

func TestInspect_SingleFile(t *testing.T) {
	data, ih := buildTorrent(t, metainfo.Info{
		Name:        "Movie.Title.2020.1080p.x265-GRP.mkv",
		PieceLength: 1 << 18,
		Pieces:      make([]byte, 20),
		Length:      1500,
	})

	s, err := Inspect(data)
	require.NoError(t, err)
	assert.Equal(t, "Movie.Title.2020.1080p.x265-GRP.mkv", s.Name)
	assert.Equal(t, int64(1500), s.TotalSize)
	assert.Equal(t, ih.HexString(), s.InfoHash)
	require.Len(t, s.Files, 1)

	m, err := metainfo.ParseMagnetURI(s.Magnet)
	require.NoError(t, err)
	assert.Equal(t, ih, m.InfoHash)
	assert.Equal(t, s.Name, m.DisplayName)
}

func TestInspect_MultiFile(t *testing.T) {
	data, _ := buildTorrent(t, metainfo.Info{
		Name:        "Movie.Title.2020",
		PieceLength: 1 << 18,
		Pieces:      make([]byte, 20),
		Files: []metainfo.FileInfo{
			{Length: 300, Path: []string{"movie.mkv"}},
			{Length: 700, Path: []string{"extras", "featurette.mkv"}},
		},
	})

	s, err := Inspect(data)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), s.TotalSize)
	assert.Equal(t, []bencode.File{
		{Path: "movie.mkv", Length: 300},
		{Path: "extras/featurette.mkv", Length: 700},
	}, s.Files)
}

func TestInspect_Errors(t *testing.T) {
	_, err := Inspect([]byte("<!DOCTYPE html><html>login required</html>"))
	assert.ErrorIs(t, err, ErrNotTorrent)

	_, err = Inspect(nil)
	assert.ErrorIs(t, err, ErrNotTorrent)

	_, err = Inspect([]byte("d3:foo"))
	var fe *bencode.FormatError
	assert.True(t, errors.As(err, &fe))

	_, err = Inspect([]byte("d4:infod4:name1:xee"))
	assert.ErrorIs(t, err, bencode.ErrMissingSize)
}

func TestInfoHashOf(t *testing.T) {
	const hex = "c9e15763f722f23e98a29decdfae341b98d53056"
	want := metainfo.NewHashFromHex(hex)

	got, err := InfoHashOf(hex)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = InfoHashOf(MagnetFor(want, "Some Name"))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = InfoHashOf("not-a-hash")
	assert.Error(t, err)
}

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "Movie.Title.2020.1080p.x265-GRP", SafeFileName("Movie.Title.2020.1080p.x265-GRP"))
	assert.Equal(t, "Movie Title (2020) 1080p", SafeFileName("Movie: Title (2020) [1080p]?"))
	assert.Equal(t, "Amélie.2001", SafeFileName("Amélie*.2001"))
	assert.Equal(t, "torrent", SafeFileName("***"))
	assert.Len(t, []rune(SafeFileName(strings.Repeat("é", 300))), 200)
}
