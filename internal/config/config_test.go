package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func resetDefaults(t *testing.T) {
	t.Helper()
	saved := []any{torrentsDir, sizeCeiling, sizeWorkers, logFilePath, logAllowRegex, logDenyRegex, logDedupWin}
	t.Cleanup(func() {
		torrentsDir = saved[0].(string)
		sizeCeiling = saved[1].(int64)
		sizeWorkers = saved[2].(int)
		logFilePath = saved[3].(string)
		logAllowRegex = saved[4].(string)
		logDenyRegex = saved[5].(string)
		logDedupWin = saved[6].(time.Duration)
	})
}

func TestLoad_Defaults(t *testing.T) {
	resetDefaults(t)
	Load()
	assert.Equal(t, "./torrents", TorrentsDir())
	assert.Equal(t, int64(4<<30), SizeCeiling())
	assert.Equal(t, 8, SizeWorkers())
	assert.Equal(t, 3*time.Second, LogDedupWindow())
	assert.NotEmpty(t, LogAllowRegex())
}

func TestLoad_FromEnv(t *testing.T) {
	resetDefaults(t)
	t.Setenv("PICKER_TORRENTS_DIR", " /srv/torrents ")
	t.Setenv("PICKER_SIZE_CEILING", "2.5 GB")
	t.Setenv("PICKER_SIZE_WORKERS", "3")
	t.Setenv("LOG_ALLOW", "")
	t.Setenv("LOG_DEDUP_WINDOW", "500ms")
	Load()

	assert.Equal(t, "/srv/torrents", TorrentsDir())
	assert.Equal(t, int64(5<<29), SizeCeiling())
	assert.Equal(t, 3, SizeWorkers())
	assert.Equal(t, "", LogAllowRegex())
	assert.Equal(t, 500*time.Millisecond, LogDedupWindow())
}

func TestLoad_BadValuesKeepDefaults(t *testing.T) {
	resetDefaults(t)
	t.Setenv("PICKER_SIZE_CEILING", "lots")
	t.Setenv("PICKER_SIZE_WORKERS", "-4")
	t.Setenv("LOG_DEDUP_WINDOW", "soon")
	Load()

	assert.Equal(t, int64(4<<30), SizeCeiling())
	assert.Equal(t, 8, SizeWorkers())
	assert.Equal(t, 3*time.Second, LogDedupWindow())
}

func TestGetenvSize(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1073741824", 1 << 30},
		{"4 GB", 4 << 30},
		{"4GiB", 4 << 30},
		{"700 mb", 700 << 20},
		{"0", 0},
		{"", 42},
		{"big", 42},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Setenv("TEST_SIZE", tt.in)
			assert.Equal(t, tt.want, getenvSize("TEST_SIZE", 42))
		})
	}
}
