package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

var (
	torrentsDir       = "./torrents"
	sizeCeiling int64 = 4 << 30 // 4 GiB
	sizeWorkers       = 8

	// logging
	logFilePath   = ""
	logAllowRegex = `^\[(init|size|find|scan|rank|pick|inspect)\]`
	logDenyRegex  = ""
	logDedupWin   = 3 * time.Second
)

// Load reads the environment. Call it after godotenv has populated it.
// Unparseable values keep their defaults.
func Load() {
	torrentsDir = getenv("PICKER_TORRENTS_DIR", torrentsDir)
	sizeCeiling = getenvSize("PICKER_SIZE_CEILING", sizeCeiling)
	if n := getenvInt64("PICKER_SIZE_WORKERS", int64(sizeWorkers)); n > 0 {
		sizeWorkers = int(n)
	}

	logFilePath = getenv("LOG_FILE", logFilePath)
	logAllowRegex = getenvRaw("LOG_ALLOW", logAllowRegex)
	logDenyRegex = getenv("LOG_DENY", logDenyRegex)
	logDedupWin = getenvDuration("LOG_DEDUP_WINDOW", logDedupWin)
}

// getters
func TorrentsDir() string           { return torrentsDir }
func SizeCeiling() int64            { return sizeCeiling }
func SizeWorkers() int              { return sizeWorkers }
func LogFilePath() string           { return logFilePath }
func LogAllowRegex() string         { return logAllowRegex }
func LogDenyRegex() string          { return logDenyRegex }
func LogDedupWindow() time.Duration { return logDedupWin }
func SetTorrentsDir(dir string)     { torrentsDir = dir }
func SetSizeCeiling(n int64)        { sizeCeiling = n }

// helpers
func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

// getenvRaw distinguishes "unset" from "set to empty" so LOG_ALLOW= turns the
// allow filter off.
func getenvRaw(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func getenvInt64(k string, def int64) int64 {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// getenvSize accepts plain bytes or a humanized size ("4 GB", "3.5GiB").
// Decimal unit names are read as binary, like tracker listings.
func getenvSize(k string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	u := strings.ToUpper(v)
	for _, unit := range []string{"KB", "MB", "GB", "TB"} {
		if strings.HasSuffix(u, unit) {
			v = v[:len(v)-2] + unit[:1] + "iB"
			break
		}
	}
	if n, err := humanize.ParseBytes(v); err == nil {
		return int64(n)
	}
	return def
}
