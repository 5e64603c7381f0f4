package config

import (
	"io"
	"log"
	"os"

	"torrent-picker/internal/logx"
)

// SetupLogging routes the standard logger through the logx filter. Logs go to
// stderr so command output on stdout stays machine-readable.
func SetupLogging() {
	var out io.Writer = os.Stderr
	if p := LogFilePath(); p != "" {
		f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Printf("WARN opening LOG_FILE=%q: %v", p, err)
		} else {
			out = io.MultiWriter(os.Stderr, f)
		}
	}

	log.SetFlags(0)
	log.SetPrefix("")

	filter := logx.New(out, logx.Options{
		Allow:  LogAllowRegex(),
		Deny:   LogDenyRegex(),
		Window: LogDedupWindow(),
	})
	log.SetOutput(filter)
	for _, p := range filter.Invalid() {
		log.Printf("[init] ignoring invalid log pattern %q", p)
	}
	log.Printf("[init] logging configured (dedup=%s allow=%q deny=%q)", LogDedupWindow(), LogAllowRegex(), LogDenyRegex())
}
