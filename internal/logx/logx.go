package logx

import (
	"io"
	"regexp"
	"strings"
	"sync"
	"time"
)

// Options configures a Writer. Empty patterns disable the matching filter;
// a pattern that fails to compile is ignored and reported by Invalid.
type Options struct {
	Allow  string
	Deny   string
	Window time.Duration
}

// Writer is a filter + de-dup io.Writer that sits between the standard logger
// and its real destination.
//   - deny (optional): lines matching it are dropped
//   - allow (optional): if set, only lines matching it pass
//   - window: identical lines seen within it are dropped
type Writer struct {
	dst         io.Writer
	allow, deny *regexp.Regexp
	window      time.Duration
	invalid     []string

	mu       sync.Mutex
	lastSeen map[string]time.Time
	lastGC   time.Time
	now      func() time.Time
}

func New(dst io.Writer, opts Options) *Writer {
	w := &Writer{dst: dst, window: opts.Window, lastSeen: make(map[string]time.Time), now: time.Now}
	w.allow = w.compile(opts.Allow)
	w.deny = w.compile(opts.Deny)
	return w
}

func (w *Writer) compile(pattern string) *regexp.Regexp {
	if strings.TrimSpace(pattern) == "" {
		return nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		w.invalid = append(w.invalid, pattern)
		return nil
	}
	return re
}

// Invalid lists the patterns that did not compile.
func (w *Writer) Invalid() []string { return w.invalid }

func (w *Writer) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\r\n")

	if w.deny != nil && w.deny.MatchString(line) {
		return len(p), nil
	}
	if w.allow != nil && !w.allow.MatchString(line) {
		return len(p), nil
	}

	if w.window > 0 {
		now := w.now()
		w.mu.Lock()
		if last, ok := w.lastSeen[line]; ok && now.Sub(last) < w.window {
			w.mu.Unlock()
			return len(p), nil
		}
		w.lastSeen[line] = now
		w.gc(now)
		w.mu.Unlock()
	}

	return w.dst.Write(p)
}

// gc drops expired keys at most once per window. Caller holds mu.
func (w *Writer) gc(now time.Time) {
	if now.Sub(w.lastGC) < w.window {
		return
	}
	w.lastGC = now
	for k, t := range w.lastSeen {
		if now.Sub(t) >= w.window {
			delete(w.lastSeen, k)
		}
	}
}
