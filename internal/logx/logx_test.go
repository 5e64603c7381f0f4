package logx

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *clock { return &clock{t: time.Unix(1_700_000_000, 0)} }

func writeLine(w *Writer, s string) {
	fmt.Fprintln(w, s)
}

func TestWriter_AllowDeny(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{Allow: `^\[(size|pick)\]`, Deny: `noisy`})

	writeLine(w, "[size] 3 torrents")
	writeLine(w, "[pick] noisy detail")
	writeLine(w, "[http] GET /")
	writeLine(w, "[pick] selected")

	assert.Equal(t, "[size] 3 torrents\n[pick] selected\n", buf.String())
}

func TestWriter_ReportsLengthForDroppedLines(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{Deny: `.`})
	n, err := w.Write([]byte("[size] dropped\n"))
	assert.NoError(t, err)
	assert.Equal(t, 15, n)
	assert.Empty(t, buf.String())
}

func TestWriter_Dedup(t *testing.T) {
	var buf bytes.Buffer
	c := newClock()
	w := New(&buf, Options{Window: 3 * time.Second})
	w.now = c.now

	writeLine(w, "[scan] same")
	c.advance(time.Second)
	writeLine(w, "[scan] same")
	writeLine(w, "[scan] other")
	c.advance(3 * time.Second)
	writeLine(w, "[scan] same")

	assert.Equal(t, "[scan] same\n[scan] other\n[scan] same\n", buf.String())
}

func TestWriter_DedupDisabled(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{})
	writeLine(w, "x")
	writeLine(w, "x")
	assert.Equal(t, "x\nx\n", buf.String())
}

func TestWriter_GCExpiresKeys(t *testing.T) {
	var buf bytes.Buffer
	c := newClock()
	w := New(&buf, Options{Window: time.Second})
	w.now = c.now

	for i := 0; i < 10; i++ {
		writeLine(w, fmt.Sprintf("line %d", i))
	}
	c.advance(2 * time.Second)
	writeLine(w, "fresh")

	assert.Len(t, w.lastSeen, 1)
}

func TestWriter_InvalidPatternIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{Allow: `([`})
	writeLine(w, "anything")
	assert.Equal(t, []string{`([`}, w.Invalid())
	assert.Equal(t, "anything\n", buf.String())
}
