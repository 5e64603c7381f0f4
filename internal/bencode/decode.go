package bencode

import (
	"fmt"
	"math"
)

// MaxDepth bounds container nesting.
const MaxDepth = 1000

// FormatError reports malformed bencode input.
type FormatError struct {
	Offset int
	Msg    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bencode: %s at offset %d", e.Msg, e.Offset)
}

func formatErr(off int, format string, args ...any) error {
	return &FormatError{Offset: off, Msg: fmt.Sprintf(format, args...)}
}

// Decode parses the first complete value in data. Bytes following that value
// are ignored.
func Decode(data []byte) (Value, error) {
	v, _, err := DecodeAt(data, 0)
	return v, err
}

// DecodeAt parses one value starting at off and returns it along with the
// offset just past it.
func DecodeAt(data []byte, off int) (Value, int, error) {
	if off < 0 || off > len(data) {
		return Value{}, off, formatErr(off, "offset out of range")
	}
	return decodeValue(data, off, 0)
}

func decodeValue(data []byte, off, depth int) (Value, int, error) {
	if off >= len(data) {
		return Value{}, off, formatErr(off, "unexpected end of input")
	}
	switch c := data[off]; {
	case c == 'i':
		return decodeInt(data, off)
	case c >= '0' && c <= '9':
		return decodeString(data, off)
	case c == 'l':
		return decodeList(data, off, depth+1)
	case c == 'd':
		return decodeDict(data, off, depth+1)
	default:
		return Value{}, off, formatErr(off, "unexpected byte %q", c)
	}
}

func decodeInt(data []byte, off int) (Value, int, error) {
	start := off + 1
	end := start
	for end < len(data) && data[end] != 'e' {
		end++
	}
	if end >= len(data) {
		return Value{}, off, formatErr(off, "unterminated integer")
	}
	n, err := parseInt(data[start:end])
	if err != nil {
		return Value{}, off, formatErr(start, "%s", err.Error())
	}
	return Int(n), end + 1, nil
}

type intError string

func (e intError) Error() string { return string(e) }

func parseInt(digits []byte) (int64, error) {
	neg := false
	if len(digits) > 0 && digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return 0, intError("empty integer")
	}
	if digits[0] == '0' {
		if len(digits) > 1 {
			return 0, intError("leading zero in integer")
		}
		if neg {
			return 0, intError("negative zero")
		}
		return 0, nil
	}
	// accumulate as a negative number so math.MinInt64 fits
	var n int64
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, intError(fmt.Sprintf("invalid digit %q in integer", c))
		}
		d := int64(c - '0')
		if n < (math.MinInt64+d)/10 {
			return 0, intError("integer overflows int64")
		}
		n = n*10 - d
	}
	if !neg {
		if n == math.MinInt64 {
			return 0, intError("integer overflows int64")
		}
		n = -n
	}
	return n, nil
}

func decodeString(data []byte, off int) (Value, int, error) {
	colon := off
	length := 0
	for colon < len(data) && data[colon] != ':' {
		c := data[colon]
		if c < '0' || c > '9' {
			return Value{}, off, formatErr(colon, "invalid byte %q in string length", c)
		}
		if length > (len(data)-int(c-'0'))/10 {
			return Value{}, off, formatErr(off, "string length exceeds input")
		}
		length = length*10 + int(c-'0')
		colon++
	}
	if colon >= len(data) {
		return Value{}, off, formatErr(off, "missing ':' after string length")
	}
	start := colon + 1
	if length > len(data)-start {
		return Value{}, off, formatErr(off, "string length %d exceeds remaining %d bytes", length, len(data)-start)
	}
	b := make([]byte, length)
	copy(b, data[start:start+length])
	return Bytes(b), start + length, nil
}

func decodeList(data []byte, off, depth int) (Value, int, error) {
	if depth > MaxDepth {
		return Value{}, off, formatErr(off, "nesting deeper than %d", MaxDepth)
	}
	items := []Value{}
	pos := off + 1
	for {
		if pos >= len(data) {
			return Value{}, off, formatErr(off, "unterminated list")
		}
		if data[pos] == 'e' {
			return NewList(items...), pos + 1, nil
		}
		v, next, err := decodeValue(data, pos, depth)
		if err != nil {
			return Value{}, off, err
		}
		items = append(items, v)
		pos = next
	}
}

func decodeDict(data []byte, off, depth int) (Value, int, error) {
	if depth > MaxDepth {
		return Value{}, off, formatErr(off, "nesting deeper than %d", MaxDepth)
	}
	d := Value{kind: Dict, keys: []string{}, dict: map[string]Value{}}
	pos := off + 1
	for {
		if pos >= len(data) {
			return Value{}, off, formatErr(off, "unterminated dict")
		}
		if data[pos] == 'e' {
			return d, pos + 1, nil
		}
		if c := data[pos]; c < '0' || c > '9' {
			return Value{}, off, formatErr(pos, "dict key must be a string, got %q", c)
		}
		k, next, err := decodeString(data, pos)
		if err != nil {
			return Value{}, off, err
		}
		key := string(k.s)
		if _, dup := d.dict[key]; dup {
			return Value{}, off, formatErr(pos, "duplicate dict key %q", key)
		}
		if next >= len(data) {
			return Value{}, off, formatErr(next, "missing value for key %q", key)
		}
		v, after, err := decodeValue(data, next, depth)
		if err != nil {
			return Value{}, off, err
		}
		d.keys = append(d.keys, key)
		d.dict[key] = v
		pos = after
	}
}
