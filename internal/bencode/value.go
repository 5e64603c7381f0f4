package bencode

// Kind tags the variant held by a Value.
type Kind uint8

const (
	Invalid Kind = iota
	Integer
	ByteString
	List
	Dict
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case ByteString:
		return "string"
	case List:
		return "list"
	case Dict:
		return "dict"
	default:
		return "invalid"
	}
}

// Value is an immutable decoded bencode node. The zero Value is Invalid.
type Value struct {
	kind  Kind
	n     int64
	s     []byte
	items []Value
	keys  []string
	dict  map[string]Value
}

// Entry is one key/value pair of a dict, in input order.
type Entry struct {
	Key   string
	Value Value
}

func Int(n int64) Value     { return Value{kind: Integer, n: n} }
func Bytes(b []byte) Value  { return Value{kind: ByteString, s: b} }
func String(s string) Value { return Value{kind: ByteString, s: []byte(s)} }
func NewList(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: List, items: items}
}

// NewDict builds a dict keeping the order of first appearance; a repeated
// key overwrites the earlier value.
func NewDict(entries ...Entry) Value {
	v := Value{kind: Dict, keys: make([]string, 0, len(entries)), dict: make(map[string]Value, len(entries))}
	for _, e := range entries {
		if _, ok := v.dict[e.Key]; !ok {
			v.keys = append(v.keys, e.Key)
		}
		v.dict[e.Key] = e.Value
	}
	return v
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Int() (int64, bool) {
	if v.kind != Integer {
		return 0, false
	}
	return v.n, true
}

func (v Value) Bytes() ([]byte, bool) {
	if v.kind != ByteString {
		return nil, false
	}
	return v.s, true
}

// Text returns a byte string as Go text; invalid UTF-8 is kept as is.
func (v Value) Text() (string, bool) {
	if v.kind != ByteString {
		return "", false
	}
	return string(v.s), true
}

func (v Value) List() ([]Value, bool) {
	if v.kind != List {
		return nil, false
	}
	return v.items, true
}

// Get looks a key up in a dict. It reports false for missing keys and for
// non-dict values.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != Dict {
		return Value{}, false
	}
	e, ok := v.dict[key]
	return e, ok
}

// Entries returns the dict pairs in input order.
func (v Value) Entries() []Entry {
	if v.kind != Dict {
		return nil
	}
	out := make([]Entry, 0, len(v.keys))
	for _, k := range v.keys {
		out = append(out, Entry{Key: k, Value: v.dict[k]})
	}
	return out
}

// Len is the number of items of a list, pairs of a dict or bytes of a string.
func (v Value) Len() int {
	switch v.kind {
	case ByteString:
		return len(v.s)
	case List:
		return len(v.items)
	case Dict:
		return len(v.keys)
	}
	return 0
}

// Interface converts the tree into plain Go values: int64, []byte, []any and
// map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case Integer:
		return v.n
	case ByteString:
		return v.s
	case List:
		out := make([]any, len(v.items))
		for i, it := range v.items {
			out[i] = it.Interface()
		}
		return out
	case Dict:
		out := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			out[k] = v.dict[k].Interface()
		}
		return out
	}
	return nil
}
