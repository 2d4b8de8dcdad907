package bencode

import (
	"io"
)

// Bytes represents a bencoded byte string.
//
// It is a distinct type from string to make explicit that the content is an
// opaque byte sequence (info hashes, peer blobs) rather than text.
type Bytes string

// Builder materializes the parser's event stream into Go values: int64 for
// integers, Bytes for byte strings, []any for lists and Dict for
// dictionaries.
//
// Wire a Builder to a Parser via Callbacks:
//
//	var b bencode.Builder
//	p := bencode.NewParser(8, b.Callbacks())
//	err := p.Dispatch(data)
//	...
//	objv := b.Values()
//
// Each completed top-level value is appended to Values; a single Builder can
// therefore consume a stream of concatenated bencoded documents.
type Builder struct {
	stack []bnode // containers under construction
	out   []any   // completed top-level values
}

// bnode is one container under construction.
type bnode struct {
	key    string // key the container is nested under, if hasKey
	hasKey bool
	isDict bool
	dict   Dict
	list   []any
}

// Callbacks returns the callback set that feeds this builder.
//
// The sibling-advance callbacks are left nil: the builder attaches each value
// as soon as it completes and has no per-element finalization to do.
func (b *Builder) Callbacks() *Callbacks {
	return &Callbacks{
		HitInt:    b.hitInt,
		HitStr:    b.hitStr,
		DictEnter: b.dictEnter,
		DictLeave: b.leave,
		ListEnter: b.listEnter,
		ListLeave: b.leave,
	}
}

// Values returns the completed top-level values, in input order.
func (b *Builder) Values() []any { return b.out }

// Reset discards all accumulated state.
func (b *Builder) Reset() {
	b.stack = b.stack[:0]
	b.out = nil
}

func (b *Builder) hitInt(key []byte, v int64) error {
	b.attach(key, v)
	return nil
}

func (b *Builder) hitStr(key []byte, totalLen int, val []byte, n int) error {
	// string(val) copies: val is only valid during the callback
	b.attach(key, Bytes(val))
	return nil
}

func (b *Builder) dictEnter(key []byte) error {
	b.stack = append(b.stack, bnode{
		key:    string(key),
		hasKey: key != nil,
		isDict: true,
		dict:   NewDict(),
	})
	return nil
}

func (b *Builder) listEnter(key []byte) error {
	b.stack = append(b.stack, bnode{
		key:    string(key),
		hasKey: key != nil,
		list:   []any{},
	})
	return nil
}

// leave serves both DictLeave and ListLeave: the finished container is popped
// and attached to its parent under the key remembered at enter time.
func (b *Builder) leave([]byte) error {
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	var v any
	if n.isDict {
		v = n.dict
	} else {
		v = n.list
	}

	var key []byte
	if n.hasKey {
		key = []byte(n.key)
	}
	b.attach(key, v)
	return nil
}

// attach adds a completed value to the innermost open container, or records
// it as a top-level result.
func (b *Builder) attach(key []byte, v any) {
	if len(b.stack) == 0 {
		b.out = append(b.out, v)
		return
	}
	top := &b.stack[len(b.stack)-1]
	if top.isDict {
		top.dict.Set(string(key), v)
	} else {
		top.list = append(top.list, v)
	}
}

// Decode parses a single bencoded value from data and returns it.
//
// expectedDepth bounds the nesting of the input, as for NewParser. If data
// ends before a complete value was parsed, Decode returns
// io.ErrUnexpectedEOF. Input past the first value is still parsed (and must
// be well-formed) but is not returned.
func Decode(data []byte, expectedDepth int) (any, error) {
	var b Builder
	p := NewParser(expectedDepth, b.Callbacks())
	if err := p.Dispatch(data); err != nil {
		return nil, err
	}
	if len(b.out) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return b.out[0], nil
}
