//go:build gofuzz

package bencode

import (
	"fmt"
)

const fuzzDepth = 64

func Fuzz(data []byte) int {
	// whole = parse(data) - this tests things like stack handling on
	// deeply nested or malformed input
	var whole Builder
	p := NewParser(fuzzDepth, whole.Callbacks())
	if err := p.Dispatch(data); err != nil {
		return 0
	}

	// assert parse(data, byte at a time) == parse(data)
	//
	// chunk boundaries must never change the outcome: every input that
	// parses in one call must parse identically when fed byte by byte.
	var chunked Builder
	p = NewParser(fuzzDepth, chunked.Callbacks())
	for i := range data {
		if err := p.Dispatch(data[i : i+1]); err != nil {
			panic(fmt.Sprintf("byte-at-a-time dispatch error at %d: %s\ninput: %q", i, err, data))
		}
	}

	a, b := whole.Values(), chunked.Values()
	if len(a) != len(b) {
		panic(fmt.Sprintf("value count mismatch: %d != %d\ninput: %q", len(a), len(b), data))
	}
	for i := range a {
		if !deepEqual(a[i], b[i]) {
			panic(fmt.Sprintf("value #%d differs:\nwhole:   %#v\nchunked: %#v\ninput: %q", i, a[i], b[i], data))
		}
	}

	return 1
}
