// Package bencode is a streaming, push-style parser for bencoded data - the
// encoding used by BitTorrent metainfo files and tracker responses.
//
// The parser is SAX-style: it consumes input in arbitrary chunks and invokes
// caller-supplied callbacks at structural events (integer seen, string seen,
// dictionary/list entered and left, sibling boundary). It never builds a value
// tree itself, which keeps it suitable for very large inputs and for callers
// that want to pick out a few fields without materializing the whole document.
//
// Feed input with Dispatch; chunk boundaries may fall anywhere, including in
// the middle of a length prefix, a string body or an integer:
//
//	p := bencode.NewParser(8, &bencode.Callbacks{
//		HitInt: func(key []byte, v int64) error {
//			fmt.Printf("%s = %d\n", key, v)
//			return nil
//		},
//	})
//	err := p.Dispatch(chunk1)
//	...
//	err = p.Dispatch(chunk2)
//
// The key and value byte slices passed to callbacks alias buffers owned by the
// parser and are valid only for the duration of the callback; callbacks that
// need to retain them must copy.
//
// For callers that do want an in-memory representation, Builder assembles the
// event stream into Go values:
//
//	obj, err := bencode.Decode(data, 8)
//
// The following table summarizes the mapping of bencode types to Go:
//
//	bencode		Go
//	-------		--
//
//	integer		int64
//	byte string	bencode.Bytes
//	list		[]any
//	dictionary	bencode.Dict
//
// Integers are restricted to nonnegative decimal digit runs, matching the
// subset emitted by mainline BitTorrent software; a leading '-' is a syntax
// error. Byte strings are opaque: any byte value is preserved, including NUL,
// and no UTF-8 validation is performed. Dictionary keys are not required to
// be sorted; callers wanting strict metainfo validation layer that on top.
package bencode
