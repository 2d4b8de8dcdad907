package bencode

// Dictionary type produced by Builder for bencoded dictionaries.

import (
	"fmt"
	"hash/maphash"
	"sort"

	"github.com/aristanetworks/gomap"
)

// Dict represents a bencoded dictionary.
//
// Keys are raw byte strings held as Go strings; any byte sequence, including
// NUL and non-UTF-8 bytes, is a valid key. Iteration order is arbitrary -
// bencode prescribes sorted keys on the wire, but the parser does not require
// it, so Dict does not either.
//
// Note: similarly to builtin map Dict is pointer-like type: its zero-value
// represents nil dictionary that is empty and invalid to use Set on.
type Dict struct {
	m *gomap.Map[string, any]
}

func eqKey(a, b string) bool { return a == b }

// NewDict returns new empty dictionary.
func NewDict() Dict {
	return NewDictWithSizeHint(0)
}

// NewDictWithSizeHint returns new empty dictionary with preallocated space for size items.
func NewDictWithSizeHint(size int) Dict {
	return Dict{m: gomap.NewHint[string, any](size, eqKey, maphash.String)}
}

// NewDictWithData returns new dictionary with preset data.
//
// kv should be key₁, value₁, key₂, value₂, ... with string keys.
func NewDictWithData(kv ...any) Dict {
	l := len(kv)
	if l%2 != 0 {
		panic("odd number of arguments")
	}
	l /= 2
	d := NewDictWithSizeHint(l)
	for i := 0; i < l; i++ {
		k, ok := kv[2*i].(string)
		if !ok {
			panic(fmt.Sprintf("key %T is not a string", kv[2*i]))
		}
		d.Set(k, kv[2*i+1])
	}
	return d
}

// Get returns the value associated with key.
//
// nil is returned if the key is not present in the dictionary.
func (d Dict) Get(key string) any {
	value, _ := d.Get_(key)
	return value
}

// Get_ is comma-ok version of Get.
func (d Dict) Get_(key string) (value any, ok bool) {
	return d.m.Get(key)
}

// Set sets key to be associated with value.
func (d Dict) Set(key string, value any) {
	d.m.Set(key, value)
}

// Del removes key from the dictionary.
func (d Dict) Del(key string) {
	d.m.Delete(key)
}

// Len returns the number of items in the dictionary.
func (d Dict) Len() int {
	return d.m.Len()
}

// Iter returns iterator over all elements in the dictionary.
//
// The order to visit entries is arbitrary.
func (d Dict) Iter() /* iter.Seq2 */ func(yield func(string, any) bool) {
	it := d.m.Iter()
	return func(yield func(string, any) bool) {
		for it.Next() {
			cont := yield(it.Key(), it.Elem())
			if !cont {
				break
			}
		}
	}
}

// String returns human-readable representation of the dictionary.
func (d Dict) String() string {
	return d.sprintf("%v")
}

// GoString returns detailed human-readable representation of the dictionary.
func (d Dict) GoString() string {
	return fmt.Sprintf("%T%s", d, d.sprintf("%#v"))
}

// sprintf serves String and GoString.
func (d Dict) sprintf(format string) string {
	type KV struct{ k, v string }
	vkv := make([]KV, 0, d.Len())
	d.Iter()(func(k string, v any) bool {
		vkv = append(vkv, KV{
			k: bquote(k),
			v: fmt.Sprintf(format, v),
		})
		return true
	})

	sort.Slice(vkv, func(i, j int) bool {
		return vkv[i].k < vkv[j].k
	})

	s := "{"
	for i, kv := range vkv {
		if i > 0 {
			s += ", "
		}
		s += kv.k + ": " + kv.v
	}

	s += "}"
	return s
}
