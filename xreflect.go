package bencode

// Utilities that complement std reflect package.

import (
	"reflect"
)

// deepEqual is like reflect.DeepEqual but also supports Dict.
//
// It is needed because reflect.DeepEqual considers two Dicts not-equal even
// with the same content: each Dict is made with its own hash seed. Dicts are
// compared by content, recursively through lists and nested Dicts.
func deepEqual(a, b any) bool {
	switch av := a.(type) {
	case Dict:
		bv, ok := b.(Dict)
		if !ok {
			return false
		}
		if av.Len() != bv.Len() {
			return false
		}
		eq := true
		av.Iter()(func(k string, va any) bool {
			vb, ok := bv.Get_(k)
			if !ok || !deepEqual(va, vb) {
				eq = false
				return false
			}
			return true
		})
		return eq

	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(a, b)
}
