package dedup

import "iter"

// Seq filters seq down to the first occurrence of each distinct value.
// The result is lazy; every range over it tracks its own seen set, so the
// returned sequence is reusable even though it carries state while ranging.
func Seq[V comparable](seq iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		seen := make(map[V]struct{})
		for v := range seq {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// SeqBy is Seq keyed by a projection, the first value wins per key.
func SeqBy[V any, K comparable](seq iter.Seq[V], key func(V) K) iter.Seq[V] {
	return func(yield func(V) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}
