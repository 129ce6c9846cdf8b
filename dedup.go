// Package dedup removes duplicate values from sequences while preserving
// the order of first occurrence.
package dedup

import "slices"

const minLen = 2

// Dedup returns a new slice containing each distinct value of s exactly
// once, in first-occurrence order. The input is never mutated and the
// result never shares memory with it.
//
// Membership is tracked in a hash set, one pass, O(n).
func Dedup[S ~[]E, E comparable](s S) S {
	if len(s) < minLen {
		return slices.Clone(s)
	}

	result := make([]E, 0, len(s))
	seen := make(map[E]struct{}, len(s))

	for _, item := range s {
		if _, ok := seen[item]; ok {
			continue
		}

		seen[item] = struct{}{}
		result = append(result, item)
	}

	return result
}

// DedupBy is Dedup keyed by a projection: the first element wins for each
// distinct key(e). Useful when E itself is not comparable or when equality
// is defined by a subset of the value.
func DedupBy[S ~[]E, E any, K comparable](s S, key func(E) K) S {
	if len(s) < minLen {
		return slices.Clone(s)
	}

	result := make([]E, 0, len(s))
	seen := make(map[K]struct{}, len(s))

	for _, item := range s {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		result = append(result, item)
	}

	return result
}

// DedupFunc is the linear-scan variant: each element is compared against
// the result built so far with eq, no hashing involved. O(n²), only worth
// it for small inputs or element types with no useful key projection.
// eq must be symmetric.
func DedupFunc[S ~[]E, E any](s S, eq func(a, b E) bool) S {
	if len(s) < minLen {
		return slices.Clone(s)
	}

	result := make([]E, 0, len(s))

	for _, item := range s {
		if slices.ContainsFunc(result, func(r E) bool { return eq(item, r) }) {
			continue
		}
		result = append(result, item)
	}

	return result
}

// DedupInPlace filters s within its own backing array and returns the
// truncated slice. The prefix of the input is overwritten; callers that
// still need the original must use Dedup instead.
func DedupInPlace[S ~[]E, E comparable](s S) S {
	if len(s) < minLen {
		return s
	}

	seen := make(map[E]struct{}, len(s))
	out := s[:0]

	for _, item := range s {
		if _, ok := seen[item]; ok {
			continue
		}

		seen[item] = struct{}{}
		out = append(out, item)
	}

	return out
}
