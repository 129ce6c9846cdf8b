package stream

import (
	"github.com/donkeywon/dedup/set"
	"github.com/zeebo/xxh3"
)

// tracker answers whether a line is seen for the first time.
type tracker interface {
	first(line []byte) bool
}

// exactTracker keeps every distinct line. The lookup with a converted key
// stays allocation free, the line is only copied on insert; the scanner
// reuses its read buffer so the copy is required.
type exactTracker struct {
	seen set.Set[string]
}

func newExactTracker() *exactTracker {
	return &exactTracker{seen: set.New[string]()}
}

func (t *exactTracker) first(line []byte) bool {
	if _, ok := t.seen[string(line)]; ok {
		return false
	}
	t.seen[string(line)] = struct{}{}
	return true
}

// hashTracker keeps 64-bit xxh3 hashes of the lines instead of the lines.
type hashTracker struct {
	seen set.Set[uint64]
}

func newHashTracker() *hashTracker {
	return &hashTracker{seen: set.New[uint64]()}
}

func (t *hashTracker) first(line []byte) bool {
	return t.seen.Add(xxh3.Hash(line))
}
