// Package set provides a minimal hash set used for membership tracking.
package set

// Set is a hash set of comparable values.
type Set[T comparable] map[T]struct{}

func New[T comparable]() Set[T] {
	return make(Set[T])
}

// NewN returns a Set with room for n values.
func NewN[T comparable](n int) Set[T] {
	return make(Set[T], n)
}

// Of returns a Set containing items.
func Of[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add inserts item and reports whether it was not present before.
func (s Set[T]) Add(item T) bool {
	if _, ok := s[item]; ok {
		return false
	}
	s[item] = struct{}{}
	return true
}

func (s Set[T]) Has(item T) bool {
	_, ok := s[item]
	return ok
}

func (s Set[T]) Del(item T) {
	delete(s, item)
}

func (s Set[T]) Len() int {
	return len(s)
}

// Items returns the elements in unspecified order.
func (s Set[T]) Items() []T {
	items := make([]T, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	return items
}
