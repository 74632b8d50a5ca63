package processor

// OrderedSet keeps unique values in the order they were first added.
type OrderedSet[T comparable] struct {
	seen  map[T]struct{}
	items []T
}

func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{seen: make(map[T]struct{})}
}

// Add inserts v and reports whether it was not already present.
func (s *OrderedSet[T]) Add(v T) bool {
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Values returns a copy of the set contents in insertion order.
func (s *OrderedSet[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
