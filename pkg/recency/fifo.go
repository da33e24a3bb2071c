package recency

// FifoSet keeps unique values in arrival order: eviction order is the order
// of first insertion and is never affected by queries. It is what remains of
// an LruSet once hits stop promoting, and serves as the recency-blind
// baseline policy.
//
// A FifoSet must not be mutated concurrently.
type FifoSet[T comparable] struct {
	elements []T
}

var _ RecencySet[int] = (*FifoSet[int])(nil)

// NewFifoSet creates an empty set.
func NewFifoSet[T comparable]() *FifoSet[T] {
	return &FifoSet[T]{}
}

// IsEmpty reports whether the set holds no elements.
func (s *FifoSet[T]) IsEmpty() bool {
	return len(s.elements) == 0
}

// Len returns the number of elements currently stored.
func (s *FifoSet[T]) Len() int {
	return len(s.elements)
}

// Insert adds v at the back of the arrival order if it is absent and
// reports whether it was added.
func (s *FifoSet[T]) Insert(v T) bool {
	if s.Contains(v) {
		return false
	}
	s.elements = append(s.elements, v)
	return true
}

// Query reports whether v is present. Arrival order ignores touches, so
// unlike LruSet a hit changes nothing.
func (s *FifoSet[T]) Query(v T) bool {
	return s.Contains(v)
}

// Contains reports whether v is present.
func (s *FifoSet[T]) Contains(v T) bool {
	for _, e := range s.elements {
		if e == v {
			return true
		}
	}
	return false
}

// Peek returns the oldest element without removing it.
func (s *FifoSet[T]) Peek() (T, error) {
	if len(s.elements) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.elements[0], nil
}

// Remove detaches and returns the oldest element.
func (s *FifoSet[T]) Remove() (T, error) {
	if len(s.elements) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	v := s.elements[0]
	s.elements = s.elements[1:]
	return v, nil
}

// Values returns the elements in arrival order, oldest first.
func (s *FifoSet[T]) Values() []T {
	out := make([]T, len(s.elements))
	copy(out, s.elements)
	return out
}

// Clear removes every element.
func (s *FifoSet[T]) Clear() {
	s.elements = nil
}
