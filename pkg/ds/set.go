package ds

type void struct{}

var empty void

// Set is an unordered collection of unique values. It makes no recency
// promises; the recency-ordered containers live in pkg/recency.
type Set[T comparable] interface {
	Add(item T)
	Remove(item T)
	Contains(item T) bool
	Size() int
	IsEmpty() bool
	ToSlice() []T
	Clear()
}

// NewSet creates an empty map-backed set.
func NewSet[T comparable]() Set[T] {
	return &mapSet[T]{data: make(map[T]void)}
}

type mapSet[T comparable] struct {
	data map[T]void
}

func (s *mapSet[T]) Add(item T) {
	s.data[item] = empty
}

func (s *mapSet[T]) Remove(item T) {
	delete(s.data, item)
}

func (s *mapSet[T]) Contains(item T) bool {
	_, exists := s.data[item]
	return exists
}

func (s *mapSet[T]) Size() int {
	return len(s.data)
}

func (s *mapSet[T]) IsEmpty() bool {
	return len(s.data) == 0
}

func (s *mapSet[T]) ToSlice() []T {
	slice := make([]T, 0, len(s.data))
	for item := range s.data {
		slice = append(slice, item)
	}
	return slice
}

func (s *mapSet[T]) Clear() {
	s.data = make(map[T]void)
}
