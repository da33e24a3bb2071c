// Package recency provides generic set containers that track how recently
// each element was used and evict in policy order. The containers are not
// safe for concurrent use; a caller that needs concurrent access must
// serialize externally.
package recency

import "errors"

// ErrEmpty is returned by Peek and Remove when the set holds no elements.
var ErrEmpty = errors.New("set is empty")

// RecencySet is a set of unique values with a policy-defined eviction order.
type RecencySet[T comparable] interface {
	// IsEmpty reports whether the set holds no elements.
	IsEmpty() bool

	// Len returns the number of elements currently stored.
	Len() int

	// Insert adds v and reports whether it was absent. Inserting a value
	// that is already present is a no-op and never changes eviction order.
	Insert(v T) bool

	// Query reports whether v is present. Policies that track recency mark
	// a hit as the most recently used element as a side effect.
	Query(v T) bool

	// Contains reports whether v is present without touching it.
	Contains(v T) bool

	// Peek returns the next eviction candidate without removing it,
	// or ErrEmpty when the set is empty.
	Peek() (T, error)

	// Remove detaches and returns the next eviction candidate,
	// or ErrEmpty when the set is empty.
	Remove() (T, error)

	// Values returns the elements in eviction order, candidate first.
	Values() []T

	// Clear removes every element.
	Clear()
}
