package recency

import (
	"fmt"
	"iter"
	"strings"

	"github.com/sirupsen/logrus"
)

// node is a link in the forward-only chain. Each node is owned by exactly
// one set and is referenced only by its predecessor or the head marker.
type node[T comparable] struct {
	value T
	next  *node[T]
}

// LruSet keeps unique values ordered by how recently they were used: the
// head of the chain is the least recently used element, the tail the most
// recently used. Membership checks walk the chain, so Insert, Query and
// Contains are O(n) while Peek and Remove are O(1). There is deliberately
// no hash index; the linear scan is part of the structure's contract.
//
// Every mutation only ever needs the immediate predecessor of the node it
// acts on, and a forward traversal always has that predecessor at hand, so
// the chain carries no backward links.
//
// An LruSet must not be mutated concurrently.
type LruSet[T comparable] struct {
	head *node[T] // least recently used, next eviction candidate
	tail *node[T] // most recently used
	size int
	log  *logrus.Entry
}

var _ RecencySet[int] = (*LruSet[int])(nil)

// LruOption configures an LruSet on construction.
type LruOption[T comparable] func(*LruSet[T])

// WithLogger attaches a logger; insertions, promotions and evictions are
// reported at debug level.
func WithLogger[T comparable](log *logrus.Entry) LruOption[T] {
	return func(s *LruSet[T]) {
		s.log = log
	}
}

// WithValues inserts the given values in order, the first value becoming
// the least recently used element.
func WithValues[T comparable](values ...T) LruOption[T] {
	return func(s *LruSet[T]) {
		for _, v := range values {
			s.Insert(v)
		}
	}
}

// NewLruSet creates an empty set.
func NewLruSet[T comparable](opts ...LruOption[T]) *LruSet[T] {
	s := &LruSet[T]{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsEmpty reports whether the set holds no elements.
func (s *LruSet[T]) IsEmpty() bool {
	return s.size == 0
}

// Len returns the number of elements currently stored.
func (s *LruSet[T]) Len() int {
	return s.size
}

// Insert adds v as the most recently used element if no equal value is
// already present. A duplicate insert is a no-op: it does not refresh
// recency. Reports whether v was added.
func (s *LruSet[T]) Insert(v T) bool {
	for n := s.head; n != nil; n = n.next {
		if n.value == v {
			return false
		}
	}
	s.push(&node[T]{value: v})
	if s.log != nil {
		s.log.Debugf("inserted %v as most recently used", v)
	}
	return true
}

// Query reports whether v is present. A hit promotes the element to the
// most recently used position by relinking its node after the tail; the
// stored value is never copied. A miss changes nothing.
func (s *LruSet[T]) Query(v T) bool {
	var prev *node[T]
	for n := s.head; n != nil; n = n.next {
		if n.value == v {
			s.promote(prev, n)
			if s.log != nil {
				s.log.Debugf("promoted %v to most recently used", v)
			}
			return true
		}
		prev = n
	}
	return false
}

// Contains reports whether v is present. Unlike Query it never reorders.
func (s *LruSet[T]) Contains(v T) bool {
	for n := s.head; n != nil; n = n.next {
		if n.value == v {
			return true
		}
	}
	return false
}

// Peek returns the least recently used element without removing it.
func (s *LruSet[T]) Peek() (T, error) {
	if s.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	return s.head.value, nil
}

// Remove detaches the least recently used element and returns its value,
// or ErrEmpty when the set is empty. Eviction candidates live at the head
// precisely so that this operation stays O(1).
func (s *LruSet[T]) Remove() (T, error) {
	if s.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := s.head
	s.head = n.next
	if s.head == nil {
		s.tail = nil
	}
	n.next = nil
	s.size--
	if s.log != nil {
		s.log.Debugf("evicted least recently used %v", n.value)
	}
	return n.value, nil
}

// Values returns the elements from least to most recently used.
func (s *LruSet[T]) Values() []T {
	out := make([]T, 0, s.size)
	for n := s.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// All iterates from least to most recently used without touching recency.
func (s *LruSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Clear removes every element. Links are severed one by one so a node
// still referenced elsewhere cannot keep its successors reachable.
func (s *LruSet[T]) Clear() {
	for n := s.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	s.head = nil
	s.tail = nil
	s.size = 0
}

// Clone returns a deep copy: a fresh chain holding copies of every value in
// the same order, sharing no nodes with s. The clone keeps the same logger.
func (s *LruSet[T]) Clone() *LruSet[T] {
	out := &LruSet[T]{log: s.log}
	for n := s.head; n != nil; n = n.next {
		out.push(&node[T]{value: n.value})
	}
	return out
}

// CopyFrom replaces the contents of s with a deep copy of src, releasing
// the previous chain first. Copying a set onto itself is a no-op. Plain
// struct assignment must not be used instead: it would leave two sets
// sharing one chain.
func (s *LruSet[T]) CopyFrom(src *LruSet[T]) {
	if s == src {
		return
	}
	s.Clear()
	for n := src.head; n != nil; n = n.next {
		s.push(&node[T]{value: n.value})
	}
}

// String renders the elements from least to most recently used.
func (s *LruSet[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := s.head; n != nil; n = n.next {
		if n != s.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", n.value)
	}
	b.WriteByte(']')
	return b.String()
}

// push links a fresh node after the tail and advances the tail marker.
func (s *LruSet[T]) push(n *node[T]) {
	if s.tail == nil {
		s.head = n
	} else {
		s.tail.next = n
	}
	s.tail = n
	s.size++
}

// promote relinks n after the tail. prev is n's immediate predecessor,
// nil when n is the head.
func (s *LruSet[T]) promote(prev, n *node[T]) {
	if n == s.tail {
		return
	}
	if prev == nil {
		s.head = n.next
	} else {
		prev.next = n.next
	}
	n.next = nil
	s.tail.next = n
	s.tail = n
}
