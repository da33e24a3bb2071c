package recency_test

import (
	"testing"

	"github.com/eric2788/recset/pkg/recency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFifoSetArrivalOrder(t *testing.T) {
	s := recency.NewFifoSet[int]()
	for _, v := range []int{1, 2, 3, 4} {
		assert.True(t, s.Insert(v))
	}

	assert.True(t, s.Query(1), "query should still report membership")
	assert.Equal(t, []int{1, 2, 3, 4}, s.Values(), "a fifo set never promotes on query")

	var drained []int
	for !s.IsEmpty() {
		v, err := s.Remove()
		require.NoError(t, err)
		drained = append(drained, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, drained, "eviction should follow arrival order")
}

func TestFifoSetDuplicates(t *testing.T) {
	s := recency.NewFifoSet[string]()

	assert.True(t, s.Insert("a"))
	assert.False(t, s.Insert("a"), "duplicate insert should be rejected")
	assert.Equal(t, 1, s.Len())
}

func TestFifoSetEmpty(t *testing.T) {
	s := recency.NewFifoSet[int]()

	_, err := s.Peek()
	assert.ErrorIs(t, err, recency.ErrEmpty)

	_, err = s.Remove()
	assert.ErrorIs(t, err, recency.ErrEmpty)
}

func TestFifoSetValuesIsACopy(t *testing.T) {
	s := recency.NewFifoSet[int]()
	s.Insert(1)
	s.Insert(2)

	values := s.Values()
	values[0] = 99

	v, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, v, "mutating the returned slice should not touch the set")
}

func TestFifoSetClear(t *testing.T) {
	s := recency.NewFifoSet[int]()
	s.Insert(1)
	s.Insert(2)

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.Values())
	assert.True(t, s.Insert(1), "a cleared set should accept previously held values")
}
