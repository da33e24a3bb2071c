package ds_test

import (
	"testing"

	"github.com/eric2788/recset/pkg/ds"
	"github.com/stretchr/testify/assert"
)

func TestSetAddAndContains(t *testing.T) {
	s := ds.NewSet[string]()
	assert.True(t, s.IsEmpty())

	s.Add("a")
	s.Add("b")
	s.Add("a")

	assert.Equal(t, 2, s.Size(), "duplicates should collapse into one element")
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("c"))
	assert.False(t, s.IsEmpty())
}

func TestSetRemove(t *testing.T) {
	s := ds.NewSet[int]()
	s.Add(1)
	s.Add(2)

	s.Remove(1)
	assert.False(t, s.Contains(1))
	assert.Equal(t, 1, s.Size())

	s.Remove(42)
	assert.Equal(t, 1, s.Size(), "removing an absent element should be a no-op")
}

func TestSetToSlice(t *testing.T) {
	s := ds.NewSet[int]()
	for _, v := range []int{3, 1, 2} {
		s.Add(v)
	}

	assert.ElementsMatch(t, []int{1, 2, 3}, s.ToSlice(), "slice order is unspecified")
}

func TestSetClear(t *testing.T) {
	s := ds.NewSet[int]()
	s.Add(1)
	s.Clear()

	assert.True(t, s.IsEmpty())
	assert.Zero(t, s.Size())
}
