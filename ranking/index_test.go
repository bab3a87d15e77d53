package ranking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alexsandra-Z/system-analysis-2025/ranking"
)

// TestNewIndex_Union checks that the universe is the sorted union of both rankings.
func TestNewIndex_Union(t *testing.T) {
	a := ranking.MustNew(ranking.Level{10}, ranking.Level{3})
	b := ranking.MustNew(ranking.Level{3, 7})

	idx := ranking.NewIndex(a, b)
	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, []ranking.ObjectID{3, 7, 10}, idx.IDs())
	assert.Equal(t, ranking.ObjectID(7), idx.ID(1))

	p, ok := idx.Pos(10)
	assert.True(t, ok)
	assert.Equal(t, 2, p)

	_, ok = idx.Pos(42)
	assert.False(t, ok)
}

// TestIndex_IDsIsCopy ensures callers cannot mutate the shared numbering.
func TestIndex_IDsIsCopy(t *testing.T) {
	idx := ranking.NewIndex(ranking.MustNew(ranking.Level{1}, ranking.Level{2}))
	ids := idx.IDs()
	ids[0] = 99
	assert.Equal(t, ranking.ObjectID(1), idx.ID(0))
}

func TestNewIndex_Empty(t *testing.T) {
	idx := ranking.NewIndex(ranking.Ranking{}, nil)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.IDs())
}

// TestPositions_TrailingLevel verifies that objects missing from a ranking land
// on one implicit level below everything the ranking lists.
func TestPositions_TrailingLevel(t *testing.T) {
	a := ranking.MustNew(ranking.Level{2}, ranking.Level{1})
	b := ranking.MustNew(ranking.Level{4, 3})
	idx := ranking.NewIndex(a, b) // universe 1,2,3,4

	assert.Equal(t, []int{1, 0, 2, 2}, a.Positions(idx))
	assert.Equal(t, []int{1, 1, 0, 0}, b.Positions(idx))
}
