package tile_test

import (
	"testing"

	"github.com/dominoes-online/server/domino/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet(t *testing.T) {
	set := tile.NewSet()
	require.Len(t, set, 28)

	seen := map[[2]int]bool{}
	for _, tl := range set {
		require.GreaterOrEqual(t, tl.Left, 0)
		require.LessOrEqual(t, tl.Left, 6)
		require.GreaterOrEqual(t, tl.Right, 0)
		require.LessOrEqual(t, tl.Right, 6)
		require.LessOrEqual(t, tl.Left, tl.Right)
		seen[[2]int{tl.Left, tl.Right}] = true
	}
	require.Len(t, seen, 28)
}

func TestShuffled(t *testing.T) {
	set := tile.NewSet()
	shuffled := tile.Shuffled(set)
	require.Len(t, shuffled, 28)
	require.ElementsMatch(t, set, shuffled)
	// the input order is untouched
	require.Equal(t, tile.New(0, 0), set[0])
	require.Equal(t, tile.New(6, 6), set[27])
}

func TestEqual(t *testing.T) {
	assert.True(t, tile.New(2, 5).Equal(tile.New(2, 5)))
	assert.True(t, tile.New(2, 5).Equal(tile.New(5, 2)))
	assert.False(t, tile.New(2, 5).Equal(tile.New(2, 4)))
}

func TestFlipped(t *testing.T) {
	tl := tile.New(1, 6)
	assert.Equal(t, tile.New(6, 1), tl.Flipped())
	assert.Equal(t, tile.New(1, 6), tl, "receiver must not change")
}

func TestSortScore(t *testing.T) {
	assert.Equal(t, 166, tile.New(6, 6).SortScore())
	assert.Equal(t, 100, tile.New(0, 0).SortScore())
	assert.Equal(t, 65, tile.New(6, 5).SortScore())
	assert.Equal(t, 65, tile.New(5, 6).SortScore())
	assert.Equal(t, 10, tile.New(1, 0).SortScore())
	// the lowest double still beats the highest non-double
	assert.Greater(t, tile.New(0, 0).SortScore(), tile.New(5, 6).SortScore())
}

func TestWithLeft(t *testing.T) {
	oriented, ok := tile.New(2, 5).WithLeft(2)
	require.True(t, ok)
	assert.Equal(t, tile.New(2, 5), oriented)

	oriented, ok = tile.New(2, 5).WithLeft(5)
	require.True(t, ok)
	assert.Equal(t, tile.New(5, 2), oriented)

	_, ok = tile.New(2, 5).WithLeft(3)
	assert.False(t, ok)
}

func TestWithRight(t *testing.T) {
	oriented, ok := tile.New(2, 5).WithRight(5)
	require.True(t, ok)
	assert.Equal(t, tile.New(2, 5), oriented)

	oriented, ok = tile.New(2, 5).WithRight(2)
	require.True(t, ok)
	assert.Equal(t, tile.New(5, 2), oriented)

	_, ok = tile.New(2, 5).WithRight(0)
	assert.False(t, ok)
}

func TestPipTotal(t *testing.T) {
	assert.Equal(t, 7, tile.New(2, 5).PipTotal())
	assert.Equal(t, 0, tile.New(0, 0).PipTotal())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[2|5]", tile.New(2, 5).String())
}
