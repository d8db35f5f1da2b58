package game_test

import (
	"testing"

	"github.com/dominoes-online/server/domino/game"
	"github.com/dominoes-online/server/domino/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	hand := game.NewHand()
	hand.Add(tile.New(2, 5))
	assert.True(t, hand.Contains(tile.New(2, 5)))
	assert.True(t, hand.Contains(tile.New(5, 2)), "either orientation counts")
	assert.False(t, hand.Contains(tile.New(2, 4)))
}

func TestRemove(t *testing.T) {
	t.Run("removes_in_either_orientation", func(t *testing.T) {
		hand := game.NewHand()
		hand.Add(tile.New(2, 5))
		hand.Add(tile.New(0, 3))
		require.True(t, hand.Remove(tile.New(5, 2)))
		require.Equal(t, []tile.Tile{tile.New(0, 3)}, hand.Tiles())
	})

	t.Run("does_nothing_when_absent", func(t *testing.T) {
		hand := game.NewHand()
		hand.Add(tile.New(2, 5))
		require.False(t, hand.Remove(tile.New(1, 1)))
		require.Equal(t, 1, hand.Size())
	})

	t.Run("removes_a_single_copy", func(t *testing.T) {
		hand := game.NewHand()
		hand.Add(tile.New(2, 5))
		hand.Add(tile.New(5, 2))
		require.True(t, hand.Remove(tile.New(2, 5)))
		require.Equal(t, 1, hand.Size())
	})
}

func TestEmpty(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())
	hand.Add(tile.New(0, 0))
	require.False(t, hand.Empty())
}

func TestPipTotal(t *testing.T) {
	hand := game.NewHand()
	assert.Equal(t, 0, hand.PipTotal())
	hand.Add(tile.New(2, 5))
	hand.Add(tile.New(6, 6))
	assert.Equal(t, 19, hand.PipTotal())
}

func TestBest(t *testing.T) {
	hand := game.NewHand()
	_, ok := hand.Best()
	require.False(t, ok)

	hand.Add(tile.New(5, 6))
	hand.Add(tile.New(1, 1))
	hand.Add(tile.New(0, 6))
	best, ok := hand.Best()
	require.True(t, ok)
	assert.Equal(t, tile.New(1, 1), best, "doubles outrank non-doubles")
}

func TestTilesCopiesOut(t *testing.T) {
	hand := game.NewHand()
	hand.Add(tile.New(2, 5))
	tiles := hand.Tiles()
	tiles[0] = tile.New(6, 6)
	assert.True(t, hand.Contains(tile.New(2, 5)))
}
