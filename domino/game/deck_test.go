package game_test

import (
	"testing"

	"github.com/dominoes-online/server/domino/game"
	"github.com/dominoes-online/server/domino/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	t.Run("pops_from_the_tail", func(t *testing.T) {
		deck := game.NewDeck([]tile.Tile{tile.New(0, 1), tile.New(2, 3), tile.New(4, 5)})
		drawn, ok := deck.Draw()
		require.True(t, ok)
		assert.Equal(t, tile.New(4, 5), drawn)
		drawn, ok = deck.Draw()
		require.True(t, ok)
		assert.Equal(t, tile.New(2, 3), drawn)
		assert.Equal(t, 1, deck.Size())
	})

	t.Run("reports_exhaustion", func(t *testing.T) {
		deck := game.NewDeck([]tile.Tile{tile.New(0, 1)})
		_, ok := deck.Draw()
		require.True(t, ok)
		_, ok = deck.Draw()
		require.False(t, ok)
		assert.True(t, deck.Empty())
	})

	t.Run("does_not_alias_the_input", func(t *testing.T) {
		tiles := []tile.Tile{tile.New(0, 1), tile.New(2, 3)}
		deck := game.NewDeck(tiles)
		tiles[1] = tile.New(6, 6)
		drawn, _ := deck.Draw()
		assert.Equal(t, tile.New(2, 3), drawn)
	})
}
