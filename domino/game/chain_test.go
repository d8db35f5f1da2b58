package game_test

import (
	"testing"

	"github.com/dominoes-online/server/domino/game"
	"github.com/dominoes-online/server/domino/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainEnds(t *testing.T) {
	chain := game.NewChain()
	require.True(t, chain.Empty())

	chain.Append(tile.New(6, 6))
	assert.Equal(t, 6, chain.OpenLeft())
	assert.Equal(t, 6, chain.OpenRight())

	chain.Append(tile.New(6, 3))
	assert.Equal(t, 6, chain.OpenLeft())
	assert.Equal(t, 3, chain.OpenRight())

	chain.Prepend(tile.New(2, 6))
	assert.Equal(t, 2, chain.OpenLeft())
	assert.Equal(t, 3, chain.OpenRight())

	require.Equal(t, []tile.Tile{tile.New(2, 6), tile.New(6, 6), tile.New(6, 3)}, chain.Tiles())
}

func TestChainTilesCopiesOut(t *testing.T) {
	chain := game.NewChain()
	chain.Append(tile.New(1, 2))
	tiles := chain.Tiles()
	tiles[0] = tile.New(0, 0)
	require.Equal(t, []tile.Tile{tile.New(1, 2)}, chain.Tiles())
}
