package game

import (
	"github.com/dominoes-online/server/domino/tile"
)

// Chain is the played layout. It has two open ends: the left pip of the
// first tile and the right pip of the last tile.
type Chain struct {
	tiles []tile.Tile
}

func NewChain() *Chain {
	return &Chain{tiles: make([]tile.Tile, 0, 28)}
}

func (c *Chain) Empty() bool {
	return len(c.tiles) == 0
}

func (c *Chain) Size() int {
	return len(c.tiles)
}

// OpenLeft is the pip the next left-end tile must present. Only valid on a
// non-empty chain.
func (c *Chain) OpenLeft() int {
	return c.tiles[0].Left
}

// OpenRight is the pip the next right-end tile must present. Only valid on
// a non-empty chain.
func (c *Chain) OpenRight() int {
	return c.tiles[len(c.tiles)-1].Right
}

func (c *Chain) Prepend(t tile.Tile) {
	c.tiles = append([]tile.Tile{t}, c.tiles...)
}

func (c *Chain) Append(t tile.Tile) {
	c.tiles = append(c.tiles, t)
}

func (c *Chain) Tiles() []tile.Tile {
	tiles := make([]tile.Tile, len(c.tiles))
	copy(tiles, c.tiles)
	return tiles
}
