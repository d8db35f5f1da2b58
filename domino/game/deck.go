package game

import (
	"github.com/dominoes-online/server/domino/tile"
)

// Deck is the draw stack of undealt tiles. Tiles come off the tail, so an
// injected ordering is deterministic. The owning Game serializes access.
type Deck struct {
	tiles []tile.Tile
}

func NewDeck(tiles []tile.Tile) *Deck {
	out := make([]tile.Tile, len(tiles))
	copy(out, tiles)
	return &Deck{tiles: out}
}

// Draw pops the top tile. The second return is false once the stack is
// exhausted.
func (d *Deck) Draw() (tile.Tile, bool) {
	if len(d.tiles) == 0 {
		return tile.Tile{}, false
	}
	drawn := d.tiles[len(d.tiles)-1]
	d.tiles = d.tiles[:len(d.tiles)-1]
	return drawn, true
}

func (d *Deck) Size() int {
	return len(d.tiles)
}

func (d *Deck) Empty() bool {
	return len(d.tiles) == 0
}
