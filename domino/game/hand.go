package game

import (
	"github.com/dominoes-online/server/domino/tile"
)

// Hand holds one player's private tiles in pick-up order.
type Hand struct {
	tiles []tile.Tile
}

func NewHand() *Hand {
	return &Hand{tiles: make([]tile.Tile, 0, 7)}
}

func (h *Hand) Add(t tile.Tile) {
	h.tiles = append(h.tiles, t)
}

func (h *Hand) Tiles() []tile.Tile {
	tiles := make([]tile.Tile, len(h.tiles))
	copy(tiles, h.tiles)
	return tiles
}

// Contains reports membership in either orientation.
func (h *Hand) Contains(t tile.Tile) bool {
	for _, held := range h.tiles {
		if held.Equal(t) {
			return true
		}
	}
	return false
}

// Remove takes a single copy of the tile out of the hand, matching either
// orientation. It reports whether anything was removed.
func (h *Hand) Remove(t tile.Tile) bool {
	for index, held := range h.tiles {
		if held.Equal(t) {
			h.tiles = append(h.tiles[:index], h.tiles[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Empty() bool {
	return len(h.tiles) == 0
}

func (h *Hand) Size() int {
	return len(h.tiles)
}

// PipTotal sums the pips of every held tile, for stalemate scoring.
func (h *Hand) PipTotal() int {
	total := 0
	for _, held := range h.tiles {
		total += held.PipTotal()
	}
	return total
}

// Best returns the highest-ranked tile by sort score. The second return is
// false for an empty hand.
func (h *Hand) Best() (tile.Tile, bool) {
	if len(h.tiles) == 0 {
		return tile.Tile{}, false
	}
	best := h.tiles[0]
	for _, held := range h.tiles[1:] {
		if held.SortScore() > best.SortScore() {
			best = held
		}
	}
	return best, true
}
