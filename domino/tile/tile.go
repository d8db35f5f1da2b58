package tile

import (
	"fmt"
	"math/rand"

	"github.com/dominoes-online/server/consts"
)

// Tile is a single domino. Left/Right is the current orientation; identity
// for hand membership is orientation independent.
type Tile struct {
	Left  int
	Right int
}

func New(left, right int) Tile {
	return Tile{Left: left, Right: right}
}

// Flipped returns the tile with its ends swapped. Tiles are values, the
// receiver is never changed.
func (t Tile) Flipped() Tile {
	return Tile{Left: t.Right, Right: t.Left}
}

// Equal reports whether both tiles are the same domino in either
// orientation.
func (t Tile) Equal(other Tile) bool {
	return (t.Left == other.Left && t.Right == other.Right) ||
		(t.Left == other.Right && t.Right == other.Left)
}

// Double reports whether both ends carry the same pip value.
func (t Tile) Double() bool {
	return t.Left == t.Right
}

// PipTotal is the combined pip count, used for stalemate scoring.
func (t Tile) PipTotal() int {
	return t.Left + t.Right
}

// SortScore ranks tiles for choosing the opening tile: highest pip pair
// wins, doubles outrank every non-double of the same high pip.
func (t Tile) SortScore() int {
	score := t.Left*10 + t.Right
	if t.Right > t.Left {
		score = t.Right*10 + t.Left
	}
	if t.Double() {
		score += 100
	}
	return score
}

// WithLeft returns the tile oriented so its left end carries pip, or false
// when neither end matches.
func (t Tile) WithLeft(pip int) (Tile, bool) {
	if t.Left == pip {
		return t, true
	}
	if t.Right == pip {
		return t.Flipped(), true
	}
	return Tile{}, false
}

// WithRight returns the tile oriented so its right end carries pip, or
// false when neither end matches.
func (t Tile) WithRight(pip int) (Tile, bool) {
	if t.Right == pip {
		return t, true
	}
	if t.Left == pip {
		return t.Flipped(), true
	}
	return Tile{}, false
}

func (t Tile) String() string {
	return fmt.Sprintf("[%d|%d]", t.Left, t.Right)
}

// NewSet returns the 28 tiles of a double-six set in ascending order.
func NewSet() []Tile {
	set := make([]Tile, 0, consts.SetSize)
	for left := 0; left <= consts.MaxPip; left++ {
		for right := left; right <= consts.MaxPip; right++ {
			set = append(set, Tile{Left: left, Right: right})
		}
	}
	return set
}

// Shuffled returns a uniformly shuffled copy of the given tiles.
func Shuffled(tiles []Tile) []Tile {
	out := make([]Tile, len(tiles))
	copy(out, tiles)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
