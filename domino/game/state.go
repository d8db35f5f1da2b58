package game

import (
	"time"

	"github.com/dominoes-online/server/domino/tile"
	"github.com/dominoes-online/server/model"
)

// PlayerStatus is the publicly visible part of a seated player.
type PlayerStatus struct {
	Number   int
	Name     string
	HandSize int
}

// Event is one history entry. Actor is empty for system events.
type Event struct {
	When  time.Time
	Actor string
	Text  string
}

// State is a snapshot of a game filtered for one requesting user: their
// own hand in full, every other hand reduced to its size, the draw stack
// reduced to a count.
type State struct {
	GameID        string
	Started       bool
	Finished      bool
	LastUpdate    time.Time
	You           model.User
	PlayerNumber  int
	YourTiles     []tile.Tile
	Players       []PlayerStatus
	CurrentPlayer int
	Chain         []tile.Tile
	Remaining     int
	CanPickUp     bool
	History       []Event
	Winner        int // -1 until the game ends
	WinnerMessage string
}
