package game

import (
	"fmt"

	"github.com/dominoes-online/server/model"
)

// Player binds an external user identity to in-game state. Created when a
// user joins a game, lives as long as the game does.
type Player struct {
	user   model.User
	number int
	hand   *Hand
	passed bool
}

func newPlayer(user model.User, number int) *Player {
	return &Player{
		user:   user,
		number: number,
		hand:   NewHand(),
	}
}

func (p *Player) ID() string {
	return p.user.ID
}

func (p *Player) Name() string {
	return p.user.Name
}

// Number is the 0-based seat index.
func (p *Player) Number() int {
	return p.number
}

func (p *Player) Hand() *Hand {
	return p.hand
}

func (p *Player) String() string {
	return fmt.Sprintf("%s[%s]", p.user.Name, p.user.ID)
}
