package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/dominoes-online/server/consts"
	"github.com/dominoes-online/server/domino/event"
	"github.com/dominoes-online/server/domino/tile"
	"github.com/dominoes-online/server/model"
)

// Game is one dominoes session from creation through finish. All state is
// guarded by a single mutex held for the full validate-then-apply span of
// every mutating operation; rule violations leave the state untouched.
type Game struct {
	mu sync.Mutex

	id      string
	players []*Player
	deck    *Deck
	chain   *Chain

	started  bool
	finished bool

	current  int // seat of the turn owner, -1 before start
	hasDrawn bool

	lastUpdate    time.Time
	history       []Event
	winner        int // seat of the winner, -1 until finished
	winnerMessage string

	pending []func()
}

// New creates an empty game over the given draw stack. The tile order is
// injected so tests can fix it; callers wanting a fair game pass
// tile.Shuffled(tile.NewSet()).
func New(id string, tiles []tile.Tile) *Game {
	return &Game{
		id:         id,
		deck:       NewDeck(tiles),
		chain:      NewChain(),
		current:    -1,
		winner:     -1,
		lastUpdate: time.Now(),
	}
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) IsStarted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.started
}

func (g *Game) IsFinished() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.finished
}

func (g *Game) PlayerCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.players)
}

// HasPlayer reports whether the user occupies a seat.
func (g *Game) HasPlayer(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.findPlayer(userID) != nil
}

// AddPlayer seats a new player. Only legal before the game starts and
// while a seat is free.
func (g *Game) AddPlayer(user model.User) error {
	g.mu.Lock()
	err := g.addPlayer(user)
	emit := g.takePending()
	g.mu.Unlock()
	emit()
	return err
}

// Start deals seven tiles to every seat, picks the start player and plays
// their highest-ranked tile as the opening move.
func (g *Game) Start(user model.User) error {
	g.mu.Lock()
	err := g.start()
	emit := g.takePending()
	g.mu.Unlock()
	emit()
	return err
}

// PlayTile places the acting user's tile on the chosen end of the chain,
// flipping it when the opposite pip is the matching one.
func (g *Game) PlayTile(user model.User, t tile.Tile, left bool) error {
	g.mu.Lock()
	err := g.checkTurn(user)
	if err == nil {
		err = g.playTile(t, left)
	}
	emit := g.takePending()
	g.mu.Unlock()
	emit()
	return err
}

// PickUp draws one tile from the stack into the acting user's hand. The
// drawn tile is returned to the caller only; other players must never see
// it.
func (g *Game) PickUp(user model.User) (tile.Tile, error) {
	g.mu.Lock()
	drawn, err := g.pickUp(user)
	emit := g.takePending()
	g.mu.Unlock()
	emit()
	return drawn, err
}

// PassTurn gives up the acting user's turn. Passing is only legal once the
// player has drawn, or the stack is exhausted.
func (g *Game) PassTurn(user model.User) error {
	g.mu.Lock()
	err := g.passTurn(user)
	emit := g.takePending()
	g.mu.Unlock()
	emit()
	return err
}

// ExtractState snapshots the game for one requesting user. Other players'
// hands and the draw stack appear as counts only.
func (g *Game) ExtractState(user model.User) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	player := g.findPlayer(user.ID)
	if player == nil {
		return State{}, consts.InvalidMove("You are not in this game.")
	}

	players := make([]PlayerStatus, len(g.players))
	for i, p := range g.players {
		players[i] = PlayerStatus{Number: i, Name: p.Name(), HandSize: p.Hand().Size()}
	}
	history := make([]Event, len(g.history))
	copy(history, g.history)

	return State{
		GameID:        g.id,
		Started:       g.started,
		Finished:      g.finished,
		LastUpdate:    g.lastUpdate,
		You:           model.User{ID: player.ID(), Name: player.Name()},
		PlayerNumber:  player.Number(),
		YourTiles:     player.Hand().Tiles(),
		Players:       players,
		CurrentPlayer: g.current,
		Chain:         g.chain.Tiles(),
		Remaining:     g.deck.Size(),
		CanPickUp:     !g.deck.Empty() && !g.hasDrawn,
		History:       history,
		Winner:        g.winner,
		WinnerMessage: g.winnerMessage,
	}, nil
}

func (g *Game) addPlayer(user model.User) error {
	if g.started {
		return consts.InvalidMove("The game has already started.")
	}
	if len(g.players) >= consts.MaxPlayers {
		return consts.InvalidMove("The game is full.")
	}
	if g.findPlayer(user.ID) != nil {
		return consts.InvalidMove("You have already joined this game.")
	}
	player := newPlayer(user, len(g.players))
	g.players = append(g.players, player)
	g.logEvent(player.Name(), fmt.Sprintf("%s joined the game", player.Name()))
	g.queue(func() {
		event.PlayerJoined.Emit(event.PlayerJoinedPayload{GameID: g.id, PlayerName: player.Name()})
	})
	return nil
}

func (g *Game) start() error {
	if g.started {
		return consts.InvalidMove("The game has already started.")
	}
	if len(g.players) < consts.MinPlayers {
		return consts.InvalidMove("The game needs at least two players.")
	}

	for round := 0; round < consts.HandSize; round++ {
		for _, player := range g.players {
			drawn, ok := g.deck.Draw()
			if !ok {
				return consts.InvalidMove("The stack ran out while dealing.")
			}
			player.Hand().Add(drawn)
		}
	}

	g.current = g.startPlayer()
	g.hasDrawn = false
	g.started = true
	g.logEvent("", "Game starts")

	starter := g.players[g.current]
	g.queue(func() {
		event.GameStarted.Emit(event.GameStartedPayload{GameID: g.id, StartPlayer: starter.Name()})
	})

	// The start player's best tile opens the chain. System initiated, so
	// no turn-ownership check applies.
	opening, _ := starter.Hand().Best()
	return g.playTile(opening, true)
}

// startPlayer is the seat holding the highest-ranked tile across all
// hands. Equal best tiles break toward the later seat.
func (g *Game) startPlayer() int {
	start, startScore := 0, -1
	for i, player := range g.players {
		best, ok := player.Hand().Best()
		if !ok {
			continue
		}
		if score := best.SortScore(); score >= startScore {
			start, startScore = i, score
		}
	}
	return start
}

func (g *Game) checkTurn(user model.User) error {
	if g.finished {
		return consts.InvalidMove("The game has finished.")
	}
	if !g.started {
		return consts.InvalidMove("The game has not started yet.")
	}
	current := g.players[g.current]
	if current.ID() != user.ID {
		return consts.InvalidMove(fmt.Sprintf("It is not your turn. It is %s's turn.", current.Name()))
	}
	return nil
}

func (g *Game) playTile(t tile.Tile, left bool) error {
	player := g.players[g.current]
	if !player.Hand().Contains(t) {
		return consts.InvalidMove("You don't have that domino.")
	}

	oriented := t
	if !g.chain.Empty() {
		var ok bool
		if left {
			oriented, ok = t.WithRight(g.chain.OpenLeft())
		} else {
			oriented, ok = t.WithLeft(g.chain.OpenRight())
		}
		if !ok {
			return consts.InvalidMove("You cannot play that domino here.")
		}
	}

	player.Hand().Remove(t)
	switch {
	case g.chain.Empty():
		g.chain.Append(oriented)
	case left:
		g.chain.Prepend(oriented)
	default:
		g.chain.Append(oriented)
	}

	g.logEvent(player.Name(), fmt.Sprintf("%s played domino %s", player.Name(), oriented))
	g.queue(func() {
		event.TilePlayed.Emit(event.TilePlayedPayload{
			GameID:     g.id,
			PlayerName: player.Name(),
			Tile:       oriented,
			Left:       left,
		})
	})
	g.endTurn()
	return nil
}

func (g *Game) pickUp(user model.User) (tile.Tile, error) {
	if err := g.checkTurn(user); err != nil {
		return tile.Tile{}, err
	}
	if g.hasDrawn {
		return tile.Tile{}, consts.InvalidMove("You have already picked up a domino this turn.")
	}
	drawn, ok := g.deck.Draw()
	if !ok {
		return tile.Tile{}, consts.InvalidMove("There are no dominoes left in the stack.")
	}

	player := g.players[g.current]
	player.Hand().Add(drawn)
	g.hasDrawn = true
	g.logEvent(player.Name(), fmt.Sprintf("%s picked up a domino", player.Name()))
	g.queue(func() {
		event.TileDrawn.Emit(event.TileDrawnPayload{GameID: g.id, PlayerName: player.Name()})
	})
	return drawn, nil
}

func (g *Game) passTurn(user model.User) error {
	if err := g.checkTurn(user); err != nil {
		return err
	}
	if !g.hasDrawn && !g.deck.Empty() {
		return consts.InvalidMove("You must pick up before passing.")
	}

	player := g.players[g.current]
	player.passed = true
	g.logEvent(player.Name(), fmt.Sprintf("%s has passed", player.Name()))
	g.queue(func() {
		event.PlayerPassed.Emit(event.PlayerPassedPayload{GameID: g.id, PlayerName: player.Name()})
	})
	g.endTurn()
	return nil
}

func (g *Game) endTurn() {
	g.checkWin()
	if g.finished {
		return
	}
	g.current = (g.current + 1) % len(g.players)
	g.hasDrawn = false
	g.players[g.current].passed = false
}

func (g *Game) checkWin() {
	if g.finished {
		return
	}
	for i, player := range g.players {
		if player.Hand().Empty() {
			g.playerWon(i, "has gone out.")
			return
		}
	}
	if !g.deck.Empty() {
		return
	}
	for _, player := range g.players {
		if !player.passed {
			return
		}
	}

	// Stalemate: lowest pip total left in hand wins, equal totals break
	// toward the earlier seat.
	winner, score := 0, g.players[0].Hand().PipTotal()
	for i, player := range g.players[1:] {
		if total := player.Hand().PipTotal(); total < score {
			winner, score = i+1, total
		}
	}
	g.playerWon(winner, fmt.Sprintf("has %d points after all players passed.", score))
}

func (g *Game) playerWon(seat int, message string) {
	winner := g.players[seat]
	g.finished = true
	g.winner = seat
	g.winnerMessage = fmt.Sprintf("%s %s", winner.Name(), message)
	g.logEvent(winner.Name(), g.winnerMessage)
	g.queue(func() {
		event.GameEnded.Emit(event.GameEndedPayload{
			GameID:     g.id,
			WinnerName: winner.Name(),
			Message:    g.winnerMessage,
		})
	})
}

func (g *Game) findPlayer(userID string) *Player {
	for _, player := range g.players {
		if player.ID() == userID {
			return player
		}
	}
	return nil
}

func (g *Game) logEvent(actor, text string) {
	g.lastUpdate = time.Now()
	g.history = append(g.history, Event{When: g.lastUpdate, Actor: actor, Text: text})
}

func (g *Game) queue(emit func()) {
	g.pending = append(g.pending, emit)
}

// takePending hands back the queued emissions so the caller can run them
// after releasing the lock; listeners may re-enter the game.
func (g *Game) takePending() func() {
	pending := g.pending
	g.pending = nil
	return func() {
		for _, emit := range pending {
			emit()
		}
	}
}
