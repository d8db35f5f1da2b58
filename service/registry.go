package service

import (
	"sync"

	"github.com/awesome-cap/hashmap"
	"github.com/dominoes-online/server/consts"
	"github.com/dominoes-online/server/domino/game"
	"github.com/dominoes-online/server/domino/tile"
	"github.com/dominoes-online/server/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry maps game ids to live games and routes users to the right one.
// It is constructed once at process start and passed to the handlers, not
// held in package state. Games are never removed; an unreachable game is
// simply retained for the process lifetime.
type Registry struct {
	// mu guards order and the scan-and-create sequence in JoinOrCreate so
	// two first joins cannot race into two fresh games.
	mu    sync.Mutex
	games *hashmap.HashMap
	order []string
	log   *zap.SugaredLogger
}

func NewRegistry(log *zap.SugaredLogger) *Registry {
	return &Registry{
		games: hashmap.New(),
		log:   log,
	}
}

// Get looks a game up by id.
func (r *Registry) Get(gameID string) (*game.Game, error) {
	if v, ok := r.games.Get(gameID); ok {
		return v.(*game.Game), nil
	}
	return nil, consts.ErrorsGameNotFound
}

// ResolveForUser picks the game an inbound action is aimed at: the
// explicitly requested one when it exists, else the user's own unfinished
// game, else whatever JoinOrCreate decides.
func (r *Registry) ResolveForUser(user model.User, gameID string) (*game.Game, error) {
	if gameID != "" {
		if v, ok := r.games.Get(gameID); ok {
			return v.(*game.Game), nil
		}
	}
	for _, g := range r.snapshot() {
		if g.HasPlayer(user.ID) && !g.IsFinished() {
			return g, nil
		}
	}
	return r.JoinOrCreate(user)
}

// JoinOrCreate seats the user: back into a game they already joined that
// has not started, else the first open seat anywhere, else a brand-new
// game.
func (r *Registry) JoinOrCreate(user model.User) (*game.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, g := range r.snapshotLocked() {
		if g.HasPlayer(user.ID) && !g.IsStarted() {
			return g, nil
		}
	}
	for _, g := range r.snapshotLocked() {
		if g.IsStarted() || g.PlayerCount() >= consts.MaxPlayers {
			continue
		}
		if err := g.AddPlayer(user); err == nil {
			r.log.Infof("user %s joined game %s", user.ID, g.ID())
			return g, nil
		}
	}
	return r.createLocked(user)
}

// Create starts a fresh game with the user in the first seat.
func (r *Registry) Create(user model.User) (*game.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createLocked(user)
}

// ListOpen returns joinable games: not started and not containing the
// user.
func (r *Registry) ListOpen(user model.User) []*game.Game {
	open := make([]*game.Game, 0)
	for _, g := range r.snapshot() {
		if !g.IsStarted() && !g.HasPlayer(user.ID) {
			open = append(open, g)
		}
	}
	return open
}

// ListMine returns the user's games in any phase.
func (r *Registry) ListMine(user model.User) []*game.Game {
	mine := make([]*game.Game, 0)
	for _, g := range r.snapshot() {
		if g.HasPlayer(user.ID) {
			mine = append(mine, g)
		}
	}
	return mine
}

func (r *Registry) createLocked(user model.User) (*game.Game, error) {
	id := uuid.NewString()
	g := game.New(id, tile.Shuffled(tile.NewSet()))
	if err := g.AddPlayer(user); err != nil {
		return nil, err
	}
	r.games.Set(id, g)
	r.order = append(r.order, id)
	r.log.Infof("game %s created by user %s", id, user.ID)
	return g, nil
}

// snapshot returns the games in creation order.
func (r *Registry) snapshot() []*game.Game {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Registry) snapshotLocked() []*game.Game {
	list := make([]*game.Game, 0, len(r.order))
	for _, id := range r.order {
		if v, ok := r.games.Get(id); ok {
			list = append(list, v.(*game.Game))
		}
	}
	return list
}
