package network

import (
	"net/http"
	"time"

	"github.com/dominoes-online/server/consts"
	"github.com/dominoes-online/server/domino/game"
	"github.com/dominoes-online/server/domino/tile"
	"github.com/dominoes-online/server/model"
	"github.com/dominoes-online/server/render"
	"github.com/dominoes-online/server/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Server binds the game core to HTTP. Identity is supplied per request by
// the auth layer in front of us; the core never authenticates.
type Server struct {
	registry *service.Registry
	hub      *Hub
	log      *zap.SugaredLogger
}

func NewServer(registry *service.Registry, log *zap.SugaredLogger) *Server {
	hub := NewHub(registry, log)
	hub.Register()
	return &Server{
		registry: registry,
		hub:      hub,
		log:      log,
	}
}

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Heartbeat("/health"))

	r.Get("/view", s.handleView)
	r.Get("/games", s.handleListGames)
	r.Post("/join-any-game", s.handleJoin)
	r.Post("/start-game", s.handleStart)
	r.Post("/submit-move", s.handleMove)
	r.Post("/pick-up", s.handlePickUp)
	r.Post("/pass", s.handlePass)
	r.Get("/ws", s.hub.Handle)

	return r
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	g, err := s.registry.ResolveForUser(user, r.URL.Query().Get("game_id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeView(w, g, user)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]model.GameSummary{
		"open": render.Summaries(s.registry.ListOpen(user)),
		"mine": render.Summaries(s.registry.ListMine(user)),
	})
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	g, err := s.registry.JoinOrCreate(user)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeView(w, g, user)
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	g, err := s.resolveFromBody(r, user)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := g.Start(user); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeView(w, g, user)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	var req model.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	g, err := s.registry.ResolveForUser(user, req.GameID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := g.PlayTile(user, tile.New(req.Tile.Left, req.Tile.Right), req.Left); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeView(w, g, user)
}

func (s *Server) handlePickUp(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	g, err := s.resolveFromBody(r, user)
	if err != nil {
		s.writeError(w, err)
		return
	}
	drawn, err := g.PickUp(user)
	if err != nil {
		s.writeError(w, err)
		return
	}
	view, err := render.GameViewHighlight(g, user, drawn)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handlePass(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	g, err := s.resolveFromBody(r, user)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := g.PassTurn(user); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeView(w, g, user)
}

// currentUser reads the identity the auth collaborator attached to the
// request.
func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) (model.User, bool) {
	user := model.User{
		ID:   r.Header.Get("X-User-ID"),
		Name: r.Header.Get("X-User-Name"),
	}
	if user.ID == "" {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return model.User{}, false
	}
	if user.Name == "" {
		user.Name = user.ID
	}
	return user, true
}

func (s *Server) resolveFromBody(r *http.Request, user model.User) (*game.Game, error) {
	var req model.GameRequest
	// an empty or absent body means "my current game"
	_ = json.NewDecoder(r.Body).Decode(&req)
	return s.registry.ResolveForUser(user, req.GameID)
}

func (s *Server) writeView(w http.ResponseWriter, g *game.Game, user model.User) {
	view, err := render.GameView(g, user)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Errorf("write response: %v", err)
	}
}

// writeError maps core failures onto the wire: every rule violation is
// 406 Not Acceptable with the reason verbatim, unknown games are 404.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case consts.IsInvalidMove(err):
		status = http.StatusNotAcceptable
	case consts.IsNotFound(err):
		status = http.StatusNotFound
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
