package network

import (
	"net/http"
	"sync"

	"github.com/dominoes-online/server/domino/event"
	"github.com/dominoes-online/server/model"
	"github.com/dominoes-online/server/render"
	"github.com/dominoes-online/server/service"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type subscriber struct {
	user model.User
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) send(view model.GameView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub pushes a fresh per-player view to every subscriber of a game whenever
// that game changes. Each subscriber gets its own projection so no hand
// leaks over a shared channel.
type Hub struct {
	mu       sync.Mutex
	subs     map[string]map[*subscriber]bool
	registry *service.Registry
	log      *zap.SugaredLogger
}

func NewHub(registry *service.Registry, log *zap.SugaredLogger) *Hub {
	return &Hub{
		subs:     map[string]map[*subscriber]bool{},
		registry: registry,
		log:      log,
	}
}

// Register attaches the hub to every game event.
func (h *Hub) Register() {
	event.PlayerJoined.AddListener(h)
	event.GameStarted.AddListener(h)
	event.TilePlayed.AddListener(h)
	event.TileDrawn.AddListener(h)
	event.PlayerPassed.AddListener(h)
	event.GameEnded.AddListener(h)
}

func (h *Hub) OnPlayerJoined(payload event.PlayerJoinedPayload) { h.broadcast(payload.GameID) }
func (h *Hub) OnGameStarted(payload event.GameStartedPayload)   { h.broadcast(payload.GameID) }
func (h *Hub) OnTilePlayed(payload event.TilePlayedPayload)     { h.broadcast(payload.GameID) }
func (h *Hub) OnTileDrawn(payload event.TileDrawnPayload)       { h.broadcast(payload.GameID) }
func (h *Hub) OnPlayerPassed(payload event.PlayerPassedPayload) { h.broadcast(payload.GameID) }
func (h *Hub) OnGameEnded(payload event.GameEndedPayload)       { h.broadcast(payload.GameID) }

// Handle upgrades the connection and keeps it until the client goes away.
// Reads are discarded; the socket is push-only.
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request) {
	user := model.User{
		ID:   r.Header.Get("X-User-ID"),
		Name: r.Header.Get("X-User-Name"),
	}
	if user.ID == "" {
		user.ID = r.URL.Query().Get("user_id")
		user.Name = r.URL.Query().Get("user_name")
	}
	if user.ID == "" {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}
	gameID := r.URL.Query().Get("game_id")
	g, err := h.registry.Get(gameID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("upgrade websocket: %v", err)
		return
	}
	sub := &subscriber{user: user, conn: conn}
	h.add(gameID, sub)
	h.log.Infof("subscriber %s attached to game %s", user.Name, gameID)

	if view, err := render.GameView(g, user); err == nil {
		_ = sub.send(view)
	}

	go h.reap(gameID, sub)
}

func (h *Hub) add(gameID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[gameID] == nil {
		h.subs[gameID] = map[*subscriber]bool{}
	}
	h.subs[gameID][sub] = true
}

func (h *Hub) remove(gameID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[gameID], sub)
	_ = sub.conn.Close()
}

// reap blocks on reads so we notice the peer closing.
func (h *Hub) reap(gameID string, sub *subscriber) {
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			h.remove(gameID, sub)
			return
		}
	}
}

func (h *Hub) broadcast(gameID string) {
	g, err := h.registry.Get(gameID)
	if err != nil {
		return
	}
	h.mu.Lock()
	targets := make([]*subscriber, 0, len(h.subs[gameID]))
	for sub := range h.subs[gameID] {
		targets = append(targets, sub)
	}
	h.mu.Unlock()
	for _, sub := range targets {
		view, err := render.GameView(g, sub.user)
		if err != nil {
			continue
		}
		if err := sub.send(view); err != nil {
			h.remove(gameID, sub)
		}
	}
}
