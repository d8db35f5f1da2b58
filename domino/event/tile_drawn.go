package event

// TileDrawnPayload deliberately carries no tile: what was drawn is private
// to the drawing player.
var TileDrawn = &tileDrawnEmitter{}

type TileDrawnPayload struct {
	GameID     string
	PlayerName string
}

type TileDrawnListener interface {
	OnTileDrawn(TileDrawnPayload)
}

type tileDrawnEmitter struct {
	listeners []TileDrawnListener
}

func (e *tileDrawnEmitter) AddListener(listener TileDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *tileDrawnEmitter) Emit(payload TileDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnTileDrawn(payload)
	}
}
