package event

var GameEnded = &gameEndedEmitter{}

type GameEndedPayload struct {
	GameID     string
	WinnerName string
	Message    string
}

type GameEndedListener interface {
	OnGameEnded(GameEndedPayload)
}

type gameEndedEmitter struct {
	listeners []GameEndedListener
}

func (e *gameEndedEmitter) AddListener(listener GameEndedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *gameEndedEmitter) Emit(payload GameEndedPayload) {
	for _, listener := range e.listeners {
		listener.OnGameEnded(payload)
	}
}
