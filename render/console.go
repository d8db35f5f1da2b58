package render

import (
	"github.com/dominoes-online/server/domino/event"
	"github.com/dominoes-online/server/domino/tile"
	"github.com/fatih/color"
	"go.uber.org/zap"
)

var (
	paintTile   = color.New(color.FgHiCyan).SprintfFunc()
	paintWinner = color.New(color.FgHiGreen).SprintfFunc()
	paintPass   = color.New(color.FgHiYellow).SprintfFunc()
)

// ConsoleListener mirrors game events onto the server console.
type ConsoleListener struct {
	log *zap.SugaredLogger
}

func NewConsoleListener(log *zap.SugaredLogger) *ConsoleListener {
	return &ConsoleListener{log: log}
}

// Register attaches the listener to every game event emitter.
func (l *ConsoleListener) Register() {
	event.PlayerJoined.AddListener(l)
	event.GameStarted.AddListener(l)
	event.TilePlayed.AddListener(l)
	event.TileDrawn.AddListener(l)
	event.PlayerPassed.AddListener(l)
	event.GameEnded.AddListener(l)
}

func (l *ConsoleListener) OnPlayerJoined(payload event.PlayerJoinedPayload) {
	l.log.Infof("game %s: %s joined", payload.GameID, payload.PlayerName)
}

func (l *ConsoleListener) OnGameStarted(payload event.GameStartedPayload) {
	l.log.Infof("game %s: started, %s opens", payload.GameID, payload.StartPlayer)
}

func (l *ConsoleListener) OnTilePlayed(payload event.TilePlayedPayload) {
	end := "right"
	if payload.Left {
		end = "left"
	}
	l.log.Infof("game %s: %s played %s on the %s", payload.GameID, payload.PlayerName, paintedTile(payload.Tile), end)
}

func (l *ConsoleListener) OnTileDrawn(payload event.TileDrawnPayload) {
	l.log.Infof("game %s: %s picked up", payload.GameID, payload.PlayerName)
}

func (l *ConsoleListener) OnPlayerPassed(payload event.PlayerPassedPayload) {
	l.log.Infof("game %s: %s", payload.GameID, paintPass("%s passed", payload.PlayerName))
}

func (l *ConsoleListener) OnGameEnded(payload event.GameEndedPayload) {
	l.log.Infof("game %s: %s", payload.GameID, paintWinner("%s", payload.Message))
}

func paintedTile(t tile.Tile) string {
	return paintTile("%s", t)
}
