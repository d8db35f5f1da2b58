package render

import (
	"github.com/dominoes-online/server/domino/game"
	"github.com/dominoes-online/server/domino/tile"
	"github.com/dominoes-online/server/model"
)

// GameView projects a game for one requesting user into the wire DTO.
// Everything private to other players has already been reduced to counts
// by the game's own snapshot.
func GameView(g *game.Game, user model.User) (model.GameView, error) {
	state, err := g.ExtractState(user)
	if err != nil {
		return model.GameView{}, err
	}
	return fromState(state), nil
}

// GameViewHighlight additionally marks a tile the requester just drew, so
// the client can call it out. The highlight never reaches other players.
func GameViewHighlight(g *game.Game, user model.User, highlight tile.Tile) (model.GameView, error) {
	view, err := GameView(g, user)
	if err != nil {
		return model.GameView{}, err
	}
	dto := tileDTO(highlight)
	view.HighlightTile = &dto
	return view, nil
}

// Summaries is the lobby listing projection.
func Summaries(games []*game.Game) []model.GameSummary {
	out := make([]model.GameSummary, 0, len(games))
	for _, g := range games {
		out = append(out, model.GameSummary{
			GameID:  g.ID(),
			Players: g.PlayerCount(),
			Started: g.IsStarted(),
		})
	}
	return out
}

func fromState(state game.State) model.GameView {
	players := make([]model.PlayerInfo, 0, len(state.Players))
	for _, p := range state.Players {
		players = append(players, model.PlayerInfo{Number: p.Number, Name: p.Name, Tiles: p.HandSize})
	}
	history := make([]model.Event, 0, len(state.History))
	for _, e := range state.History {
		history = append(history, model.Event{Time: e.When.Format("15:04:05"), Text: e.Text})
	}

	var winner *int
	if state.Winner >= 0 {
		n := state.Winner
		winner = &n
	}

	return model.GameView{
		GameID:        state.GameID,
		Started:       state.Started,
		Finished:      state.Finished,
		LastUpdate:    state.LastUpdate,
		You:           state.You,
		PlayerNumber:  state.PlayerNumber,
		YourTiles:     tilesDTO(state.YourTiles),
		Players:       players,
		NextPlayer:    state.CurrentPlayer,
		PlayedTiles:   tilesDTO(state.Chain),
		Remaining:     state.Remaining,
		CanPickUp:     state.CanPickUp,
		History:       history,
		Winner:        winner,
		WinnerMessage: state.WinnerMessage,
	}
}

func tileDTO(t tile.Tile) model.Tile {
	return model.Tile{Left: t.Left, Right: t.Right}
}

func tilesDTO(tiles []tile.Tile) []model.Tile {
	out := make([]model.Tile, 0, len(tiles))
	for _, t := range tiles {
		out = append(out, tileDTO(t))
	}
	return out
}
