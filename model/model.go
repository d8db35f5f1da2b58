package model

import "time"

// User is the external identity supplied by the auth collaborator. The
// core only ever reads these two fields.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Tile is the wire shape of a domino.
type Tile struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// PlayerInfo is the public part of a seated player: never the hand itself,
// only its size.
type PlayerInfo struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Tiles  int    `json:"tiles"`
}

// Event is one line of the game history.
type Event struct {
	Time string `json:"time"`
	Text string `json:"text"`
}

// GameView is the per-player projection of a game, safe to hand to one
// client: the requester's own hand in full, everyone else as counts.
type GameView struct {
	GameID        string       `json:"game_id"`
	Started       bool         `json:"started"`
	Finished      bool         `json:"game_finished"`
	LastUpdate    time.Time    `json:"last_update"`
	You           User         `json:"you"`
	PlayerNumber  int          `json:"player_number"`
	YourTiles     []Tile       `json:"your_tiles"`
	Players       []PlayerInfo `json:"players"`
	NextPlayer    int          `json:"next_player_number"`
	PlayedTiles   []Tile       `json:"played_tiles"`
	Remaining     int          `json:"remaining_tiles"`
	CanPickUp     bool         `json:"can_pick_up"`
	History       []Event      `json:"history"`
	Winner        *int         `json:"winner"`
	WinnerMessage string       `json:"winner_message,omitempty"`
	HighlightTile *Tile        `json:"highlight_tile,omitempty"`
}

// GameSummary is the lobby listing shape.
type GameSummary struct {
	GameID  string `json:"game_id"`
	Players int    `json:"players"`
	Started bool   `json:"started"`
}

// PlayRequest is the submit-move payload.
type PlayRequest struct {
	GameID string `json:"game_id"`
	Tile   Tile   `json:"tile"`
	Left   bool   `json:"left"`
}

// GameRequest targets one game with no further payload.
type GameRequest struct {
	GameID string `json:"game_id"`
}
