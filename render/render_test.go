package render_test

import (
	"testing"

	"github.com/dominoes-online/server/domino/game"
	"github.com/dominoes-online/server/domino/tile"
	"github.com/dominoes-online/server/model"
	"github.com/dominoes-online/server/render"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = model.User{ID: "u1", Name: "Alice"}
	bob   = model.User{ID: "u2", Name: "Bob"}
)

func startedGame(t *testing.T) *game.Game {
	t.Helper()
	g := game.New("g1", tile.NewSet())
	require.NoError(t, g.AddPlayer(alice))
	require.NoError(t, g.AddPlayer(bob))
	require.NoError(t, g.Start(alice))
	return g
}

func TestGameView(t *testing.T) {
	g := startedGame(t)
	view, err := render.GameView(g, bob)
	require.NoError(t, err)

	assert.Equal(t, "g1", view.GameID)
	assert.True(t, view.Started)
	assert.Equal(t, bob, view.You)
	assert.Equal(t, 1, view.PlayerNumber)
	assert.Equal(t, 1, view.NextPlayer)
	assert.Len(t, view.YourTiles, 7)
	assert.Equal(t, []model.Tile{{Left: 6, Right: 6}}, view.PlayedTiles)
	assert.Equal(t, 14, view.Remaining)
	assert.True(t, view.CanPickUp)
	assert.Nil(t, view.Winner)
	assert.Nil(t, view.HighlightTile)
	assert.NotEmpty(t, view.History)

	// other seats appear as counts only
	require.Len(t, view.Players, 2)
	assert.Equal(t, model.PlayerInfo{Number: 0, Name: "Alice", Tiles: 6}, view.Players[0])
}

func TestGameViewNeverLeaksOtherHands(t *testing.T) {
	g := startedGame(t)
	view, err := render.GameView(g, bob)
	require.NoError(t, err)

	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(view)
	require.NoError(t, err)
	serialized := string(data)

	// fixed deck: these are in Alice's hand and the draw stack respectively
	hidden := []model.Tile{
		{Left: 5, Right: 5}, {Left: 4, Right: 5}, {Left: 3, Right: 6},
		{Left: 0, Right: 0}, {Left: 1, Right: 6},
	}
	for _, tl := range hidden {
		asJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(tl)
		require.NoError(t, err)
		assert.NotContains(t, serialized, string(asJSON))
	}
}

func TestGameViewHighlight(t *testing.T) {
	g := startedGame(t)
	drawn, err := g.PickUp(bob)
	require.NoError(t, err)

	view, err := render.GameViewHighlight(g, bob, drawn)
	require.NoError(t, err)
	require.NotNil(t, view.HighlightTile)
	assert.Equal(t, model.Tile{Left: drawn.Left, Right: drawn.Right}, *view.HighlightTile)

	// the highlight is for the drawing player only; a plain view has none
	other, err := render.GameView(g, alice)
	require.NoError(t, err)
	assert.Nil(t, other.HighlightTile)
}

func TestSummaries(t *testing.T) {
	g := startedGame(t)
	summaries := render.Summaries([]*game.Game{g})
	require.Len(t, summaries, 1)
	assert.Equal(t, model.GameSummary{GameID: "g1", Players: 2, Started: true}, summaries[0])
}
