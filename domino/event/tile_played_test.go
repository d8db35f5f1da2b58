package event_test

import (
	"testing"

	"github.com/dominoes-online/server/domino/event"
	"github.com/dominoes-online/server/domino/tile"
	"github.com/stretchr/testify/require"
)

func TestTilePlayed(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	event.TilePlayed.AddListener(listenerOne)
	event.TilePlayed.AddListener(listenerTwo)

	payloads := []event.TilePlayedPayload{
		{
			GameID:     "g1",
			PlayerName: "Someone",
			Tile:       tile.New(6, 6),
			Left:       true,
		},
		{
			GameID:     "g1",
			PlayerName: "Somebody",
			Tile:       tile.New(6, 3),
		},
	}

	for _, payload := range payloads {
		event.TilePlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
