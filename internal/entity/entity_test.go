package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/isola/internal/apperror"
	"github.com/rocketscienceinc/isola/internal/isola"
)

func TestNewPlayer(t *testing.T) {
	t.Run("Trims the display name", func(t *testing.T) {
		// When: a player is created with surrounding spaces
		player, err := NewPlayer(isola.Player1, "  alice ")

		// Then: the name is trimmed and the label upper-cased
		require.NoError(t, err)
		assert.Equal(t, "alice", player.Name)
		assert.Equal(t, "ALICE", player.Label())
		assert.Equal(t, isola.Player1, player.Seat)
	})

	t.Run("Rejects blank names", func(t *testing.T) {
		for _, name := range []string{"", "   ", "\t\n"} {
			player, err := NewPlayer(isola.Player2, name)

			require.ErrorIs(t, err, apperror.ErrInvalidPlayerName)
			assert.Nil(t, player)
		}
	})
}

func TestNewCellEvent(t *testing.T) {
	// Given: a destroyed cell notification
	change := isola.CellStateChange{Position: isola.Position{Row: 0, Col: 2}, State: isola.Destroyed}

	// When: it is converted and encoded
	event := NewCellEvent("match-1", change)
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	// Then: row zero survives encoding and no game fields are present
	assert.True(t, event.IsCell())
	assert.JSONEq(t, `{"type":"cell","match_id":"match-1","cell":{"row":0,"col":2},"state":"destroyed"}`, string(payload))
}

func TestNewGameEvent(t *testing.T) {
	t.Run("Carries the player name", func(t *testing.T) {
		player := &Player{Seat: isola.Player2, Name: "Bob"}
		change := isola.GameStateChange{Phase: isola.Win, Player: isola.Player2}

		event := NewGameEvent("match-1", change, player)

		assert.True(t, event.IsGame())
		assert.Equal(t, "win", event.Phase)
		assert.Equal(t, "player2", event.Player)
		assert.Equal(t, "Bob", event.Name)
		assert.Nil(t, event.Cell)
	})

	t.Run("Name is optional", func(t *testing.T) {
		event := NewGameEvent("match-1", isola.GameStateChange{Phase: isola.Move, Player: isola.Player1}, nil)

		assert.Empty(t, event.Name)
		assert.Equal(t, "move", event.Phase)
	})
}
