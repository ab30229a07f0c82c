package entity

import "github.com/rocketscienceinc/isola/internal/isola"

const (
	EventCell = "cell"
	EventGame = "game"
)

// Event is the relayed form of an engine notification.
type Event struct {
	Type    string          `json:"type"`
	MatchID string          `json:"match_id"`
	Cell    *isola.Position `json:"cell,omitempty"`
	State   string          `json:"state,omitempty"`
	Phase   string          `json:"phase,omitempty"`
	Player  string          `json:"player,omitempty"`
	Name    string          `json:"name,omitempty"`
}

func NewCellEvent(matchID string, change isola.CellStateChange) *Event {
	cell := change.Position

	return &Event{
		Type:    EventCell,
		MatchID: matchID,
		Cell:    &cell,
		State:   change.State.String(),
	}
}

// NewGameEvent - player is the active player, or the winner once the phase is win.
func NewGameEvent(matchID string, change isola.GameStateChange, player *Player) *Event {
	event := &Event{
		Type:    EventGame,
		MatchID: matchID,
		Phase:   change.Phase.String(),
		Player:  change.Player.String(),
	}

	if player != nil {
		event.Name = player.Name
	}

	return event
}

func (that *Event) IsCell() bool {
	return that.Type == EventCell
}

func (that *Event) IsGame() bool {
	return that.Type == EventGame
}
