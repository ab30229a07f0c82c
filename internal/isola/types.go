package isola

import "fmt"

const (
	MinSize = 3
	MaxSize = 51
)

// CellState - what a single board cell holds.
type CellState uint8

const (
	Clear CellState = iota
	OccupiedByPlayer1
	OccupiedByPlayer2
	Destroyed
)

func (that CellState) String() string {
	switch that {
	case Clear:
		return "clear"
	case OccupiedByPlayer1:
		return "player1"
	case OccupiedByPlayer2:
		return "player2"
	case Destroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(that))
	}
}

// IsOccupied - true for either player's token.
func (that CellState) IsOccupied() bool {
	return that == OccupiedByPlayer1 || that == OccupiedByPlayer2
}

// Player identifies one of the two opponents.
type Player uint8

const (
	Player1 Player = iota
	Player2
)

func (that Player) String() string {
	switch that {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return fmt.Sprintf("Player(%d)", uint8(that))
	}
}

// Other - the opponent.
func (that Player) Other() Player {
	if that == Player1 {
		return Player2
	}

	return Player1
}

// Occupancy - the cell state marking this player's token.
func (that Player) Occupancy() CellState {
	if that == Player1 {
		return OccupiedByPlayer1
	}

	return OccupiedByPlayer2
}

// Phase governs which action AttemptPlay performs.
type Phase uint8

const (
	Move Phase = iota
	Destroy
	Win
)

func (that Phase) String() string {
	switch that {
	case Move:
		return "move"
	case Destroy:
		return "destroy"
	case Win:
		return "win"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(that))
	}
}

// Position is a 0-indexed (row, column) pair.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// noPosition marks a player that has not been placed yet.
var noPosition = Position{Row: -1, Col: -1}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// CellStateChange is sent once per cell mutation.
type CellStateChange struct {
	Position Position
	State    CellState
}

// GameStateChange is sent once per phase transition. Player is the active
// player, or the winner when Phase is Win.
type GameStateChange struct {
	Phase  Phase
	Player Player
}
