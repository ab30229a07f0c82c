package isola

import "github.com/rocketscienceinc/isola/internal/signal"

// OnCellStateChange - fired once per cell mutation, before the game event it causes.
func (that *Engine) OnCellStateChange() *signal.Signal[CellStateChange] {
	return &that.cellChanged
}

// OnGameStateChange - fired once per phase transition, after the playable cells
// have been recomputed.
func (that *Engine) OnGameStateChange() *signal.Signal[GameStateChange] {
	return &that.gameChanged
}

func (that *Engine) Size() int {
	return that.size
}

func (that *Engine) Phase() Phase {
	return that.phase
}

// ActivePlayer - the player to act, or the winner once the phase is Win.
func (that *Engine) ActivePlayer() Player {
	return that.active
}

// Winner - the winning player, ok is false while the game is still running.
func (that *Engine) Winner() (Player, bool) {
	if that.phase != Win {
		return 0, false
	}

	return that.active, true
}

// Started - true once Init or InitAt succeeded.
func (that *Engine) Started() bool {
	return that.started
}

// PlayableCells - copy of the legal targets for the current phase.
func (that *Engine) PlayableCells() []Position {
	cells := make([]Position, len(that.playable))
	copy(cells, that.playable)

	return cells
}

// IsPlayable - exact coordinate membership in the playable set.
func (that *Engine) IsPlayable(pos Position) bool {
	for _, cell := range that.playable {
		if cell == pos {
			return true
		}
	}

	return false
}

// CellState - state of the cell at pos. Out of bounds positions read as Destroyed.
func (that *Engine) CellState(pos Position) CellState {
	if !that.InBounds(pos) {
		return Destroyed
	}

	return that.cell(pos)
}

// PlayerPosition - where the player's token stands.
func (that *Engine) PlayerPosition(player Player) Position {
	return that.positions[player]
}

// Board - copy of every cell, indexed [row][col].
func (that *Engine) Board() [][]CellState {
	board := make([][]CellState, that.size)
	for row := range that.cells {
		board[row] = make([]CellState, that.size)
		copy(board[row], that.cells[row])
	}

	return board
}

func (that *Engine) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < that.size && pos.Col >= 0 && pos.Col < that.size
}
