// Package isola is the rules engine of the Isola board game: players alternately
// move their token to an adjacent clear cell and then destroy a clear cell,
// and a player who cannot move loses.
//
// The engine is a synchronous state machine. It is not safe for concurrent use
// and listeners must not call AttemptPlay while being notified.
package isola

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/isola/internal/apperror"
	"github.com/rocketscienceinc/isola/internal/signal"
)

var ErrAlreadyInitialized = errors.New("game is already initialized")

// Option configures an Engine.
type Option func(*Engine)

// WithRand - sets the random source used for the initial placement.
func WithRand(rnd *rand.Rand) Option {
	return func(that *Engine) {
		that.rnd = rnd
	}
}

// Engine owns the board, both players and the turn state of one match.
type Engine struct {
	size  int
	cells [][]CellState

	positions [2]Position
	playable  []Position
	active    Player
	phase     Phase
	started   bool

	rnd *rand.Rand

	cellChanged signal.Signal[CellStateChange]
	gameChanged signal.Signal[GameStateChange]
}

// New - creates an engine with an all-clear size×size board.
func New(size int, opts ...Option) (*Engine, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}

	cells := make([][]CellState, size)
	for row := range cells {
		cells[row] = make([]CellState, size)
	}

	engine := &Engine{
		size:      size,
		cells:     cells,
		positions: [2]Position{noPosition, noPosition},
		rnd:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint: gosec // game placement, not crypto
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine, nil
}

// ValidateSize - checks that size is odd and within [MinSize, MaxSize].
func ValidateSize(size int) error {
	if size < MinSize || size > MaxSize || size%2 == 0 {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidGridSize, size)
	}

	return nil
}

// Init - places both players at random and starts the game with Player1 to move.
// Player2 is resampled until it shares neither a row nor a column with Player1.
func (that *Engine) Init() error {
	if that.started {
		return ErrAlreadyInitialized
	}

	p1 := that.randomPosition()

	p2 := that.randomPosition()
	for p2.Row == p1.Row || p2.Col == p1.Col {
		p2 = that.randomPosition()
	}

	that.start(p1, p2)

	return nil
}

// InitAt - same as Init with fixed starting positions.
func (that *Engine) InitAt(p1, p2 Position) error {
	if that.started {
		return ErrAlreadyInitialized
	}

	if !that.InBounds(p1) || !that.InBounds(p2) {
		return fmt.Errorf("%w: %s, %s", apperror.ErrPositionOutOfBounds, p1, p2)
	}

	if p1.Row == p2.Row || p1.Col == p2.Col {
		return fmt.Errorf("%w: %s, %s", apperror.ErrInvalidPlacement, p1, p2)
	}

	that.start(p1, p2)

	return nil
}

func (that *Engine) start(p1, p2 Position) {
	that.started = true

	that.movePlayer(Player1, p1)
	that.movePlayer(Player2, p2)
	that.setGameState(Move, Player1)
}

// AttemptPlay - moves the active player to pos in the Move phase, or destroys pos
// in the Destroy phase. It returns false, without any change or event, when the
// game is over or pos is not a playable cell. skipLegalityCheck bypasses the
// playable-set membership test; the target must still be a clear cell on the board.
func (that *Engine) AttemptPlay(pos Position, skipLegalityCheck bool) bool {
	if !that.started || that.phase == Win {
		return false
	}

	if skipLegalityCheck {
		if !that.InBounds(pos) || that.cell(pos) != Clear {
			return false
		}
	} else if !that.IsPlayable(pos) {
		return false
	}

	if that.phase == Move {
		that.movePlayer(that.active, pos)
	} else {
		that.setCellState(pos, Destroyed)
	}

	if winner, ok := that.checkWin(); ok {
		that.setGameState(Win, winner)
		return true
	}

	if that.phase == Move {
		that.setGameState(Destroy, that.active)
	} else {
		that.setGameState(Move, that.active.Other())
	}

	return true
}

// checkWin - the opponent being stuck is checked first: a destroy can trap them
// before their turn. Only then is the active player checked.
func (that *Engine) checkWin() (Player, bool) {
	if len(that.destinationCells(that.active.Other())) == 0 {
		return that.active, true
	}

	if len(that.destinationCells(that.active)) == 0 {
		return that.active.Other(), true
	}

	return 0, false
}

func (that *Engine) updatePlayableCells() {
	switch that.phase {
	case Move:
		that.playable = that.destinationCells(that.active)
	case Destroy:
		that.playable = that.destroyableCells()
	case Win:
		that.playable = nil
	}
}

// destinationCells - clear King's-move neighbours of the player's position.
func (that *Engine) destinationCells(player Player) []Position {
	from := that.positions[player]
	if !that.InBounds(from) {
		return nil
	}

	cells := make([]Position, 0, 8)
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}

			to := Position{Row: from.Row + dRow, Col: from.Col + dCol}
			if that.InBounds(to) && that.cell(to) == Clear {
				cells = append(cells, to)
			}
		}
	}

	return cells
}

func (that *Engine) destroyableCells() []Position {
	cells := make([]Position, 0, that.size*that.size)
	for row := range that.cells {
		for col, state := range that.cells[row] {
			if state == Clear {
				cells = append(cells, Position{Row: row, Col: col})
			}
		}
	}

	return cells
}

func (that *Engine) movePlayer(player Player, to Position) {
	if from := that.positions[player]; that.InBounds(from) {
		that.setCellState(from, Clear)
	}

	that.setCellState(to, player.Occupancy())
	that.positions[player] = to
}

func (that *Engine) setCellState(pos Position, state CellState) {
	that.cells[pos.Row][pos.Col] = state
	that.cellChanged.Send(CellStateChange{Position: pos, State: state})
}

func (that *Engine) setGameState(phase Phase, player Player) {
	that.phase = phase
	that.active = player
	that.updatePlayableCells()
	that.gameChanged.Send(GameStateChange{Phase: phase, Player: player})
}

func (that *Engine) randomPosition() Position {
	return Position{Row: that.rnd.IntN(that.size), Col: that.rnd.IntN(that.size)}
}

func (that *Engine) cell(pos Position) CellState {
	return that.cells[pos.Row][pos.Col]
}
