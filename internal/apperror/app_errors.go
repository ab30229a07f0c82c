package apperror

import "errors"

var (
	ErrInvalidGridSize     = errors.New("grid size must be a whole number, odd and between 3 and 51")
	ErrInvalidPlayerName   = errors.New("player name must not be empty")
	ErrInvalidPlacement    = errors.New("players must not share a row or a column")
	ErrPositionOutOfBounds = errors.New("position is outside the board")
	ErrRelayUnavailable    = errors.New("event relay is unavailable")
)
