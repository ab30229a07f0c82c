package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/isola/internal/apperror"
	"github.com/rocketscienceinc/isola/internal/isola"
)

// Player is a seat at the board together with its display name.
type Player struct {
	Seat isola.Player `json:"seat"`
	Name string       `json:"name"`
}

func NewPlayer(seat isola.Player, name string) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidPlayerName, seat)
	}

	return &Player{Seat: seat, Name: name}, nil
}

// Label - upper-cased name used in status lines.
func (that *Player) Label() string {
	return strings.ToUpper(that.Name)
}
