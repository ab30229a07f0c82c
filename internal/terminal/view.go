package terminal

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/isola/internal/isola"
	"github.com/rocketscienceinc/isola/internal/usecase"
)

// view mirrors the board from engine events only, the way a remote renderer would.
type view struct {
	match match
	size  int
	cells [][]isola.CellState

	active    map[isola.Position]bool
	highlight bool
}

func newView(m match) *view {
	size := m.Size()

	cells := make([][]isola.CellState, size)
	for row := range cells {
		cells[row] = make([]isola.CellState, size)
	}

	return &view{
		match:  m,
		size:   size,
		cells:  cells,
		active: make(map[isola.Position]bool),
	}
}

func (that *view) setCell(change isola.CellStateChange) {
	that.cells[change.Position.Row][change.Position.Col] = change.State
}

func (that *view) setActive(cells []isola.Position, highlight bool) {
	that.active = make(map[isola.Position]bool, len(cells))
	for _, cell := range cells {
		that.active[cell] = true
	}

	that.highlight = highlight
}

func (that *view) draw(status usecase.Status) string {
	var b strings.Builder

	b.WriteString("\n" + status.Top + "\n")

	b.WriteString("   ")
	for col := 1; col <= that.size; col++ {
		fmt.Fprintf(&b, "%3d", col)
	}
	b.WriteString("\n")

	for row := range that.cells {
		fmt.Fprintf(&b, "%3d", row+1)
		for col, state := range that.cells[row] {
			fmt.Fprintf(&b, "%3s", that.glyph(isola.Position{Row: row, Col: col}, state))
		}
		b.WriteString("\n")
	}

	if status.Bottom != "" {
		b.WriteString(status.Bottom + "\n")
	}

	return b.String()
}

func (that *view) glyph(pos isola.Position, state isola.CellState) string {
	switch state {
	case isola.OccupiedByPlayer1:
		return "1"
	case isola.OccupiedByPlayer2:
		return "2"
	case isola.Destroyed:
		return "#"
	case isola.Clear:
		if that.highlight && that.active[pos] {
			return "+"
		}
		return "."
	default:
		return "?"
	}
}
