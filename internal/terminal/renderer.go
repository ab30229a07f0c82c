// Package terminal renders a match as text and turns typed coordinates into plays.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/isola/internal/isola"
	"github.com/rocketscienceinc/isola/internal/signal"
	"github.com/rocketscienceinc/isola/internal/usecase"
)

var (
	ErrBadCommand   = errors.New("expected \"row col\", help or quit")
	ErrOutsideBoard = errors.New("cell is outside the board")
)

type match interface {
	Size() int
	Start() error
	Play(pos isola.Position) bool
	Status() usecase.Status
	PlayableCells() []isola.Position
	OnCellStateChange() *signal.Signal[isola.CellStateChange]
	OnGameStateChange() *signal.Signal[isola.GameStateChange]
}

// Outcome tells the caller how a match loop ended.
type Outcome uint8

const (
	OutcomeFinished Outcome = iota
	OutcomeQuit
)

type Renderer struct {
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer

	handlers map[string]func(v *view) (bool, error)
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Renderer {
	renderer := &Renderer{
		logger: logger.With("component", "terminal"),
		in:     bufio.NewScanner(in),
		out:    out,

		handlers: make(map[string]func(*view) (bool, error)),
	}

	renderer.handlers["help"] = renderer.handleHelp
	renderer.handlers["?"] = renderer.handleHelp
	renderer.handlers["quit"] = renderer.handleQuit
	renderer.handlers["q"] = renderer.handleQuit
	renderer.handlers["exit"] = renderer.handleQuit

	return renderer
}

// Run - draws the match and feeds typed cells to it until someone wins, the
// player quits or the input ends.
func (that *Renderer) Run(ctx context.Context, m match) (Outcome, error) {
	log := that.logger.With("method", "Run")

	v := newView(m)

	cellSub := m.OnCellStateChange().Listen(v.setCell)
	gameSub := m.OnGameStateChange().Listen(func(change isola.GameStateChange) {
		v.setActive(m.PlayableCells(), change.Phase == isola.Move)
	})

	defer cellSub.Cancel()
	defer gameSub.Cancel()

	if err := m.Start(); err != nil {
		return OutcomeQuit, fmt.Errorf("failed to start match: %w", err)
	}

	if err := that.write(helpText); err != nil {
		return OutcomeQuit, err
	}

	for {
		if err := that.write(v.draw(m.Status())); err != nil {
			return OutcomeQuit, err
		}

		if m.Status().Over {
			return OutcomeFinished, nil
		}

		line, err := that.readLine(ctx, "> ")
		if errors.Is(err, io.EOF) {
			log.Info("input closed, leaving match")
			return OutcomeQuit, nil
		}

		if err != nil {
			return OutcomeQuit, err
		}

		quit, err := that.handleLine(v, line)
		if err != nil {
			return OutcomeQuit, err
		}

		if quit {
			return OutcomeQuit, nil
		}
	}
}

// AskRematch - true when the player answers yes.
func (that *Renderer) AskRematch(ctx context.Context) (bool, error) {
	line, err := that.readLine(ctx, "play again? [y/N] ")
	if errors.Is(err, io.EOF) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// handleLine - true means the player asked to leave.
func (that *Renderer) handleLine(v *view, line string) (bool, error) {
	log := that.logger.With("method", "handleLine")

	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}

	if handler, ok := that.handlers[strings.ToLower(line)]; ok {
		return handler(v)
	}

	pos, err := parseCell(line, v.size)
	if err != nil {
		log.Debug("unreadable input", "line", line, "error", err)
		return false, that.write(err.Error() + "\n")
	}

	if !v.match.Play(pos) {
		return false, that.write("illegal play\n")
	}

	return false, nil
}

func (that *Renderer) handleHelp(*view) (bool, error) {
	return false, that.write(helpText)
}

func (that *Renderer) handleQuit(*view) (bool, error) {
	return true, nil
}

func (that *Renderer) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("read aborted: %w", err)
	}

	if err := that.write(prompt); err != nil {
		return "", err
	}

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", io.EOF
	}

	return that.in.Text(), nil
}

func (that *Renderer) write(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// parseCell - "row col" or "row,col", 1-based as printed on the board.
func parseCell(line string, size int) (isola.Position, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 2 {
		return isola.Position{}, ErrBadCommand
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return isola.Position{}, ErrBadCommand
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return isola.Position{}, ErrBadCommand
	}

	if row < 1 || row > size || col < 1 || col > size {
		return isola.Position{}, fmt.Errorf("%w: %d %d", ErrOutsideBoard, row, col)
	}

	return isola.Position{Row: row - 1, Col: col - 1}, nil
}

const helpText = `type "row col" to pick a cell (1-based), "help" for this text, "quit" to leave
  1 2   players      #   destroyed
  +     move target  .   clear
`
