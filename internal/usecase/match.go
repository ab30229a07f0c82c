package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/isola/internal/entity"
	"github.com/rocketscienceinc/isola/internal/isola"
	"github.com/rocketscienceinc/isola/internal/signal"
)

const defaultPublishTimeout = 2 * time.Second

type eventRelay interface {
	Publish(ctx context.Context, event *entity.Event) error
}

// Status is the text a renderer shows around the board.
type Status struct {
	Top    string
	Bottom string
	Phase  isola.Phase
	Player *entity.Player
	Over   bool
}

// Match is one game between two named players. It owns the engine, keeps the
// status lines in step with it and forwards every engine event to the relay.
type Match struct {
	logger *slog.Logger

	id      string
	engine  *isola.Engine
	players [2]*entity.Player
	status  Status

	engineOpts []isola.Option

	relay          eventRelay
	publishTimeout time.Duration
}

type MatchOption func(*Match)

// WithRelay - forwards engine events to relay. A nil relay disables forwarding.
func WithRelay(relay eventRelay, timeout time.Duration) MatchOption {
	return func(that *Match) {
		that.relay = relay
		if timeout > 0 {
			that.publishTimeout = timeout
		}
	}
}

// WithEngineOptions - options handed to the engine constructor.
func WithEngineOptions(opts ...isola.Option) MatchOption {
	return func(that *Match) {
		that.engineOpts = append(that.engineOpts, opts...)
	}
}

// NewMatch - validates the names and builds the engine. ctx bounds the relay
// publishing for the lifetime of the match.
func NewMatch(ctx context.Context, logger *slog.Logger, size int, names [2]string, opts ...MatchOption) (*Match, error) {
	match := &Match{
		id:             uuid.NewString(),
		publishTimeout: defaultPublishTimeout,
	}

	for _, opt := range opts {
		opt(match)
	}

	match.logger = logger.With("component", "match", "matchID", match.id)

	for i, seat := range []isola.Player{isola.Player1, isola.Player2} {
		player, err := entity.NewPlayer(seat, names[i])
		if err != nil {
			return nil, fmt.Errorf("invalid player: %w", err)
		}

		match.players[i] = player
	}

	engine, err := isola.New(size, match.engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	match.engine = engine

	engine.OnCellStateChange().Listen(func(change isola.CellStateChange) {
		match.publish(ctx, entity.NewCellEvent(match.id, change))
	})

	engine.OnGameStateChange().Listen(func(change isola.GameStateChange) {
		match.updateStatus(change)
		match.publish(ctx, entity.NewGameEvent(match.id, change, match.Player(change.Player)))
	})

	return match, nil
}

// Start - random placement, Player1 to move.
func (that *Match) Start() error {
	if err := that.engine.Init(); err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}

	that.logger.Info("match started",
		"size", that.engine.Size(),
		"player1", that.engine.PlayerPosition(isola.Player1).String(),
		"player2", that.engine.PlayerPosition(isola.Player2).String(),
	)

	return nil
}

// StartAt - same as Start with fixed starting positions.
func (that *Match) StartAt(p1, p2 isola.Position) error {
	if err := that.engine.InitAt(p1, p2); err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}

	that.logger.Info("match started", "size", that.engine.Size(), "player1", p1.String(), "player2", p2.String())

	return nil
}

// Play - forwards a user selection to the engine with the legality check on.
func (that *Match) Play(pos isola.Position) bool {
	log := that.logger.With("method", "Play")

	phase, player := that.engine.Phase(), that.engine.ActivePlayer()

	if !that.engine.AttemptPlay(pos, false) {
		log.Debug("play rejected", "cell", pos.String(), "phase", phase.String(), "player", player.String())
		return false
	}

	log.Debug("play accepted", "cell", pos.String(), "phase", phase.String(), "player", player.String())

	return true
}

func (that *Match) ID() string {
	return that.id
}

func (that *Match) Status() Status {
	return that.status
}

// Player - the named player sitting in seat.
func (that *Match) Player(seat isola.Player) *entity.Player {
	return that.players[seat]
}

func (that *Match) Size() int {
	return that.engine.Size()
}

func (that *Match) PlayableCells() []isola.Position {
	return that.engine.PlayableCells()
}

func (that *Match) OnCellStateChange() *signal.Signal[isola.CellStateChange] {
	return that.engine.OnCellStateChange()
}

func (that *Match) OnGameStateChange() *signal.Signal[isola.GameStateChange] {
	return that.engine.OnGameStateChange()
}

func (that *Match) updateStatus(change isola.GameStateChange) {
	player := that.Player(change.Player)

	status := Status{
		Phase:  change.Phase,
		Player: player,
	}

	switch change.Phase {
	case isola.Move:
		status.Top = "MOVE"
		status.Bottom = player.Label() + "'S TURN"
	case isola.Destroy:
		status.Top = "DESTROY"
		status.Bottom = player.Label() + "'S TURN"
	case isola.Win:
		status.Top = player.Label() + " WINS!"
		status.Over = true

		that.logger.Info("match finished", "winner", player.Name, "seat", player.Seat.String())
	}

	that.status = status
}

func (that *Match) publish(ctx context.Context, event *entity.Event) {
	if that.relay == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, that.publishTimeout)
	defer cancel()

	if err := that.relay.Publish(ctx, event); err != nil {
		that.logger.Error("failed to relay event", "type", event.Type, "error", err)
	}
}
