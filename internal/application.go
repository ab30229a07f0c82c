package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/isola/internal/config"
	"github.com/rocketscienceinc/isola/internal/terminal"
	"github.com/rocketscienceinc/isola/internal/transport/redis"
	"github.com/rocketscienceinc/isola/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs matches on the terminal until the players stop or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var opts []usecase.MatchOption

	if conf.Redis.Enabled {
		relay, err := connectRelay(ctx, conf)
		if err != nil {
			return err
		}

		defer func() {
			if err = relay.Close(); err != nil {
				log.Error("could not close event relay", "error", err)
			}
		}()

		opts = append(opts, usecase.WithRelay(relay, conf.Redis.PublishTimeout))
	}

	renderer := terminal.New(logger, in, out)

	// run the game loop
	gameErrCh := make(chan error, 1)
	go func() {
		gameErrCh <- playMatches(ctx, logger, conf, renderer, opts)
	}()

	select {
	case err := <-gameErrCh:
		if err != nil {
			return fmt.Errorf("game loop error: %w", err)
		}

		log.Info("Players left, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func connectRelay(ctx context.Context, conf *config.Config) (*redis.Client, error) {
	addr := conf.Redis.GetRedisAddr()
	if addr == "" {
		return nil, ErrAddrNotFound
	}

	relay, err := redis.Connect(ctx, addr, conf.Redis.ChannelPrefix)
	if err != nil {
		return nil, fmt.Errorf("could not connect to event relay: %w", err)
	}

	return relay, nil
}

// playMatches - one match after another while the players ask for a rematch.
func playMatches(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	renderer *terminal.Renderer,
	opts []usecase.MatchOption,
) error {
	log := logger.With("method", "playMatches")

	for {
		match, err := usecase.NewMatch(ctx, logger, conf.GridSize, conf.Players.Names(), opts...)
		if err != nil {
			return fmt.Errorf("could not create match: %w", err)
		}

		log.Debug("match created", "matchID", match.ID())

		outcome, err := renderer.Run(ctx, match)
		if err != nil {
			return fmt.Errorf("match %s: %w", match.ID(), err)
		}

		if outcome == terminal.OutcomeQuit {
			return nil
		}

		again, err := renderer.AskRematch(ctx)
		if err != nil {
			return fmt.Errorf("could not read rematch answer: %w", err)
		}

		if !again {
			return nil
		}
	}
}
