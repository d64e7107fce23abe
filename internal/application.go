package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/session"
	"github.com/rocketscienceinc/tictactoe-cli/internal/terminal"
)

// Options carry CLI-level knobs that are not part of the config file.
type Options struct {
	Seed int64 // 0 means time-seeded
}

// RunApp - wires the scoreboard, printer and session, then runs the session
// until it ends or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, opts Options) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // turn order only

	if !terminal.IsInteractive() {
		log.Warn("stdin is not a terminal; reading commands from the pipe")
	}

	scores := repository.NewScoreboard()
	printer := terminal.NewPrinter(os.Stdout)

	sess := session.New(logger, os.Stdin, printer, rng, scores, session.Options{
		DefaultNameX: conf.Game.PlayerXName,
		DefaultNameO: conf.Game.PlayerOName,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- sess.Run(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("session ended: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("application context canceled, shutting down")
		return nil
	}
}
