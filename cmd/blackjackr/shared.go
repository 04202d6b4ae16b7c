package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fadedpez/blackjackr/internal/config"
	"github.com/fadedpez/blackjackr/internal/logging"
	"github.com/fadedpez/blackjackr/pkg/games/blackjack"
)

const janitorInterval = time.Minute

// setup loads the configuration, applies the global flags and builds the logger
func setup(cli *CLI) (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel)).
		WithField("env", cfg.Environment)
	return cfg, logger, nil
}

// newManager creates the table manager and starts its janitor, which stops
// with ctx
func newManager(ctx context.Context, cfg *config.Config, logger *logging.Logger) *blackjack.Manager {
	manager := blackjack.NewManager(blackjack.WithManagerLogger(logger))
	if cfg.TableIdleTimeout > 0 {
		go manager.RunJanitor(ctx, janitorInterval, cfg.TableIdleTimeout)
	}
	return manager
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext(logger *logging.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down...")
	}()
	return ctx, cancel
}
