package main

import (
	"fmt"
	"os"

	"github.com/fadedpez/blackjackr/internal/logging"
	"github.com/fadedpez/blackjackr/internal/tui"
)

// TUICmd plays in the terminal
type TUICmd struct {
	LogFile string `default:"blackjackr.log" help:"Log file, the terminal belongs to the game"`
}

func (c *TUICmd) Run(cli *CLI) error {
	cfg, _, err := setup(cli)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()
	logger := logging.NewLoggerWithOutput(logging.ParseLevel(cfg.LogLevel), logFile).
		WithField("adapter", "tui")

	ctx, cancel := signalContext(logger)
	defer cancel()

	return tui.Run(newManager(ctx, cfg, logger), logger)
}
