package main

import (
	"fmt"

	"github.com/fadedpez/blackjackr/internal/bot"
	"github.com/fadedpez/blackjackr/internal/discord"
	"github.com/fadedpez/blackjackr/internal/games"
	"github.com/fadedpez/blackjackr/pkg/games/blackjack"
)

// DiscordCmd runs the Discord bot
type DiscordCmd struct {
	Guild string `help:"Register commands in this guild only (overrides GUILD_ID)"`
}

func (c *DiscordCmd) Run(cli *CLI) error {
	cfg, logger, err := setup(cli)
	if err != nil {
		return err
	}
	if c.Guild != "" {
		cfg.GuildID = c.Guild
	}
	if err := cfg.ValidateDiscord(); err != nil {
		return err
	}
	logger = logger.WithField("adapter", "discord")

	ctx, cancel := signalContext(logger)
	defer cancel()

	session, err := discord.NewSession(cfg.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	registry := games.NewRegistry()
	if err := registry.RegisterGame(blackjack.CommandName, blackjack.NewFactory(newManager(ctx, cfg, logger), logger)); err != nil {
		return err
	}

	b, err := bot.New(cfg, session, registry, logger)
	if err != nil {
		return err
	}
	if err := b.Start(); err != nil {
		return err
	}
	logger.Info("Bot is running. Press Ctrl+C to exit")

	<-ctx.Done()
	b.Shutdown()
	return nil
}
