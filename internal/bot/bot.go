package bot

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/blackjackr/internal/config"
	"github.com/fadedpez/blackjackr/internal/discord"
	"github.com/fadedpez/blackjackr/internal/games"
	"github.com/fadedpez/blackjackr/internal/logging"
)

// Bot represents the Discord bot and its dependencies
type Bot struct {
	config   *config.Config
	session  discord.SessionHandler
	logger   *logging.Logger
	registry *games.Registry

	// handlers by command name, prefixes map button prefixes to command names
	handlers map[string]games.Handler
	prefixes map[string]string

	commands   []*discordgo.ApplicationCommand
	removers   []func()
	shutdownWg sync.WaitGroup
}

// New creates a bot serving every game in registry
func New(cfg *config.Config, session discord.SessionHandler, registry *games.Registry, logger *logging.Logger) (*Bot, error) {
	if logger == nil {
		logger = logging.Default
	}

	bot := &Bot{
		config:   cfg,
		session:  session,
		logger:   logger,
		registry: registry,
		handlers: make(map[string]games.Handler),
		prefixes: make(map[string]string),
		commands: make([]*discordgo.ApplicationCommand, 0),
	}

	if err := bot.registerGames(); err != nil {
		return nil, err
	}
	bot.registerHandlers()

	return bot, nil
}

// registerGames creates a handler for every registered game
func (b *Bot) registerGames() error {
	for _, name := range b.registry.ListGames() {
		factory, err := b.registry.GetFactory(name)
		if err != nil {
			return err
		}
		b.handlers[name] = factory.CreateHandler()
		b.prefixes[factory.ButtonPrefix()] = name
	}
	return nil
}

func (b *Bot) registerHandlers() {
	b.removers = append(b.removers,
		b.session.AddHandler(b.handleInteractionCreate),
		b.session.AddHandler(b.handleReady),
	)
}

// Start connects to Discord and registers the slash commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the bot
func (b *Bot) Shutdown() {
	if b.config.IsDevelopment() {
		if err := b.cleanupCommands(); err != nil {
			b.logger.Warn("Failed to clean up commands: %v", err)
		}
	}

	for _, remove := range b.removers {
		remove()
	}

	if err := b.session.Close(); err != nil {
		b.logger.Error("Error closing Discord session: %v", err)
	}

	b.shutdownWg.Wait()
}

// handleInteractionCreate is registered with discordgo and answers through
// the bot's session
func (b *Bot) handleInteractionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	b.shutdownWg.Add(1)
	defer b.shutdownWg.Done()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleSlashCommand(b.session, i)
	case discordgo.InteractionMessageComponent:
		b.handleButton(b.session, i)
	}
}

func (b *Bot) handleReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("Logged in as %s", r.User.String())
}
