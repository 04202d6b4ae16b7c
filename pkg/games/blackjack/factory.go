package blackjack

import (
	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/blackjackr/internal/games"
	"github.com/fadedpez/blackjackr/internal/logging"
)

// CommandName is the slash command that starts a round
const CommandName = "blackjack"

// Factory registers blackjack with the bot's game registry
type Factory struct {
	tables Tables
	logger *logging.Logger
}

// NewFactory creates a new blackjack factory
func NewFactory(tables Tables, logger *logging.Logger) *Factory {
	return &Factory{
		tables: tables,
		logger: logger,
	}
}

var _ games.Factory = (*Factory)(nil)

// Command implements games.Factory
func (f *Factory) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        CommandName,
		Description: "Play a round of blackjack against the dealer",
	}
}

// ButtonPrefix implements games.Factory
func (f *Factory) ButtonPrefix() string {
	return ButtonPrefix
}

// CreateHandler implements games.Factory
func (f *Factory) CreateHandler() games.Handler {
	return NewHandler(f.tables, f.logger)
}
