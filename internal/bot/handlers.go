package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/blackjackr/internal/discord"
	"github.com/fadedpez/blackjackr/internal/types"
)

// handleSlashCommand routes a slash command to its game
func (b *Bot) handleSlashCommand(s discord.SessionHandler, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name

	handler, ok := b.handlers[name]
	if !ok {
		b.logger.Warn("Unknown command: %s", name)
		b.sendError(s, i, types.NewGameError(types.ErrInvalidCommand, fmt.Sprintf("Unknown command: %s", name)))
		return
	}

	handler.HandleStart(s, i)
}

// handleButton routes a button press to the game owning its prefix
func (b *Bot) handleButton(s discord.SessionHandler, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	for prefix, name := range b.prefixes {
		if strings.HasPrefix(customID, prefix) {
			b.handlers[name].HandleButton(s, i)
			return
		}
	}

	b.logger.Warn("Unknown component interaction: %s", customID)
	b.sendError(s, i, types.NewGameError(types.ErrInvalidAction, "That button no longer does anything"))
}

func (b *Bot) sendError(s discord.SessionHandler, i *discordgo.InteractionCreate, err error) {
	if sendErr := discord.SendErrorResponse(s, i, err); sendErr != nil {
		b.logger.Error("Failed to send error response: %v", sendErr)
	}
}
