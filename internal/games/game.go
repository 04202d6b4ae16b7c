package games

import (
	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/blackjackr/internal/discord"
)

// Handler answers the interactions of one game
type Handler interface {
	// HandleStart handles the game's slash command
	HandleStart(s discord.SessionHandler, i *discordgo.InteractionCreate)

	// HandleButton handles presses on the game's buttons
	HandleButton(s discord.SessionHandler, i *discordgo.InteractionCreate)
}

// Factory describes a game to the bot and builds its handler
type Factory interface {
	// Command returns the slash command that starts the game
	Command() *discordgo.ApplicationCommand

	// ButtonPrefix is the CustomID prefix shared by the game's buttons
	ButtonPrefix() string

	// CreateHandler creates the game's interaction handler
	CreateHandler() Handler
}
