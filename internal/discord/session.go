package discord

import (
	"github.com/bwmarrin/discordgo"
)

// SessionHandler is the part of a discordgo session the bot talks to
type SessionHandler interface {
	// Interactions
	InteractionRespond(i *discordgo.Interaction, r *discordgo.InteractionResponse, options ...discordgo.RequestOption) error

	// Application commands
	ApplicationCommandCreate(appID string, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID string, guildID string, cmdID string, options ...discordgo.RequestOption) error
	ApplicationCommands(appID string, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)

	// Connection
	Open() error
	Close() error
	AddHandler(handler interface{}) func()
}

// Session wraps a discordgo.Session
type Session struct {
	*discordgo.Session
}

// NewSession creates a bot session for token
func NewSession(token string) (*Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	return &Session{Session: s}, nil
}

var _ SessionHandler = (*Session)(nil)
