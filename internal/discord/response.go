package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/blackjackr/internal/types"
)

// ResponseEmoji maps error codes to the emoji shown in front of the message
var ResponseEmoji = map[types.ErrorCode]string{
	types.ErrEmptyDeck:       "🃏",
	types.ErrInvalidState:    "⚠️",
	types.ErrGameNotFound:    "🔍",
	types.ErrInvalidAction:   "❌",
	types.ErrInvalidCommand:  "⛔",
	types.ErrInvalidArgument: "❗",
	types.ErrInternalError:   "💥",
	types.ErrNetworkError:    "🌐",
}

// Response represents a Discord interaction response
type Response struct {
	Content    string
	Components []discordgo.MessageComponent
	Ephemeral  bool
}

// NewResponse creates a new Response
func NewResponse(content string, components []discordgo.MessageComponent) *Response {
	return &Response{
		Content:    content,
		Components: components,
	}
}

// NewEphemeralResponse creates a response only the invoking user can see
func NewEphemeralResponse(content string, components []discordgo.MessageComponent) *Response {
	return &Response{
		Content:    content,
		Components: components,
		Ephemeral:  true,
	}
}

// NewErrorResponse creates an ephemeral response describing err
func NewErrorResponse(err error) *Response {
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		emoji := ResponseEmoji[gameErr.Code]
		if emoji == "" {
			emoji = "❌"
		}
		return NewEphemeralResponse(fmt.Sprintf("%s %s", emoji, gameErr.Message), nil)
	}
	return NewEphemeralResponse(fmt.Sprintf("❌ An error occurred: %v", err), nil)
}

// SendResponse answers an interaction with a new message
func SendResponse(s SessionHandler, i *discordgo.InteractionCreate, r *Response) error {
	return respond(s, i, discordgo.InteractionResponseChannelMessageWithSource, r)
}

// UpdateResponse edits the message the interaction came from
func UpdateResponse(s SessionHandler, i *discordgo.InteractionCreate, r *Response) error {
	return respond(s, i, discordgo.InteractionResponseUpdateMessage, r)
}

// SendGameResponse sends a public game message
func SendGameResponse(s SessionHandler, i *discordgo.InteractionCreate, content string, components []discordgo.MessageComponent) error {
	return SendResponse(s, i, NewResponse(content, components))
}

// UpdateGameResponse replaces the game message in place
func UpdateGameResponse(s SessionHandler, i *discordgo.InteractionCreate, content string, components []discordgo.MessageComponent) error {
	return UpdateResponse(s, i, NewResponse(content, components))
}

// SendErrorResponse sends an error response
func SendErrorResponse(s SessionHandler, i *discordgo.InteractionCreate, err error) error {
	return SendResponse(s, i, NewErrorResponse(err))
}

func respond(s SessionHandler, i *discordgo.InteractionCreate, kind discordgo.InteractionResponseType, r *Response) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: kind,
		Data: &discordgo.InteractionResponseData{
			Content:    r.Content,
			Components: r.Components,
			Flags:      getFlags(r.Ephemeral),
		},
	})
}

func getFlags(ephemeral bool) discordgo.MessageFlags {
	if ephemeral {
		return discordgo.MessageFlagsEphemeral
	}
	return 0
}

// UserID returns the ID of the user behind an interaction, in a guild or a DM
func UserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
