package blackjack

import (
	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/blackjackr/internal/discord"
	"github.com/fadedpez/blackjackr/internal/games"
	"github.com/fadedpez/blackjackr/internal/logging"
	"github.com/fadedpez/blackjackr/internal/types"
	bj "github.com/fadedpez/blackjackr/pkg/services/blackjack"
)

// Handler plays blackjack over Discord interactions. Every user gets their own
// table, keyed by user ID.
type Handler struct {
	tables Tables
	logger *logging.Logger
}

// NewHandler creates a Discord handler backed by tables
func NewHandler(tables Tables, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default
	}
	return &Handler{
		tables: tables,
		logger: logger,
	}
}

var _ games.Handler = (*Handler)(nil)

// HandleStart shows the user's round, dealing one if they have none yet
func (h *Handler) HandleStart(s discord.SessionHandler, i *discordgo.InteractionCreate) {
	userID := discord.UserID(i)
	snap, err := h.tables.Snapshot(userID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	if snap.State == bj.StateResolved {
		if snap, err = h.tables.Restart(userID); err != nil {
			h.respondError(s, i, err)
			return
		}
	}

	if err := discord.SendGameResponse(s, i, FormatRound(snap), Buttons(snap)); err != nil {
		h.logger.Error("Failed to send blackjack round: %v", err)
	}
}

// HandleButton routes hit, stand and restart presses and updates the message
func (h *Handler) HandleButton(s discord.SessionHandler, i *discordgo.InteractionCreate) {
	userID := discord.UserID(i)
	customID := i.MessageComponentData().CustomID

	var action func(string) (bj.RoundSnapshot, error)
	switch customID {
	case ButtonHit:
		action = h.tables.Hit
	case ButtonStand:
		action = h.tables.Stand
	case ButtonRestart:
		action = h.tables.Restart
	default:
		h.respondError(s, i, types.NewGameError(types.ErrInvalidAction, "Unknown blackjack action"))
		return
	}

	// a round message belongs to the user who started it
	if owner := messageOwner(i); owner != "" && owner != userID {
		h.respondError(s, i, types.NewGameError(types.ErrInvalidAction, "This is not your table, start your own with /blackjack"))
		return
	}

	logger := h.logger.WithFields(map[string]interface{}{
		"user":   userID,
		"action": customID,
	})
	snap, err := action(userID)
	if err != nil {
		logger.LogError(err)
		h.respondError(s, i, err)
		return
	}

	logger.Debug("Round %s is %s", snap.ID, snap.State)
	if err := discord.UpdateGameResponse(s, i, FormatRound(snap), Buttons(snap)); err != nil {
		logger.Error("Failed to update blackjack round: %v", err)
	}
}

func (h *Handler) respondError(s discord.SessionHandler, i *discordgo.InteractionCreate, err error) {
	if sendErr := discord.SendErrorResponse(s, i, err); sendErr != nil {
		h.logger.Error("Failed to send error response: %v", sendErr)
	}
}

// messageOwner returns the user who ran the command that created the message
func messageOwner(i *discordgo.InteractionCreate) string {
	if i.Message == nil || i.Message.Interaction == nil || i.Message.Interaction.User == nil {
		return ""
	}
	return i.Message.Interaction.User.ID
}
