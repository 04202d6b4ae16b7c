package blackjack

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/blackjackr/pkg/entities"
	bj "github.com/fadedpez/blackjackr/pkg/services/blackjack"
)

// Button IDs
const (
	ButtonPrefix  = "blackjack_"
	ButtonHit     = ButtonPrefix + "hit"
	ButtonStand   = ButtonPrefix + "stand"
	ButtonRestart = ButtonPrefix + "restart"
)

var suitEmoji = map[entities.Suit]string{
	entities.Hearts:   "♥️",
	entities.Diamonds: "♦️",
	entities.Clubs:    "♣️",
	entities.Spades:   "♠️",
}

func formatCard(card entities.Card) string {
	return string(card.Rank) + suitEmoji[card.Suit]
}

func formatCards(cards []entities.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = formatCard(card)
	}
	return strings.Join(parts, " ")
}

func formatHand(name string, hand bj.HandView) string {
	score := fmt.Sprintf("%d", hand.Score)
	if hand.Soft {
		score = "soft " + score
	}
	return fmt.Sprintf("**%s** (%s): %s", name, score, formatCards(hand.Cards))
}

// FormatRound renders a round snapshot as message content
func FormatRound(snap bj.RoundSnapshot) string {
	var b strings.Builder
	b.WriteString("🃏 **Blackjack**\n\n")
	b.WriteString(formatHand("Dealer", snap.Dealer))
	b.WriteString("\n")
	b.WriteString(formatHand("You", snap.Player))
	b.WriteString("\n\n")

	switch snap.State {
	case bj.StateResolved:
		emoji := "😞"
		switch {
		case snap.Outcome.PlayerWon():
			emoji = "🎉"
		case snap.Outcome == bj.OutcomePush:
			emoji = "🤝"
		}
		b.WriteString(fmt.Sprintf("%s **%s**", emoji, snap.Message))
	case bj.StateInProgress:
		b.WriteString("Hit or stand?")
	}
	return b.String()
}

// Buttons returns the components for the round: Hit, Stand and Restart while
// in progress, only Restart once resolved
func Buttons(snap bj.RoundSnapshot) []discordgo.MessageComponent {
	row := discordgo.ActionsRow{}

	if snap.State == bj.StateInProgress {
		row.Components = append(row.Components,
			discordgo.Button{
				Label:    "Hit",
				Style:    discordgo.PrimaryButton,
				CustomID: ButtonHit,
			},
			discordgo.Button{
				Label:    "Stand",
				Style:    discordgo.SecondaryButton,
				CustomID: ButtonStand,
			},
		)
	}

	row.Components = append(row.Components, discordgo.Button{
		Label:    "Restart",
		Style:    discordgo.SuccessButton,
		CustomID: ButtonRestart,
	})

	return []discordgo.MessageComponent{row}
}
