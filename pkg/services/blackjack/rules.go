package blackjack

import (
	"strconv"

	"github.com/fadedpez/blackjackr/pkg/entities"
)

const (
	BlackjackValue   = 21 // Best possible hand value; anything above busts
	DealerStandValue = 17 // Dealer draws on anything below this, soft or hard
	InitialCards     = 2  // Cards dealt to each side at the start of a round
)

func CardValue(card entities.Card) int {
	switch card.Rank {
	case entities.Ace:
		return 11
	case entities.Jack, entities.Queen, entities.King:
		return 10
	default:
		val, _ := strconv.Atoi(string(card.Rank))
		return val
	}
}

func IsAce(card entities.Card) bool {
	return card.Rank == entities.Ace
}

// handTotal returns the best total and how many aces are still counted as 11
func handTotal(cards []entities.Card) (int, int) {
	total := 0
	softAces := 0

	for _, card := range cards {
		total += CardValue(card)
		if IsAce(card) {
			softAces++
		}
	}

	for total > BlackjackValue && softAces > 0 {
		total -= 10
		softAces--
	}

	return total, softAces
}

// HandValue returns the highest total not above 21 reachable by counting
// aces as 1 or 11, or the lowest total when every choice busts.
func HandValue(cards []entities.Card) int {
	total, _ := handTotal(cards)
	return total
}

// IsSoft reports whether an ace is still counted as 11
func IsSoft(cards []entities.Card) bool {
	_, softAces := handTotal(cards)
	return softAces > 0
}

// IsBust checks if a hand exceeds 21
func IsBust(cards []entities.Card) bool {
	return HandValue(cards) > BlackjackValue
}

// DealerShouldDraw reports whether the dealer takes another card
func DealerShouldDraw(cards []entities.Card) bool {
	return HandValue(cards) < DealerStandValue
}
