package blackjack

import (
	"strings"

	"github.com/fadedpez/blackjackr/pkg/entities"
)

// Hand is an ordered run of cards held by the player or the dealer
type Hand struct {
	Cards []entities.Card
}

// NewHand creates a new empty hand
func NewHand() *Hand {
	return &Hand{
		Cards: make([]entities.Card, 0, 5),
	}
}

// AddCard appends a drawn card
func (h *Hand) AddCard(card entities.Card) {
	h.Cards = append(h.Cards, card)
}

// Reset empties the hand for a new round
func (h *Hand) Reset() {
	h.Cards = h.Cards[:0]
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.Cards)
}

// Value returns the best possible score for the hand
func (h *Hand) Value() int {
	return HandValue(h.Cards)
}

// IsBust checks if the hand exceeds 21
func (h *Hand) IsBust() bool {
	return IsBust(h.Cards)
}

// View copies the hand into a read-only projection
func (h *Hand) View() HandView {
	cards := make([]entities.Card, len(h.Cards))
	copy(cards, h.Cards)
	return HandView{
		Cards: cards,
		Score: h.Value(),
		Soft:  IsSoft(h.Cards),
	}
}

// HandView is the rendered form of a hand: its cards and score
type HandView struct {
	Cards []entities.Card `json:"cards"`
	Score int             `json:"score"`
	Soft  bool            `json:"soft"`
}

// String lists the cards, e.g. "A of spades, 10 of hearts"
func (v HandView) String() string {
	names := make([]string, len(v.Cards))
	for i, card := range v.Cards {
		names[i] = card.String()
	}
	return strings.Join(names, ", ")
}
