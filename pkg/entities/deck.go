package entities

import (
	"errors"
	"math/rand"
	"time"
)

// DeckSize is the number of cards in a single standard deck
const DeckSize = 52

// ErrEmptyDeck is returned when drawing from a deck with no cards left
var ErrEmptyDeck = errors.New("deck is empty")

type Deck struct {
	Cards []Card
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck of 52 cards, one of each rank and suit
func NewDeck() *Deck {
	return NewDeckWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewDeckWithSource builds and shuffles a deck using the given random source
func NewDeckWithSource(src rand.Source) *Deck {
	deck := NewOrderedDeck()
	deck.rng = rand.New(src)
	deck.Shuffle()
	return deck
}

// NewOrderedDeck creates an unshuffled deck in build order
func NewOrderedDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	return &Deck{Cards: cards}
}

// Shuffle applies a Fisher-Yates shuffle to the remaining cards
func (d *Deck) Shuffle() {
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for i := len(d.Cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw removes and returns the top card, which is the last one in Cards
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	last := len(d.Cards) - 1
	card := d.Cards[last]
	d.Cards = d.Cards[:last]
	return card, nil
}

// Remaining returns the number of cards left to draw
func (d *Deck) Remaining() int {
	return len(d.Cards)
}
