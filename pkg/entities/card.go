package entities

import "fmt"

// Suit represents a card suit

type Suit string

const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
)

// Suits lists every suit in deck build order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank

type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Ranks lists every rank in deck build order
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var rankNames = map[Rank]string{
	Ace:   "ace",
	Jack:  "jack",
	Queen: "queen",
	King:  "king",
}

// Name returns the lowercase english name used in asset identifiers.
// Number ranks keep their digits.
func (r Rank) Name() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return string(r)
}

// Card represents a playing card

type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard creates a new card

func NewCard(rank Rank, suit Suit) Card {
	return Card{
		Rank: rank,
		Suit: suit,
	}
}

// String returns the string representation of the card

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// AssetName returns the image key for the card, e.g. king_of_hearts
func (c Card) AssetName() string {
	return c.Rank.Name() + "_of_" + string(c.Suit)
}

// AssetPath joins base with the card's svg file name
func (c Card) AssetPath(base string) string {
	return fmt.Sprintf("%s/%s.svg", base, c.AssetName())
}
