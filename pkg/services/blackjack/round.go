package blackjack

import (
	"errors"

	"github.com/fadedpez/blackjackr/internal/logging"
	"github.com/fadedpez/blackjackr/internal/types"
	"github.com/fadedpez/blackjackr/pkg/entities"
	"github.com/google/uuid"
)

// State is the lifecycle phase of a round
type State string

const (
	StateNotStarted State = "NOT_STARTED"
	StateInProgress State = "IN_PROGRESS"
	StateResolved   State = "RESOLVED"
)

// OutcomeListener receives the final snapshot of every resolved round
type OutcomeListener func(RoundSnapshot)

// RoundSnapshot is a plain copy of round state for renderers
type RoundSnapshot struct {
	ID            string   `json:"id"`
	State         State    `json:"state"`
	Player        HandView `json:"player"`
	Dealer        HandView `json:"dealer"`
	DeckRemaining int      `json:"deck_remaining"`
	Outcome       Outcome  `json:"outcome,omitempty"`
	Message       string   `json:"message,omitempty"`
}

// Round holds the deck and both hands of a single-player round and routes
// every mutation through Start, Hit and Stand. It is not safe for concurrent use.
type Round struct {
	id      string
	state   State
	deck    *entities.Deck
	player  *Hand
	dealer  *Hand
	outcome Outcome

	newDeck   func() *entities.Deck
	newID     func() string
	listeners []OutcomeListener
	logger    *logging.Logger
}

// Option configures a Round
type Option func(*Round)

// WithDeckFactory replaces the shuffled 52-card deck used by Start
func WithDeckFactory(factory func() *entities.Deck) Option {
	return func(r *Round) {
		r.newDeck = factory
	}
}

// WithOutcomeListener registers a listener for resolved rounds
func WithOutcomeListener(listener OutcomeListener) Option {
	return func(r *Round) {
		r.listeners = append(r.listeners, listener)
	}
}

// WithLogger sets the round logger
func WithLogger(logger *logging.Logger) Option {
	return func(r *Round) {
		r.logger = logger
	}
}

// WithIDGenerator sets how round IDs are produced
func WithIDGenerator(gen func() string) Option {
	return func(r *Round) {
		r.newID = gen
	}
}

// NewRound creates a round in the NotStarted state
func NewRound(opts ...Option) *Round {
	r := &Round{
		state:   StateNotStarted,
		player:  NewHand(),
		dealer:  NewHand(),
		newDeck: entities.NewDeck,
		newID:   func() string { return uuid.New().String() },
		logger:  logging.Default,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnOutcome registers a listener for resolved rounds
func (r *Round) OnOutcome(listener OutcomeListener) {
	r.listeners = append(r.listeners, listener)
}

// Start deals a fresh round: new shuffled deck, empty hands, then two cards
// each in player, dealer, player, dealer order. It is also the restart action
// and is valid from any state.
func (r *Round) Start() error {
	r.state = StateNotStarted
	r.outcome = OutcomeNone
	r.id = r.newID()
	r.deck = r.newDeck()
	r.player.Reset()
	r.dealer.Reset()

	for i := 0; i < InitialCards; i++ {
		if err := r.deal(r.player); err != nil {
			return err
		}
		if err := r.deal(r.dealer); err != nil {
			return err
		}
	}

	r.state = StateInProgress
	r.logger.Debug("Round %s dealt: player %d, dealer %d", r.id, r.player.Value(), r.dealer.Value())
	return nil
}

// Hit draws one card for the player and stands automatically once the player
// reaches 21 or more. It does nothing unless the round is in progress.
func (r *Round) Hit() error {
	if r.state != StateInProgress {
		return nil
	}

	if err := r.deal(r.player); err != nil {
		return err
	}

	if r.player.Value() >= BlackjackValue {
		return r.Stand()
	}
	return nil
}

// Stand plays out the dealer, who draws while below 17, then resolves the
// round. It does nothing unless the round is in progress.
func (r *Round) Stand() error {
	if r.state != StateInProgress {
		return nil
	}

	for DealerShouldDraw(r.dealer.Cards) {
		if err := r.deal(r.dealer); err != nil {
			return err
		}
	}

	r.outcome = DetermineOutcome(r.player.Value(), r.dealer.Value())
	r.state = StateResolved
	r.logger.Debug("Round %s resolved: %s (player %d, dealer %d)", r.id, r.outcome, r.player.Value(), r.dealer.Value())

	snapshot := r.Snapshot()
	for _, listener := range r.listeners {
		listener(snapshot)
	}
	return nil
}

func (r *Round) deal(hand *Hand) error {
	if r.deck == nil {
		return types.NewGameError(types.ErrInvalidState, "round has no deck")
	}

	card, err := r.deck.Draw()
	if err != nil {
		if errors.Is(err, entities.ErrEmptyDeck) {
			return types.WrapError(types.ErrEmptyDeck, "no cards left to draw", err)
		}
		return err
	}
	hand.AddCard(card)
	return nil
}

// ID returns the current round ID, empty before the first Start
func (r *Round) ID() string {
	return r.id
}

// State returns the current lifecycle phase
func (r *Round) State() State {
	return r.state
}

// Outcome returns the result of a resolved round, or OutcomeNone
func (r *Round) Outcome() Outcome {
	return r.outcome
}

// IsResolved returns true once the round has an outcome
func (r *Round) IsResolved() bool {
	return r.state == StateResolved
}

// PlayerView returns the player's cards and score
func (r *Round) PlayerView() HandView {
	return r.player.View()
}

// DealerView returns the dealer's cards and score. Both dealer cards are
// always face up.
func (r *Round) DealerView() HandView {
	return r.dealer.View()
}

// DeckRemaining returns how many cards are left in the deck
func (r *Round) DeckRemaining() int {
	if r.deck == nil {
		return 0
	}
	return r.deck.Remaining()
}

// Snapshot copies the round into plain data
func (r *Round) Snapshot() RoundSnapshot {
	return RoundSnapshot{
		ID:            r.id,
		State:         r.state,
		Player:        r.PlayerView(),
		Dealer:        r.DealerView(),
		DeckRemaining: r.DeckRemaining(),
		Outcome:       r.outcome,
		Message:       r.outcome.Message(),
	}
}
