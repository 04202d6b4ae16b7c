package blackjack

// Outcome represents how a resolved round ended
type Outcome string

const (
	OutcomeNone       Outcome = ""
	OutcomePlayerBust Outcome = "PLAYER_BUST"
	OutcomeDealerBust Outcome = "DEALER_BUST"
	OutcomePlayerWins Outcome = "PLAYER_WINS"
	OutcomeDealerWins Outcome = "DEALER_WINS"
	OutcomePush       Outcome = "PUSH"
)

var outcomeMessages = map[Outcome]string{
	OutcomePlayerBust: "Player busts, Dealer wins",
	OutcomeDealerBust: "Dealer busts, Player wins",
	OutcomePlayerWins: "Player wins",
	OutcomeDealerWins: "Dealer wins",
	OutcomePush:       "Push (tie)",
}

// String returns the string representation of the outcome
func (o Outcome) String() string {
	return string(o)
}

// Message returns the text shown to the player for the outcome
func (o Outcome) Message() string {
	return outcomeMessages[o]
}

// PlayerWon returns true if the player took the round
func (o Outcome) PlayerWon() bool {
	return o == OutcomeDealerBust || o == OutcomePlayerWins
}

// DetermineOutcome compares final player and dealer scores. A player bust
// loses even when the dealer also busts.
func DetermineOutcome(playerScore, dealerScore int) Outcome {
	switch {
	case playerScore > BlackjackValue:
		return OutcomePlayerBust
	case dealerScore > BlackjackValue:
		return OutcomeDealerBust
	case playerScore > dealerScore:
		return OutcomePlayerWins
	case playerScore < dealerScore:
		return OutcomeDealerWins
	default:
		return OutcomePush
	}
}
