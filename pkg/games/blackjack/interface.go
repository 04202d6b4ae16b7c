package blackjack

import (
	bj "github.com/fadedpez/blackjackr/pkg/services/blackjack"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_blackjack

// Tables routes round actions to the round owned by each table. A table is
// whatever identifies one player at an adapter: a Discord user, a browser
// session or the terminal.
type Tables interface {
	// Snapshot returns the table's round, dealing a new one on first use
	Snapshot(tableID string) (bj.RoundSnapshot, error)

	// Restart deals a fresh round
	Restart(tableID string) (bj.RoundSnapshot, error)

	// Hit and Stand forward the player's action
	Hit(tableID string) (bj.RoundSnapshot, error)
	Stand(tableID string) (bj.RoundSnapshot, error)

	// Subscribe streams resolved rounds for the table until cancel is called
	Subscribe(tableID string) (<-chan bj.RoundSnapshot, func())

	// Remove drops the table and closes its subscriptions
	Remove(tableID string)
}
