package blackjack

import (
	"context"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/fadedpez/blackjackr/internal/logging"
	"github.com/fadedpez/blackjackr/internal/types"
	"github.com/fadedpez/blackjackr/pkg/entities"
	bj "github.com/fadedpez/blackjackr/pkg/services/blackjack"
)

const subscriberBuffer = 4

type table struct {
	mu          sync.Mutex
	round       *bj.Round
	lastActive  time.Time
	subscribers map[int]chan bj.RoundSnapshot
	nextSubID   int
}

// Manager owns one round per table
type Manager struct {
	tables map[string]*table
	mu     sync.RWMutex

	clock   quartz.Clock
	logger  *logging.Logger
	newDeck func() *entities.Deck
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithClock sets the clock used for idle tracking
func WithClock(clock quartz.Clock) ManagerOption {
	return func(m *Manager) {
		m.clock = clock
	}
}

// WithManagerLogger sets the manager logger
func WithManagerLogger(logger *logging.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithRoundDeck sets the deck factory handed to every new round
func WithRoundDeck(factory func() *entities.Deck) ManagerOption {
	return func(m *Manager) {
		m.newDeck = factory
	}
}

// NewManager creates a new blackjack table manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		tables:  make(map[string]*table),
		clock:   quartz.NewReal(),
		logger:  logging.Default,
		newDeck: entities.NewDeck,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Ensure Manager implements Tables
var _ Tables = (*Manager)(nil)

// getOrCreate returns the table and whether it was just created
func (m *Manager) getOrCreate(tableID string) (*table, bool, error) {
	if tableID == "" {
		return nil, false, types.NewGameError(types.ErrInvalidArgument, "table ID is required")
	}

	m.mu.RLock()
	t, exists := m.tables[tableID]
	m.mu.RUnlock()
	if exists {
		return t, false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if t, exists := m.tables[tableID]; exists {
		return t, false, nil
	}

	t = &table{
		lastActive:  m.clock.Now(),
		subscribers: make(map[int]chan bj.RoundSnapshot),
	}
	logger := m.logger.WithField("table", tableID)
	t.round = bj.NewRound(
		bj.WithDeckFactory(m.newDeck),
		bj.WithLogger(logger),
		bj.WithOutcomeListener(func(snap bj.RoundSnapshot) {
			logger.WithFields(map[string]interface{}{
				"round":   snap.ID,
				"outcome": snap.Outcome,
				"player":  snap.Player.Score,
				"dealer":  snap.Dealer.Score,
			}).Info("Round resolved")
			t.publish(snap, logger)
		}),
	)
	m.tables[tableID] = t
	return t, true, nil
}

// publish runs inside Stand with t.mu held
func (t *table) publish(snap bj.RoundSnapshot, logger *logging.Logger) {
	for id, ch := range t.subscribers {
		select {
		case ch <- snap:
		default:
			logger.Warn("Dropping outcome for slow subscriber %d", id)
		}
	}
}

// do runs action against the table's round, dealing first if the table is new
func (m *Manager) do(tableID string, action func(*bj.Round) error) (bj.RoundSnapshot, error) {
	t, created, err := m.getOrCreate(tableID)
	if err != nil {
		return bj.RoundSnapshot{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastActive = m.clock.Now()

	// the first action at a table only deals
	if created || t.round.State() == bj.StateNotStarted {
		err := t.round.Start()
		return t.round.Snapshot(), err
	}

	if action != nil {
		if err := action(t.round); err != nil {
			return t.round.Snapshot(), err
		}
	}
	return t.round.Snapshot(), nil
}

// Snapshot implements Tables
func (m *Manager) Snapshot(tableID string) (bj.RoundSnapshot, error) {
	return m.do(tableID, nil)
}

// Restart implements Tables
func (m *Manager) Restart(tableID string) (bj.RoundSnapshot, error) {
	return m.do(tableID, (*bj.Round).Start)
}

// Hit implements Tables
func (m *Manager) Hit(tableID string) (bj.RoundSnapshot, error) {
	return m.do(tableID, (*bj.Round).Hit)
}

// Stand implements Tables
func (m *Manager) Stand(tableID string) (bj.RoundSnapshot, error) {
	return m.do(tableID, (*bj.Round).Stand)
}

// Subscribe implements Tables
func (m *Manager) Subscribe(tableID string) (<-chan bj.RoundSnapshot, func()) {
	t, _, err := m.getOrCreate(tableID)
	if err != nil {
		ch := make(chan bj.RoundSnapshot)
		close(ch)
		return ch, func() {}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextSubID
	t.nextSubID++
	ch := make(chan bj.RoundSnapshot, subscriberBuffer)
	t.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			if sub, ok := t.subscribers[id]; ok {
				delete(t.subscribers, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Remove implements Tables
func (m *Manager) Remove(tableID string) {
	m.mu.Lock()
	t, exists := m.tables[tableID]
	delete(m.tables, tableID)
	m.mu.Unlock()

	if exists {
		t.closeSubscribers()
	}
}

func (t *table) closeSubscribers() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, ch := range t.subscribers {
		delete(t.subscribers, id)
		close(ch)
	}
}

// HasTable reports whether a table currently has a round
func (m *Manager) HasTable(tableID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.tables[tableID]
	return exists
}

// Count returns the number of open tables
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables)
}

// CleanupIdle removes tables untouched for longer than maxAge and returns how
// many were removed
func (m *Manager) CleanupIdle(maxAge time.Duration) int {
	now := m.clock.Now()

	m.mu.Lock()
	var idle []*table
	for id, t := range m.tables {
		t.mu.Lock()
		expired := now.Sub(t.lastActive) > maxAge
		t.mu.Unlock()
		if expired {
			idle = append(idle, t)
			delete(m.tables, id)
		}
	}
	m.mu.Unlock()

	for _, t := range idle {
		t.closeSubscribers()
	}
	if len(idle) > 0 {
		m.logger.Info("Removed %d idle tables", len(idle))
	}
	return len(idle)
}

// RunJanitor calls CleanupIdle every interval until ctx is done
func (m *Manager) RunJanitor(ctx context.Context, interval, maxAge time.Duration) {
	ticker := m.clock.NewTicker(interval, "janitor")
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.CleanupIdle(maxAge)
		}
	}
}
