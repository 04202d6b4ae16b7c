package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fadedpez/blackjackr/internal/logging"
	"github.com/fadedpez/blackjackr/pkg/entities"
	"github.com/fadedpez/blackjackr/pkg/games/blackjack"
	bj "github.com/fadedpez/blackjackr/pkg/services/blackjack"
)

// TableID is the table the terminal player sits at
const TableID = "terminal"

var suitSymbols = map[entities.Suit]string{
	entities.Spades:   "♠",
	entities.Hearts:   "♥",
	entities.Diamonds: "♦",
	entities.Clubs:    "♣",
}

// roundMsg carries the result of a round action
type roundMsg struct {
	snap bj.RoundSnapshot
	err  error
}

// Model is the bubbletea model for a terminal round
type Model struct {
	tables blackjack.Tables
	logger *logging.Logger

	keys keyMap
	help help.Model

	round    bj.RoundSnapshot
	err      error
	width    int
	quitting bool
}

// NewModel creates a terminal model playing at tables
func NewModel(tables blackjack.Tables, logger *logging.Logger) *Model {
	if logger == nil {
		logger = logging.Default
	}
	return &Model{
		tables: tables,
		logger: logger.WithField("table", TableID),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Init deals the first round
func (m *Model) Init() tea.Cmd {
	return m.act(m.tables.Snapshot)
}

func (m *Model) act(action func(string) (bj.RoundSnapshot, error)) tea.Cmd {
	return func() tea.Msg {
		snap, err := action(TableID)
		return roundMsg{snap: snap, err: err}
	}
}

// Update handles key presses and round results
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case roundMsg:
		if msg.err != nil {
			m.logger.LogError(msg.err)
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.round = msg.snap
		if msg.snap.State == bj.StateResolved {
			m.logger.Debug("Round %s resolved: %s", msg.snap.ID, msg.snap.Outcome)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Hit):
			return m, m.act(m.tables.Hit)
		case key.Matches(msg, m.keys.Stand):
			return m, m.act(m.tables.Stand)
		case key.Matches(msg, m.keys.Restart):
			return m, m.act(m.tables.Restart)
		}
	}

	return m, nil
}

// View renders both hands, the outcome banner and the key help
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Blackjackr"))
	b.WriteString("\n\n")

	if m.round.State == bj.StateNotStarted || m.round.State == "" {
		b.WriteString(InfoStyle.Render("Dealing..."))
	} else {
		b.WriteString(renderHand("Dealer", m.round.Dealer))
		b.WriteString("\n")
		b.WriteString(renderHand("Player", m.round.Player))
		b.WriteString("\n")
		if banner := renderOutcome(m.round); banner != "" {
			b.WriteString(banner)
			b.WriteString("\n")
		}
		b.WriteString(InfoStyle.Render(fmt.Sprintf("%d cards left in the deck", m.round.DeckRemaining)))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func renderCard(card entities.Card) string {
	style := BlackCardStyle
	if card.Suit.IsRed() {
		style = RedCardStyle
	}
	return style.Render(string(card.Rank) + suitSymbols[card.Suit])
}

func renderHand(name string, hand bj.HandView) string {
	label := fmt.Sprintf("%s: %d", name, hand.Score)
	if hand.Soft {
		label += " (soft)"
	}

	cards := make([]string, len(hand.Cards))
	for i, card := range hand.Cards {
		cards[i] = renderCard(card)
	}
	return HandLabelStyle.Render(label) + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderOutcome(snap bj.RoundSnapshot) string {
	if snap.State != bj.StateResolved {
		return ""
	}
	switch {
	case snap.Outcome.PlayerWon():
		return WinStyle.Render(snap.Message)
	case snap.Outcome == bj.OutcomePush:
		return PushStyle.Render(snap.Message)
	default:
		return LoseStyle.Render(snap.Message)
	}
}

// Run plays rounds in the terminal until the player quits
func Run(tables blackjack.Tables, logger *logging.Logger) error {
	_, err := tea.NewProgram(NewModel(tables, logger), tea.WithAltScreen()).Run()
	return err
}
