package games

import (
	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/blackjackr/internal/discord"
	"github.com/stretchr/testify/mock"
)

// MockHandler implements Handler for testing
type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) HandleStart(s discord.SessionHandler, i *discordgo.InteractionCreate) {
	m.Called(s, i)
}

func (m *MockHandler) HandleButton(s discord.SessionHandler, i *discordgo.InteractionCreate) {
	m.Called(s, i)
}

// MockFactory implements Factory for testing
type MockFactory struct {
	mock.Mock
}

func (m *MockFactory) Command() *discordgo.ApplicationCommand {
	args := m.Called()
	return args.Get(0).(*discordgo.ApplicationCommand)
}

func (m *MockFactory) ButtonPrefix() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockFactory) CreateHandler() Handler {
	args := m.Called()
	return args.Get(0).(Handler)
}
