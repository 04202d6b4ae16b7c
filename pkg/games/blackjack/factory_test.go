package blackjack

import (
	"testing"

	"github.com/fadedpez/blackjackr/internal/games"
	"github.com/fadedpez/blackjackr/internal/logging"
	mock_blackjack "github.com/fadedpez/blackjackr/pkg/games/blackjack/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FactorySuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	tables  *mock_blackjack.MockTables
	factory *Factory
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactorySuite))
}

func (s *FactorySuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tables = mock_blackjack.NewMockTables(s.ctrl)
	s.factory = NewFactory(s.tables, logging.Discard())
}

func (s *FactorySuite) TestCommand() {
	cmd := s.factory.Command()
	s.Equal(CommandName, cmd.Name)
	s.NotEmpty(cmd.Description)
}

func (s *FactorySuite) TestButtonPrefix() {
	s.Equal("blackjack_", s.factory.ButtonPrefix())
	for _, id := range []string{ButtonHit, ButtonStand, ButtonRestart} {
		s.Contains(id, s.factory.ButtonPrefix())
	}
}

func (s *FactorySuite) TestCreateHandler() {
	handler := s.factory.CreateHandler()
	s.Implements((*games.Handler)(nil), handler)

	bjHandler, ok := handler.(*Handler)
	s.Require().True(ok)
	s.Equal(s.tables, bjHandler.tables)
}

func (s *FactorySuite) TestRegisters() {
	registry := games.NewRegistry()
	s.Require().NoError(registry.RegisterGame(CommandName, s.factory))

	commands := registry.Commands()
	s.Require().Len(commands, 1)
	s.Equal(CommandName, commands[0].Name)
}
