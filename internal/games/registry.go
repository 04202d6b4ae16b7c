package games

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/blackjackr/internal/types"
)

// Registry manages game factories by command name
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates a new game registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// RegisterGame registers a game factory with the registry
func (r *Registry) RegisterGame(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return types.NewGameError(types.ErrInvalidAction, fmt.Sprintf("Game %s is already registered", name))
	}

	r.factories[name] = factory
	return nil
}

// GetFactory returns the factory for a given game name
func (r *Registry) GetFactory(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, types.NewGameError(types.ErrGameNotFound, fmt.Sprintf("Game %s not found", name))
	}

	return factory, nil
}

// CreateHandler creates the handler for a given game
func (r *Registry) CreateHandler(name string) (Handler, error) {
	factory, err := r.GetFactory(name)
	if err != nil {
		return nil, err
	}

	return factory.CreateHandler(), nil
}

// ListGames returns the registered game names in order
func (r *Registry) ListGames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]string, 0, len(r.factories))
	for name := range r.factories {
		games = append(games, name)
	}
	sort.Strings(games)
	return games
}

// Commands returns the slash command of every registered game
func (r *Registry) Commands() []*discordgo.ApplicationCommand {
	names := r.ListGames()

	r.mu.RLock()
	defer r.mu.RUnlock()

	commands := make([]*discordgo.ApplicationCommand, 0, len(names))
	for _, name := range names {
		if factory, ok := r.factories[name]; ok {
			commands = append(commands, factory.Command())
		}
	}
	return commands
}
