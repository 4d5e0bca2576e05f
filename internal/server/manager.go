package server

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// slot guards one game. The lock is held for the whole request.
type slot struct {
	mu   sync.Mutex
	game *game.Game
}

// Manager keeps the live games.
type Manager struct {
	games    map[string]*slot
	maxGames int
	mu       sync.RWMutex
}

// NewManager creates a manager holding at most maxGames games (0 = unlimited).
func NewManager(maxGames int) *Manager {
	return &Manager{
		games:    make(map[string]*slot),
		maxGames: maxGames,
	}
}

// Add registers g under its ID.
func (m *Manager) Add(g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.games[g.ID]; exists {
		return errors.Wrapf(errors.ErrGameExists, "id %q", g.ID)
	}
	if m.maxGames > 0 && len(m.games) >= m.maxGames {
		return errors.ErrTooManyGames
	}
	m.games[g.ID] = &slot{game: g}
	return nil
}

// Has reports whether a game with id is live.
func (m *Manager) Has(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.games[id]
	return ok
}

// With runs fn on the game with id while holding that game's lock.
func (m *Manager) With(id string, fn func(g *game.Game) error) error {
	m.mu.RLock()
	s, exists := m.games[id]
	m.mu.RUnlock()
	if !exists {
		return errors.Wrapf(errors.ErrGameNotFound, "id %q", id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game)
}

// Remove drops the game with id.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.games[id]; !exists {
		return errors.Wrapf(errors.ErrGameNotFound, "id %q", id)
	}
	delete(m.games, id)
	return nil
}

// Len returns the number of live games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
