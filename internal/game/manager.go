package game

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/openpentago/pentago-server-go/internal/game/board"
)

// Manager tracks active game sessions by id.
type Manager struct {
	logger *zap.Logger

	mu    sync.RWMutex
	games map[string]*Engine
}

// NewManager creates an empty session manager.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		logger: logger,
		games:  make(map[string]*Engine),
	}
}

// CreateGame starts a new session for the two players.
func (m *Manager) CreateGame(players [2]board.Player) *Engine {
	engine := NewEngine(players, m.logger)

	m.mu.Lock()
	m.games[engine.ID()] = engine
	m.mu.Unlock()

	if m.logger != nil {
		m.logger.Info("game session created", zap.String("game_id", engine.ID()))
	}
	return engine
}

// GetGame returns the session with the given id.
func (m *Manager) GetGame(gameID string) (*Engine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	engine, ok := m.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game %s not found", gameID)
	}
	return engine, nil
}

// RemoveGame drops the session with the given id.
func (m *Manager) RemoveGame(gameID string) {
	m.mu.Lock()
	_, ok := m.games[gameID]
	delete(m.games, gameID)
	m.mu.Unlock()

	if ok && m.logger != nil {
		m.logger.Info("game session removed", zap.String("game_id", gameID))
	}
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
