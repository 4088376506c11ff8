package game

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// Manager holds sessions by id and serializes access to them, so several
// games can be driven from concurrent goroutines.
type Manager struct {
	cfg      *config.Config
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewManager creates a manager whose sessions share cfg.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{cfg: cfg, sessions: make(map[uuid.UUID]*Session)}
}

// Create starts a new session and returns its id.
func (m *Manager) Create() (uuid.UUID, error) {
	s, err := NewSession(m.cfg)
	if err != nil {
		return uuid.Nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = s
	return s.ID(), nil
}

// PlayText plays move text in the given game.
func (m *Manager) PlayText(id uuid.UUID, text string) (chess.Move, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.lookup(id)
	if err != nil {
		return chess.Move{}, err
	}
	return s.PlayText(text)
}

// Position returns the current position of the given game.
func (m *Manager) Position(id uuid.UUID) (*chess.Position, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return s.Position(), nil
}

// Record returns the given game ready for output.
func (m *Manager) Record(id uuid.UUID) (output.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, err := m.lookup(id)
	if err != nil {
		return output.Record{}, err
	}
	return s.Record(), nil
}

// Remove drops a game. Removing an unknown id is a no-op.
func (m *Manager) Remove(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len returns the number of games held.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) lookup(id uuid.UUID) (*Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
	}
	return s, nil
}
