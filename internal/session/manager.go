package session

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Manager keys sessions by an opaque token, one per browser session,
// so concurrent users never share a dataset. Sessions are created
// lazily on first access and live for the process lifetime.
type Manager struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// NewToken returns a fresh session token.
func (m *Manager) NewToken() string {
	return uuid.New().String()
}

// Get returns the session for the given token, creating it if needed.
func (m *Manager) Get(token string) *Session {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[token]; ok {
		return s
	}
	s = New(m.logger.With("session", token))
	m.sessions[token] = s
	m.logger.Debug("session created", "session", token)
	return s
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
