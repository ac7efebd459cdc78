package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rahul/yojana/internal/llm"
	"github.com/rahul/yojana/internal/planner"
)

// Manager owns the live sessions, keyed by ID.
type Manager struct {
	mu      sync.Mutex
	client  llm.Client
	planner *planner.Planner
	open    map[string]*Session
}

func NewManager(client llm.Client, pl *planner.Planner) *Manager {
	return &Manager{
		client:  client,
		planner: pl,
		open:    make(map[string]*Session),
	}
}

// Create opens a new session with a fresh ID.
func (m *Manager) Create() *Session {
	s := New(uuid.NewString(), m.client, m.planner)
	m.mu.Lock()
	m.open[s.ID()] = s
	m.mu.Unlock()
	return s
}

// Get returns the session for id, or nil.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open[id]
}

// Close forgets the session for id.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.open, id)
}

// Count reports the number of open sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.open)
}
