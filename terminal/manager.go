package terminal

import (
	"sort"
	"sync"
)

// Manager owns a set of terminal sessions and tracks which one has focus
type Manager struct {
	mu        sync.RWMutex
	terminals map[string]*Terminal
	activeID  string
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{terminals: make(map[string]*Terminal)}
}

// Create adds a new session; the first session created becomes active
func (m *Manager) Create(cols, rows int) *Terminal {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := New(cols, rows)
	m.terminals[t.ID] = t
	if m.activeID == "" {
		m.activeID = t.ID
		t.SetActive(true)
	}
	return t
}

// Get looks up a session by id
func (m *Manager) Get(id string) (*Terminal, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.terminals[id]
	return t, ok
}

// Close removes a session. If it was active, focus moves to another
// session when one exists.
func (m *Manager) Close(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.terminals[id]; !ok {
		return false
	}
	delete(m.terminals, id)

	if m.activeID == id {
		m.activeID = ""
		for nextID, t := range m.terminals {
			m.activeID = nextID
			t.SetActive(true)
			break
		}
	}
	return true
}

// Active returns the focused session, if any
func (m *Manager) Active() (*Terminal, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.terminals[m.activeID]
	return t, ok
}

// SetActive moves focus to the given session
func (m *Manager) SetActive(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, ok := m.terminals[id]
	if !ok {
		return false
	}
	if prev, ok := m.terminals[m.activeID]; ok {
		prev.SetActive(false)
	}
	m.activeID = id
	next.SetActive(true)
	return true
}

// List returns all session ids in stable order
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.terminals))
	for id := range m.terminals {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of open sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.terminals)
}
