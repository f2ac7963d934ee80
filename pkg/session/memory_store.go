package session

import (
	"context"
	"sync"
)

// MemoryTokenStore implements TokenStore using in-memory storage. The entry
// does not survive process restarts; it is the default store and the one to
// use in tests.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

// NewMemoryTokenStore creates a new in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Load retrieves the stored credential, or an empty string when absent.
func (m *MemoryTokenStore) Load(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return "", nil
	}
	return m.token, nil
}

// Save persists the credential.
func (m *MemoryTokenStore) Save(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.set = true
	return nil
}

// Clear removes the entry.
func (m *MemoryTokenStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.set = false
	return nil
}
