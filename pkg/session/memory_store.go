package session

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps the session in process memory. Useful for tests and for
// one-shot invocations that should not touch disk.
type MemoryStore struct {
	mu      sync.RWMutex
	current *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(ctx context.Context, s *Session) error {
	if !s.Complete() {
		return fmt.Errorf("refusing to persist a partial session")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *s
	user := *s.User
	copied.User = &user
	m.current = &copied
	return nil
}

func (m *MemoryStore) Load(ctx context.Context) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil, nil
	}
	copied := *m.current
	user := *m.current.User
	copied.User = &user
	return &copied, nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	return nil
}

func (m *MemoryStore) AccessToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return "", nil
	}
	return m.current.AccessToken, nil
}

func (m *MemoryStore) RefreshToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return "", nil
	}
	return m.current.RefreshToken, nil
}

func (m *MemoryStore) UpdateAccessToken(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("access token cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return fmt.Errorf("no session to update")
	}
	m.current.AccessToken = token
	return nil
}
