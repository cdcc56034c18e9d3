package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store implementation intended for tests and
// local development. Sessions pass through the same JSON codec used by
// persistent stores, so serialization problems surface identically.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func (e memoryEntry) expired() bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

var _ Store = (*MemoryStore)(nil)

// Load retrieves a session by cookie value. Expired sessions are pruned
// lazily and reported as absent.
func (m *MemoryStore) Load(_ context.Context, cookieValue string) (*Session, error) {
	id, err := IDFromCookieValue(cookieValue)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	entry, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	if entry.expired() {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal(entry.data, &sess); err != nil {
		return nil, errors.Join(ErrCorruptData, err)
	}
	return &sess, nil
}

// Save persists the full session state, overwriting any previous record.
func (m *MemoryStore) Save(_ context.Context, sess *Session) (string, error) {
	if sess.IsExpired() {
		m.mu.Lock()
		delete(m.sessions, sess.ID)
		m.mu.Unlock()
		return "", nil
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return "", errors.Join(ErrSerialization, err)
	}

	m.mu.Lock()
	m.sessions[sess.ID] = memoryEntry{data: data, expiresAt: sess.ExpiresAt}
	m.mu.Unlock()

	return sess.CookieValue(), nil
}

// Destroy removes the session's record. Idempotent.
func (m *MemoryStore) Destroy(_ context.Context, sess *Session) error {
	m.mu.Lock()
	delete(m.sessions, sess.ID)
	m.mu.Unlock()
	return nil
}

// Clear removes every stored session.
func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	m.sessions = make(map[string]memoryEntry)
	m.mu.Unlock()
	return nil
}

// Count returns the number of live sessions, pruning expired ones.
func (m *MemoryStore) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, entry := range m.sessions {
		if entry.expired() {
			delete(m.sessions, id)
		}
	}
	return int64(len(m.sessions)), nil
}
