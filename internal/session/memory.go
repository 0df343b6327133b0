package session

import (
	"context"
	"sync"
	"time"

	"storefront/internal/model"
)

type memoryEntry struct {
	session   model.Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Expired entries are dropped
// on read and by PurgeExpired.
type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore creates an in-memory store whose entries live for ttl after
// their last save.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*model.Session, error) {
	m.mu.RLock()
	e, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if !m.now().Before(e.expiresAt) {
		m.mu.Lock()
		delete(m.entries, id)
		m.mu.Unlock()
		return nil, ErrNotFound
	}

	s := e.session
	return &s, nil
}

func (m *MemoryStore) Save(ctx context.Context, s *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[s.ID] = memoryEntry{session: *s, expiresAt: expiry(m.now(), m.ttl)}
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, id)
	return nil
}

// PurgeExpired removes expired entries and returns how many were deleted.
func (m *MemoryStore) PurgeExpired(ctx context.Context) (int64, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, id)
			n++
		}
	}
	return n, nil
}
