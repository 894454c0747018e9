package repository

import (
	"context"
	"sync"

	"github.com/joseph-ayodele/homepage/internal/entity"
)

// MemoryStore is the volatile fallback cache. Its contents are lost on restart
// and are never copied into the persistent store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*entity.Entry
	nextID  int64
	step    int64
}

// NewMemoryStore assigns ids 1, 2, 3, ...
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, step: 1}
}

// newFallbackCache assigns ids -1, -2, -3, ... so cached entries never share an
// id with rows from an autoincrement table.
func newFallbackCache() *MemoryStore {
	return &MemoryStore{nextID: -1, step: -1}
}

func (m *MemoryStore) Insert(_ context.Context, senderName, message string) (*entity.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := &entity.Entry{ID: m.nextID, SenderName: senderName, Message: message}
	m.nextID += m.step
	m.entries = append(m.entries, e)

	out := *e
	return &out, nil
}

func (m *MemoryStore) ListAll(context.Context) ([]*entity.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*entity.Entry, len(m.entries))
	for i, e := range m.entries {
		c := *e
		out[i] = &c
	}
	return out, nil
}

func (m *MemoryStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	clear(m.entries[len(kept):])
	m.entries = kept
	return nil
}

// Len reports how many entries the cache holds.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
