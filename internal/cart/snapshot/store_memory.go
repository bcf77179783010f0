package snapshot

import (
	"context"
	"sync"

	"lustre/internal/cart/models"
	"lustre/pkg/platform/sentinel"
)

// MemoryStore keeps the snapshot in process memory. Used by tests and by
// deployments that accept losing the cart on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	payload []byte
	written bool
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]models.LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.written {
		return nil, sentinel.ErrNotFound
	}
	items, ok := Decode(s.payload)
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return items, nil
}

func (s *MemoryStore) Save(_ context.Context, items []models.LineItem) error {
	payload, err := Encode(items)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = payload
	s.written = true
	return nil
}

// Corrupt overwrites the stored payload with garbage. Test hook for the
// malformed-snapshot recovery path.
func (s *MemoryStore) Corrupt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = []byte("{not json")
	s.written = true
}
