package repository

import (
	"context"
	"sync"
)

// MemoryStatusStore is the in-process fallback used when no status store DSN
// is configured or the backend is unreachable at startup. Non-durable: a
// restart loses everything. Dev/degraded use only.
type MemoryStatusStore struct {
	mu       sync.RWMutex
	statuses map[string]string
}

func NewMemoryStatusStore() *MemoryStatusStore {
	return &MemoryStatusStore{statuses: make(map[string]string)}
}

func (s *MemoryStatusStore) Get(ctx context.Context, paymentID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status, ok := s.statuses[paymentID]
	return status, ok, nil
}

func (s *MemoryStatusStore) Set(ctx context.Context, paymentID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[paymentID] = status
	return nil
}
