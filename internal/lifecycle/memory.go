package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/pathway-tracker/internal/types"
)

// MemoryStore is an in-process Store used by the CLI and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*types.PathwaySelection
	now     func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[uuid.UUID]*types.PathwaySelection), now: time.Now}
}

// GetSelection implements Store.
func (s *MemoryStore) GetSelection(_ context.Context, userID uuid.UUID) (*types.PathwaySelection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.records[userID]; ok {
		return rec.Clone(), nil
	}
	return (&types.PathwaySelection{UserID: userID}).Clone(), nil
}

// SaveSelection implements Store.
func (s *MemoryStore) SaveSelection(_ context.Context, sel *types.PathwaySelection) (*types.PathwaySelection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := 0
	if rec, ok := s.records[sel.UserID]; ok {
		stored = rec.Version
	}
	if stored != sel.Version {
		return nil, fmt.Errorf("user %s at version %d, write based on %d: %w", sel.UserID, stored, sel.Version, ErrConflict)
	}

	rec := sel.Clone()
	rec.Version = stored + 1
	rec.UpdatedAt = s.now().UTC()
	s.records[sel.UserID] = rec
	return rec.Clone(), nil
}
