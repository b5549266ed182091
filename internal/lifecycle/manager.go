package lifecycle

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/pathway-tracker/internal/types"
)

// Store persists PathwaySelection records.
//
// GetSelection returns an empty selection (Version 0) for a user with no record.
// SaveSelection writes sel only if the stored version still equals sel.Version,
// then returns the stored record with the incremented version. A mismatch is
// reported as an error wrapping ErrConflict.
type Store interface {
	GetSelection(ctx context.Context, userID uuid.UUID) (*types.PathwaySelection, error)
	SaveSelection(ctx context.Context, sel *types.PathwaySelection) (*types.PathwaySelection, error)
}

// lockStripes is the number of mutexes user writes are spread over.
const lockStripes = 64

// Manager applies lifecycle operations to users' selections.
// Writes to the same user are serialized within the process through a fixed
// set of striped locks; the store's version check covers writers in other processes.
type Manager struct {
	store Store
	locks [lockStripes]sync.Mutex
}

// NewManager creates a manager backed by store.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Selection returns the user's current selection.
func (m *Manager) Selection(ctx context.Context, userID uuid.UUID) (*types.PathwaySelection, error) {
	sel, err := m.store.GetSelection(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get selection: %w", err)
	}
	return sel, nil
}

// Add selects a pathway id or custom name. Adding a selected pathway is a no-op.
func (m *Manager) Add(ctx context.Context, userID uuid.UUID, id string) (*types.PathwaySelection, error) {
	return m.apply(ctx, userID, OpAdd, id)
}

// Archive hides an active pathway without touching its progress data.
func (m *Manager) Archive(ctx context.Context, userID uuid.UUID, id string) (*types.PathwaySelection, error) {
	return m.apply(ctx, userID, OpArchive, id)
}

// Restore makes an archived pathway active again.
func (m *Manager) Restore(ctx context.Context, userID uuid.UUID, id string) (*types.PathwaySelection, error) {
	return m.apply(ctx, userID, OpRestore, id)
}

// Remove drops a pathway from both the selected and archived sets.
// Achievement records are owned elsewhere and are not affected.
func (m *Manager) Remove(ctx context.Context, userID uuid.UUID, id string) (*types.PathwaySelection, error) {
	return m.apply(ctx, userID, OpRemove, id)
}

func (m *Manager) apply(ctx context.Context, userID uuid.UUID, op Op, id string) (*types.PathwaySelection, error) {
	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	current, err := m.store.GetSelection(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get selection: %w", err)
	}

	next, err := Apply(current, op, id)
	if err != nil {
		return nil, err
	}
	if !Changed(current, next) {
		return current, nil
	}

	saved, err := m.store.SaveSelection(ctx, next)
	if err != nil {
		return nil, fmt.Errorf("failed to save selection: %w", err)
	}
	return saved, nil
}

func (m *Manager) userLock(userID uuid.UUID) *sync.Mutex {
	return &m.locks[stripe(userID)]
}

func stripe(userID uuid.UUID) uint32 {
	h := fnv.New32a()
	_, _ = h.Write(userID[:])
	return h.Sum32() % lockStripes
}
