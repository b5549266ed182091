package lifecycle

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/pathway-tracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_Transitions(t *testing.T) {
	base := &types.PathwaySelection{Selected: []string{"uk-portfolio", "CustomPathXYZ"}, Archived: []string{"CustomPathXYZ"}}

	tests := []struct {
		name         string
		op           Op
		id           string
		wantSelected []string
		wantArchived []string
		wantFrom     State
		wantErr      bool
	}{
		{name: "add new", op: OpAdd, id: "usa-ecfmg", wantSelected: []string{"uk-portfolio", "CustomPathXYZ", "usa-ecfmg"}, wantArchived: []string{"CustomPathXYZ"}},
		{name: "add existing is no-op", op: OpAdd, id: "uk-portfolio", wantSelected: []string{"uk-portfolio", "CustomPathXYZ"}, wantArchived: []string{"CustomPathXYZ"}},
		{name: "archive active", op: OpArchive, id: "uk-portfolio", wantSelected: []string{"uk-portfolio", "CustomPathXYZ"}, wantArchived: []string{"CustomPathXYZ", "uk-portfolio"}},
		{name: "archive archived", op: OpArchive, id: "CustomPathXYZ", wantErr: true, wantFrom: StateArchived},
		{name: "archive unselected", op: OpArchive, id: "nz-pathway", wantErr: true, wantFrom: StateUnselected},
		{name: "restore archived", op: OpRestore, id: "CustomPathXYZ", wantSelected: []string{"uk-portfolio", "CustomPathXYZ"}, wantArchived: []string{}},
		{name: "restore active", op: OpRestore, id: "uk-portfolio", wantErr: true, wantFrom: StateActive},
		{name: "remove active", op: OpRemove, id: "uk-portfolio", wantSelected: []string{"CustomPathXYZ"}, wantArchived: []string{"CustomPathXYZ"}},
		{name: "remove archived", op: OpRemove, id: "CustomPathXYZ", wantSelected: []string{"uk-portfolio"}, wantArchived: []string{}},
		{name: "remove unselected", op: OpRemove, id: "nz-pathway", wantErr: true, wantFrom: StateUnselected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := base.Clone()
			got, err := Apply(base, tt.op, tt.id)
			assert.Equal(t, before, base.Clone(), "input must not be mutated")

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, errors.Is(err, ErrInvalidTransition))
				var te *InvalidTransitionError
				require.ErrorAs(t, err, &te)
				assert.Equal(t, tt.wantFrom, te.From)
				assert.Equal(t, tt.op, te.Op)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSelected, got.Selected)
			assert.Equal(t, tt.wantArchived, got.Archived)
			for _, id := range got.Archived {
				assert.Contains(t, got.Selected, id, "archived must be a subset of selected")
			}
		})
	}
}

func TestApply_EmptyID(t *testing.T) {
	_, err := Apply(&types.PathwaySelection{}, OpAdd, "")
	assert.ErrorIs(t, err, ErrEmptyPathway)
}

func TestManager_ArchiveUnselectedLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store)
	user := uuid.New()

	_, err := m.Add(ctx, user, "uk-portfolio")
	require.NoError(t, err)
	before, err := m.Selection(ctx, user)
	require.NoError(t, err)

	_, err = m.Archive(ctx, user, "not-selected")
	require.ErrorIs(t, err, ErrInvalidTransition)

	after, err := m.Selection(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestManager_FullLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())
	user := uuid.New()

	sel, err := m.Selection(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, sel.Selected)
	assert.Equal(t, 0, sel.Version)

	sel, err = m.Add(ctx, user, "uk-portfolio")
	require.NoError(t, err)
	assert.Equal(t, 1, sel.Version)

	sel, err = m.Add(ctx, user, "uk-portfolio")
	require.NoError(t, err)
	assert.Equal(t, 1, sel.Version, "idempotent add does not write")

	sel, err = m.Archive(ctx, user, "uk-portfolio")
	require.NoError(t, err)
	assert.Equal(t, []string{"uk-portfolio"}, sel.Archived)
	assert.Empty(t, sel.Active())

	sel, err = m.Restore(ctx, user, "uk-portfolio")
	require.NoError(t, err)
	assert.Equal(t, []string{"uk-portfolio"}, sel.Active())

	sel, err = m.Remove(ctx, user, "uk-portfolio")
	require.NoError(t, err)
	assert.Empty(t, sel.Selected)

	_, err = m.Restore(ctx, user, "uk-portfolio")
	assert.ErrorIs(t, err, ErrInvalidTransition, "removed is terminal")

	sel, err = m.Add(ctx, user, "uk-portfolio")
	require.NoError(t, err)
	assert.Equal(t, []string{"uk-portfolio"}, sel.Active(), "re-adding creates a fresh entry")
}

func TestManager_ConcurrentAddsForSameUser(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())
	user := uuid.New()

	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := m.Add(ctx, user, id)
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	sel, err := m.Selection(ctx, user)
	require.NoError(t, err)
	assert.ElementsMatch(t, ids, sel.Selected)
	assert.Equal(t, len(ids), sel.Version)
}

func TestManager_ManyUsersShareFixedLocks(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())

	users := make([]uuid.UUID, 500)
	var wg sync.WaitGroup
	for i := range users {
		users[i] = uuid.New()
		wg.Add(1)
		go func(user uuid.UUID) {
			defer wg.Done()
			_, err := m.Add(ctx, user, "ecfmg-pathway")
			assert.NoError(t, err)
		}(users[i])
	}
	wg.Wait()

	for _, user := range users {
		assert.Same(t, m.userLock(user), m.userLock(user))
		assert.Less(t, stripe(user), uint32(lockStripes))

		sel, err := m.Selection(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, 1, sel.Version)
	}
}

func TestMemoryStore_VersionConflict(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	user := uuid.New()

	stale, err := store.GetSelection(ctx, user)
	require.NoError(t, err)

	first := stale.Clone()
	first.Selected = append(first.Selected, "a")
	_, err = store.SaveSelection(ctx, first)
	require.NoError(t, err)

	second := stale.Clone()
	second.Selected = append(second.Selected, "b")
	_, err = store.SaveSelection(ctx, second)
	assert.ErrorIs(t, err, ErrConflict)
}

type failingStore struct{ err error }

func (f failingStore) GetSelection(context.Context, uuid.UUID) (*types.PathwaySelection, error) {
	return nil, f.err
}

func (f failingStore) SaveSelection(context.Context, *types.PathwaySelection) (*types.PathwaySelection, error) {
	return nil, f.err
}

func TestManager_WrapsStoreErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewManager(failingStore{err: boom}).Add(context.Background(), uuid.New(), "x")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to get selection")
}
