package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/pathway-tracker/internal/catalog"
	"github.com/jonathan/pathway-tracker/internal/lifecycle"
	"github.com/jonathan/pathway-tracker/internal/milestones"
	"github.com/jonathan/pathway-tracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAchievements map[uuid.UUID][]types.AchievedMilestone

func (f fakeAchievements) ListAchievedMilestones(_ context.Context, userID uuid.UUID) ([]types.AchievedMilestone, error) {
	return f[userID], nil
}

func newTestEngine(t *testing.T, achievements AchievementSource) *Engine {
	t.Helper()
	data, err := LoadDefault(context.Background())
	require.NoError(t, err)
	e, err := New(data, Options{Achievements: achievements, CacheSize: 16})
	require.NoError(t, err)
	return e
}

func done(name string) types.AchievedMilestone {
	now := time.Now()
	return types.AchievedMilestone{Name: name, Status: types.StatusDone, CompletedAt: &now}
}

func TestLoadDefault_EmbeddedData(t *testing.T) {
	data, err := LoadDefault(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"United Kingdom", "United States", "New Zealand"}, data.Catalog.Countries())
	assert.True(t, data.Milestones.Known("Portfolio Pathway"))
	assert.True(t, data.Specialties.IsMapped("Emergency Medicine"))
}

func TestEngine_ResolvePathway(t *testing.T) {
	e := newTestEngine(t, nil)

	def, err := e.ResolvePathway("portfolio-pathway")
	require.NoError(t, err)
	assert.Equal(t, "United Kingdom", def.Country)

	_, err = e.ResolvePathway("Portfolio Pathway")
	assert.ErrorIs(t, err, catalog.ErrPathwayNotFound)
}

func TestEngine_Pathways(t *testing.T) {
	e := newTestEngine(t, nil)

	nz := e.Pathways("New Zealand")
	require.Len(t, nz, 2)
	assert.Equal(t, "nz-mcnz-registration", nz[0].ID)
	assert.Len(t, e.Pathways(""), e.Catalog().Len())
	assert.Empty(t, e.Pathways("Atlantis"))
}

func TestEngine_PathsForFallsBackToDefaults(t *testing.T) {
	e := newTestEngine(t, nil)

	em := e.PathsFor("Emergency Medicine")
	require.NotEmpty(t, em)
	assert.Equal(t, "Portfolio Pathway", em[0].Name)

	assert.Equal(t, e.PathsFor("Underwater Medicine"), e.PathsFor("emergency medicine"))
	assert.Contains(t, e.ExamsFor("Emergency Medicine"), "MRCEM OSCE")
	assert.Empty(t, e.ExamsFor("Underwater Medicine"))
}

func TestEngine_ResolveCareerPaths(t *testing.T) {
	e := newTestEngine(t, nil)

	defs := e.ResolveCareerPaths("Emergency Medicine")
	require.GreaterOrEqual(t, len(defs), 2)
	assert.Equal(t, "portfolio-pathway", defs[0].ID)
	assert.Equal(t, "Portfolio Pathway", defs[0].MatchedVia)
	assert.Equal(t, "portfolio-pathway", defs[1].ID)
	assert.Equal(t, "CESR-CP", defs[1].MatchedVia)
	assert.LessOrEqual(t, len(defs), len(e.PathsFor("Emergency Medicine")))
	for _, def := range defs {
		assert.NotEmpty(t, def.MatchedVia)
	}

	again, err := e.ResolvePathway("portfolio-pathway")
	require.NoError(t, err)
	assert.Empty(t, again.MatchedVia, "catalog entries are not annotated in place")
}

func TestEngine_AggregateMilestones_BroadModeOnUnknownPath(t *testing.T) {
	e := newTestEngine(t, nil)

	curated, mode := e.AggregateMilestones([]string{"Portfolio Pathway"})
	assert.Equal(t, milestones.ModeCurated, mode)

	broad, mode := e.AggregateMilestones([]string{"Portfolio Pathway", "CustomPathXYZ"})
	assert.Equal(t, milestones.ModeBroad, mode)
	assert.Greater(t, len(broad), len(curated))

	names := make([]string, len(broad))
	for i, m := range broad {
		names[i] = m.Name
	}
	assert.Contains(t, names, "USMLE Step 1")
	assert.Contains(t, names, "Visa Sponsorship")
	assert.Equal(t, "Reference Letters", names[len(names)-1])

	common, _ := e.AggregateMilestones(nil)
	assert.Len(t, common, 5)
}

func TestEngine_ComputeProgress(t *testing.T) {
	e := newTestEngine(t, nil)

	p := e.ComputeProgress("plab-to-training", []string{"OET", "PLAB 1"})
	assert.True(t, p.Resolved)
	assert.Equal(t, 5, p.TotalRequired)
	assert.Equal(t, 2, p.CompletedCount)
	require.NotNil(t, p.NextRequirement)
	assert.Equal(t, "PLAB 2", p.NextRequirement.Name)

	custom := e.ComputeProgress("My Own Route", []string{"OET"})
	assert.False(t, custom.Resolved)
	assert.True(t, custom.PercentComplete.IsUnknown())
}

func TestEngine_SelectionProgress(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()
	e := newTestEngine(t, fakeAchievements{
		user: {done("USMLE Step 1"), done("OET"), {Name: "USMLE Step 2 CK", Status: types.StatusInProgress}},
	})

	for _, id := range []string{"ecfmg-pathway", "CustomPathXYZ", "portfolio-pathway"} {
		_, err := e.AddPathway(ctx, user, id)
		require.NoError(t, err)
	}
	_, err := e.ArchivePathway(ctx, user, "portfolio-pathway")
	require.NoError(t, err)

	all, err := e.SelectionProgress(ctx, user)
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, "ecfmg-pathway", all[0].PathwayID)
	assert.Equal(t, 2, all[0].CompletedCount, "in-progress records do not count")
	assert.Equal(t, 40, func() int { v, _ := all[0].PercentComplete.Value(); return v }())

	assert.Equal(t, "CustomPathXYZ", all[1].Name)
	assert.False(t, all[1].Resolved)

	one, err := e.UserProgress(ctx, user, "portfolio-pathway")
	require.NoError(t, err)
	assert.Equal(t, 0, one.CompletedCount, "archived pathways keep their progress data")
}

func TestEngine_LifecycleErrors(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, nil)
	user := uuid.New()

	_, err := e.RestorePathway(ctx, user, "portfolio-pathway")
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)

	_, err = e.RemovePathway(ctx, user, "portfolio-pathway")
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)

	sel, err := e.Selection(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, sel.Selected)
}

func TestEngine_UserProgressRequiresSource(t *testing.T) {
	_, err := newTestEngine(t, nil).UserProgress(context.Background(), uuid.New(), "ecfmg-pathway")
	assert.True(t, errors.Is(err, ErrNoAchievementSource))
}

func TestNew_RequiresData(t *testing.T) {
	_, err := New(nil, Options{})
	assert.Error(t, err)
	_, err = New(&Data{}, Options{})
	assert.Error(t, err)
}
