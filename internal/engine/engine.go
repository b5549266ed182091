// Package engine wires the catalog, indices, progress calculator and lifecycle
// manager into the operations exposed to the server and CLI.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/pathway-tracker/internal/catalog"
	"github.com/jonathan/pathway-tracker/internal/lifecycle"
	"github.com/jonathan/pathway-tracker/internal/milestones"
	"github.com/jonathan/pathway-tracker/internal/progress"
	"github.com/jonathan/pathway-tracker/internal/types"
)

// ErrNoAchievementSource is returned by user progress operations when the
// engine was built without an achievement source.
var ErrNoAchievementSource = errors.New("no achievement source configured")

// AchievementSource reads a user's milestone records. The engine never writes them.
type AchievementSource interface {
	ListAchievedMilestones(ctx context.Context, userID uuid.UUID) ([]types.AchievedMilestone, error)
}

// Options configures an Engine.
type Options struct {
	// Store persists pathway selections. Defaults to an in-memory store.
	Store lifecycle.Store
	// Achievements supplies achieved milestones for user progress. Optional.
	Achievements AchievementSource
	// CacheSize bounds memoized progress results. Zero uses the default.
	CacheSize int
}

// Engine is safe for concurrent use. Catalog data is read-only after construction.
type Engine struct {
	data         *Data
	progress     *progress.CachedCalculator
	lifecycle    *lifecycle.Manager
	achievements AchievementSource
}

// New creates an engine over loaded catalog data.
func New(data *Data, opts Options) (*Engine, error) {
	if data == nil || data.Catalog == nil || data.Specialties == nil || data.Milestones == nil {
		return nil, errors.New("engine requires a catalog, specialty index and milestone index")
	}
	calc, err := progress.NewCachedCalculator(progress.NewCalculator(data.Catalog), opts.CacheSize)
	if err != nil {
		return nil, err
	}
	store := opts.Store
	if store == nil {
		store = lifecycle.NewMemoryStore()
	}
	return &Engine{
		data:         data,
		progress:     calc,
		lifecycle:    lifecycle.NewManager(store),
		achievements: opts.Achievements,
	}, nil
}

// Catalog returns the pathway catalog.
func (e *Engine) Catalog() *catalog.Catalog { return e.data.Catalog }

// ResolvePathway returns the definition for an exact id, or a *catalog.NotFoundError.
func (e *Engine) ResolvePathway(id string) (*types.PathwayDefinition, error) {
	return e.data.Catalog.Get(id)
}

// Pathways lists catalog pathways, optionally restricted to one country.
func (e *Engine) Pathways(country string) []types.PathwayDefinition {
	if country == "" {
		return e.data.Catalog.All()
	}
	return e.data.Catalog.ByCountry(country)
}

// PathsFor returns the career paths for a specialty, or the default list.
func (e *Engine) PathsFor(specialtyName string) []types.CareerPath {
	return e.data.Specialties.PathsFor(specialtyName)
}

// ResolveCareerPaths resolves the catalog pathways linked from a specialty's
// career paths, in path order. Each result records the career path it was
// reached through in MatchedVia; paths with no catalog link are skipped.
func (e *Engine) ResolveCareerPaths(specialtyName string) []types.PathwayDefinition {
	paths := e.data.Specialties.PathsFor(specialtyName)
	out := make([]types.PathwayDefinition, 0, len(paths))
	for _, path := range paths {
		if def, ok := e.data.Catalog.ResolveFromCareerPath(path); ok {
			out = append(out, *def)
		}
	}
	return out
}

// SpecialtyMapped reports whether the specialty has a curated path list.
func (e *Engine) SpecialtyMapped(specialtyName string) bool {
	return e.data.Specialties.IsMapped(specialtyName)
}

// ExamsFor returns the curated exams for a specialty.
func (e *Engine) ExamsFor(specialtyName string) []string {
	return e.data.Specialties.ExamsFor(specialtyName)
}

// AggregateMilestones returns milestone templates for the selected career paths.
func (e *Engine) AggregateMilestones(selected []string) ([]types.Milestone, milestones.Mode) {
	return e.data.Milestones.AggregateWithMode(selected)
}

// ComputeProgress evaluates achieved milestone names against a pathway id or
// custom name. Unresolved names yield Resolved=false and an Unknown percentage.
func (e *Engine) ComputeProgress(pathway string, achieved []string) types.Progress {
	return e.progress.Compute(pathway, progress.NewAchieved(achieved...))
}

// UserProgress computes progress for one pathway from the user's recorded achievements.
func (e *Engine) UserProgress(ctx context.Context, userID uuid.UUID, pathway string) (types.Progress, error) {
	achieved, err := e.userAchievements(ctx, userID)
	if err != nil {
		return types.Progress{}, err
	}
	return e.progress.Compute(pathway, achieved), nil
}

// SelectionProgress computes progress for each of the user's active pathways,
// in selection order. Unresolved custom pathways are included, never dropped.
func (e *Engine) SelectionProgress(ctx context.Context, userID uuid.UUID) ([]types.Progress, error) {
	sel, err := e.lifecycle.Selection(ctx, userID)
	if err != nil {
		return nil, err
	}
	achieved, err := e.userAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}
	active := sel.Active()
	out := make([]types.Progress, 0, len(active))
	for _, id := range active {
		out = append(out, e.progress.Compute(id, achieved))
	}
	return out, nil
}

func (e *Engine) userAchievements(ctx context.Context, userID uuid.UUID) (progress.Achieved, error) {
	if e.achievements == nil {
		return progress.Achieved{}, ErrNoAchievementSource
	}
	records, err := e.achievements.ListAchievedMilestones(ctx, userID)
	if err != nil {
		return progress.Achieved{}, fmt.Errorf("failed to list achievements: %w", err)
	}
	return progress.AchievedFromMilestones(records), nil
}

// Selection returns the user's pathway selection.
func (e *Engine) Selection(ctx context.Context, userID uuid.UUID) (*types.PathwaySelection, error) {
	return e.lifecycle.Selection(ctx, userID)
}

// AddPathway selects a pathway id or custom name for the user.
func (e *Engine) AddPathway(ctx context.Context, userID uuid.UUID, id string) (*types.PathwaySelection, error) {
	return e.lifecycle.Add(ctx, userID, id)
}

// ArchivePathway archives an active pathway.
func (e *Engine) ArchivePathway(ctx context.Context, userID uuid.UUID, id string) (*types.PathwaySelection, error) {
	return e.lifecycle.Archive(ctx, userID, id)
}

// RestorePathway restores an archived pathway.
func (e *Engine) RestorePathway(ctx context.Context, userID uuid.UUID, id string) (*types.PathwaySelection, error) {
	return e.lifecycle.Restore(ctx, userID, id)
}

// RemovePathway removes a pathway from the user's selection.
func (e *Engine) RemovePathway(ctx context.Context, userID uuid.UUID, id string) (*types.PathwaySelection, error) {
	return e.lifecycle.Remove(ctx, userID, id)
}
