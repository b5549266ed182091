// Package milestones aggregates milestone templates across selected career paths.
package milestones

import (
	"fmt"
	"io/fs"
	"slices"

	"github.com/jonathan/pathway-tracker/internal/schemas"
	"github.com/jonathan/pathway-tracker/internal/types"
)

// PathMilestones is the curated template list for one career path.
type PathMilestones struct {
	Path       string            `json:"path" yaml:"path"`
	Milestones []types.Milestone `json:"milestones" yaml:"milestones"`
}

// Document is the on-disk shape of the milestone index.
type Document struct {
	Paths  []PathMilestones  `json:"paths" yaml:"paths"`
	Common []types.Milestone `json:"common" yaml:"common"`
}

// Mode reports which strategy produced an aggregation.
type Mode string

const (
	// ModeCurated unions templates of the selected paths only.
	ModeCurated Mode = "curated"
	// ModeBroad unions templates of every registered path because at least one
	// selection is not in the curated index.
	ModeBroad Mode = "broad"
)

// Aggregator is an immutable curated path -> milestone index plus the common set.
type Aggregator struct {
	paths  []PathMilestones
	byPath map[string]int
	common []types.Milestone
}

// New builds an aggregator. Path order in the document is the catalog
// iteration order used in broad mode. Duplicate path names are rejected.
func New(doc Document) (*Aggregator, error) {
	a := &Aggregator{
		paths:  make([]PathMilestones, 0, len(doc.Paths)),
		byPath: make(map[string]int, len(doc.Paths)),
		common: slices.Clone(doc.Common),
	}
	for _, p := range doc.Paths {
		if p.Path == "" {
			return nil, fmt.Errorf("milestone index entry %d has no path name", len(a.paths))
		}
		if _, dup := a.byPath[p.Path]; dup {
			return nil, fmt.Errorf("duplicate milestone index entry for path %q", p.Path)
		}
		a.byPath[p.Path] = len(a.paths)
		a.paths = append(a.paths, PathMilestones{Path: p.Path, Milestones: slices.Clone(p.Milestones)})
	}
	return a, nil
}

// Load reads and validates a milestone index file.
func Load(fsys fs.FS, path string) (*Aggregator, error) {
	var doc Document
	if err := schemas.DecodeFile(fsys, path, schemas.MilestoneIndex, &doc); err != nil {
		return nil, fmt.Errorf("failed to load milestone index %s: %w", path, err)
	}
	return New(doc)
}

// Aggregate returns the deduplicated, ordered milestone templates for the
// selected career paths, followed by the common set.
func (a *Aggregator) Aggregate(selected []string) []types.Milestone {
	out, _ := a.AggregateWithMode(selected)
	return out
}

// AggregateWithMode is Aggregate that also reports whether broad mode was used.
//
// If any selected name is missing from the curated index, every registered
// path's templates are returned (in index order) instead of only the selected
// ones. Names are deduplicated by exact match; the first occurrence wins.
func (a *Aggregator) AggregateWithMode(selected []string) ([]types.Milestone, Mode) {
	mode := ModeCurated
	for _, name := range selected {
		if !a.Known(name) {
			mode = ModeBroad
			break
		}
	}

	acc := newAccumulator()
	if mode == ModeBroad {
		for _, p := range a.paths {
			acc.add(p.Milestones...)
		}
	} else {
		for _, name := range selected {
			acc.add(a.paths[a.byPath[name]].Milestones...)
		}
	}
	acc.add(a.common...)
	return acc.items, mode
}

// Known reports whether a career path name is in the curated index.
func (a *Aggregator) Known(path string) bool {
	_, ok := a.byPath[path]
	return ok
}

// Paths returns the curated path names in index order.
func (a *Aggregator) Paths() []string {
	names := make([]string, len(a.paths))
	for i, p := range a.paths {
		names[i] = p.Path
	}
	return names
}

type accumulator struct {
	items []types.Milestone
	seen  map[string]struct{}
}

func newAccumulator() *accumulator {
	return &accumulator{items: []types.Milestone{}, seen: make(map[string]struct{})}
}

func (acc *accumulator) add(ms ...types.Milestone) {
	for _, m := range ms {
		if _, ok := acc.seen[m.Name]; ok {
			continue
		}
		acc.seen[m.Name] = struct{}{}
		acc.items = append(acc.items, m)
	}
}
