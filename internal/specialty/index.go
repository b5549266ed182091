// Package specialty maps specialty names to their curated career path entries.
package specialty

import (
	"fmt"
	"io/fs"
	"slices"

	"github.com/jonathan/pathway-tracker/internal/schemas"
	"github.com/jonathan/pathway-tracker/internal/types"
)

// Entry is one specialty's curated career paths and relevant exams.
type Entry struct {
	Paths []types.CareerPath `json:"paths" yaml:"paths"`
	Exams []string           `json:"exams,omitempty" yaml:"exams,omitempty"`
}

// Document is the on-disk shape of the specialty index.
type Document struct {
	Specialties  map[string]Entry   `json:"specialties" yaml:"specialties"`
	DefaultPaths []types.CareerPath `json:"default_paths" yaml:"default_paths"`
}

// Index is an immutable specialty -> career path lookup with a shared default list.
// Matching is exact and case-sensitive; the specialty taxonomy is curated upstream.
type Index struct {
	entries  map[string]Entry
	defaults []types.CareerPath
}

// New builds an index from a decoded document. The document is copied.
func New(doc Document) *Index {
	idx := &Index{
		entries:  make(map[string]Entry, len(doc.Specialties)),
		defaults: slices.Clone(doc.DefaultPaths),
	}
	for name, e := range doc.Specialties {
		idx.entries[name] = Entry{
			Paths: slices.Clone(e.Paths),
			Exams: slices.Clone(e.Exams),
		}
	}
	return idx
}

// Load reads and validates a specialty index file.
func Load(fsys fs.FS, path string) (*Index, error) {
	var doc Document
	if err := schemas.DecodeFile(fsys, path, schemas.SpecialtyIndex, &doc); err != nil {
		return nil, fmt.Errorf("failed to load specialty index %s: %w", path, err)
	}
	return New(doc), nil
}

// PathsFor returns the curated career paths for a specialty, or the default
// list when the specialty is not mapped.
func (i *Index) PathsFor(specialty string) []types.CareerPath {
	if e, ok := i.entries[specialty]; ok {
		return slices.Clone(e.Paths)
	}
	return slices.Clone(i.defaults)
}

// IsMapped reports whether the specialty has its own curated list.
func (i *Index) IsMapped(specialty string) bool {
	_, ok := i.entries[specialty]
	return ok
}

// ExamsFor returns the exams associated with a specialty, or nil.
func (i *Index) ExamsFor(specialty string) []string {
	return slices.Clone(i.entries[specialty].Exams)
}

// Specialties returns the mapped specialty names in sorted order.
func (i *Index) Specialties() []string {
	names := make([]string, 0, len(i.entries))
	for name := range i.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
