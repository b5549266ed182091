package types

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// PathwaySelection is a user's set of selected pathways and the archived subset.
// Entries are catalog ids or free-text custom pathway names, in insertion order.
// Archived is always a subset of Selected.
type PathwaySelection struct {
	UserID    uuid.UUID `json:"user_id"`
	Selected  []string  `json:"selected"`
	Archived  []string  `json:"archived"`
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// IsSelected reports whether id is currently selected (active or archived).
func (s *PathwaySelection) IsSelected(id string) bool {
	return slices.Contains(s.Selected, id)
}

// IsArchived reports whether id is in the archived subset.
func (s *PathwaySelection) IsArchived(id string) bool {
	return slices.Contains(s.Archived, id)
}

// Active returns the selected ids that are not archived, in selection order.
func (s *PathwaySelection) Active() []string {
	active := make([]string, 0, len(s.Selected))
	for _, id := range s.Selected {
		if !s.IsArchived(id) {
			active = append(active, id)
		}
	}
	return active
}

// Clone returns a copy whose slices can be mutated independently.
func (s *PathwaySelection) Clone() *PathwaySelection {
	out := *s
	out.Selected = slices.Clone(s.Selected)
	out.Archived = slices.Clone(s.Archived)
	if out.Selected == nil {
		out.Selected = []string{}
	}
	if out.Archived == nil {
		out.Archived = []string{}
	}
	return &out
}
