package types

import "time"

// CareerPath is a specialty-indexed selection entry shown when choosing pathways.
// Several entries, across specialties, may point at the same PathwayID.
type CareerPath struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Category    string `json:"category" yaml:"category"` // Country grouping, e.g. "United Kingdom"
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	PathwayID   string `json:"pathway_id,omitempty" yaml:"pathway_id,omitempty"`
}

// Milestone is a requirement template surfaced during pathway setup.
// It is joined to catalog requirements by exact name.
type Milestone struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Achievement status values; only StatusDone counts towards progress.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
	StatusSkipped    = "skipped"
)

// AchievedMilestone is a milestone record owned by the achievement subsystem.
type AchievedMilestone struct {
	Name        string     `json:"name,omitempty"`
	ExternalID  string     `json:"external_id,omitempty"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
