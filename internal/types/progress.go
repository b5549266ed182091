package types

import (
	"encoding/json"
	"fmt"
	"math"
)

// Percent is a completion percentage that may be Unknown.
// Unknown is reported for pathways that could not be resolved, so that they
// render differently from a resolved pathway at 0%.
type Percent struct {
	value int
	known bool
}

// UnknownPercent returns the Unknown sentinel.
func UnknownPercent() Percent { return Percent{} }

// PercentOf returns round(100 * completed / total), or Unknown when total is 0.
func PercentOf(completed, total int) Percent {
	if total <= 0 {
		return UnknownPercent()
	}
	return Percent{value: int(math.Round(100 * float64(completed) / float64(total))), known: true}
}

// Value returns the percentage and whether it is known.
func (p Percent) Value() (int, bool) { return p.value, p.known }

// IsUnknown reports whether p is the Unknown sentinel.
func (p Percent) IsUnknown() bool { return !p.known }

func (p Percent) String() string {
	if !p.known {
		return "unknown"
	}
	return fmt.Sprintf("%d%%", p.value)
}

// MarshalJSON encodes Unknown as null and known values as integers.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.known {
		return []byte("null"), nil
	}
	return json.Marshal(p.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Percent) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = UnknownPercent()
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid percent %s: %w", string(data), err)
	}
	*p = Percent{value: v, known: true}
	return nil
}

// Progress is the result of evaluating a user's achievements against one pathway.
type Progress struct {
	PathwayID       string               `json:"pathway_id"`
	Name            string               `json:"name"`
	Resolved        bool                 `json:"resolved"` // false: no catalog data, display by name
	CompletedCount  int                  `json:"completed_count"`
	TotalRequired   int                  `json:"total_required"`
	PercentComplete Percent              `json:"percent_complete"`
	NextRequirement *PathwayRequirement  `json:"next_requirement,omitempty"`
	Completed       []PathwayRequirement `json:"completed"`
	Missing         []PathwayRequirement `json:"missing"`
	NextSteps       []PathwayRequirement `json:"next_steps"`

	// MatchedAchievements lists achieved names that satisfied a required item.
	MatchedAchievements []string `json:"matched_achievements"`
}
