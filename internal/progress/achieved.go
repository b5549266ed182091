// Package progress computes pathway completion from a user's achieved milestones.
package progress

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/pathway-tracker/internal/types"
)

// Achieved is an immutable set of achieved milestone names and external ids.
type Achieved struct {
	names map[string]struct{}
	ids   map[string]struct{}
}

// NewAchieved builds a set from milestone names. Empty names are ignored.
func NewAchieved(names ...string) Achieved {
	a := Achieved{names: make(map[string]struct{}, len(names)), ids: map[string]struct{}{}}
	for _, n := range names {
		if n != "" {
			a.names[n] = struct{}{}
		}
	}
	return a
}

// AchievedFromMilestones builds a set from achievement records, keeping only
// records whose status is done.
func AchievedFromMilestones(records []types.AchievedMilestone) Achieved {
	a := NewAchieved()
	for _, r := range records {
		if r.Status != types.StatusDone {
			continue
		}
		if r.Name != "" {
			a.names[r.Name] = struct{}{}
		}
		if r.ExternalID != "" {
			a.ids[r.ExternalID] = struct{}{}
		}
	}
	return a
}

// With returns a new set that also contains the given names.
func (a Achieved) With(names ...string) Achieved {
	out := NewAchieved(append(a.Names(), names...)...)
	for id := range a.ids {
		out.ids[id] = struct{}{}
	}
	return out
}

// HasName reports whether name was achieved.
func (a Achieved) HasName(name string) bool {
	_, ok := a.names[name]
	return ok
}

// HasID reports whether a record with the external id was achieved.
func (a Achieved) HasID(id string) bool {
	if id == "" {
		return false
	}
	_, ok := a.ids[id]
	return ok
}

// Len returns the number of distinct names and ids.
func (a Achieved) Len() int {
	return len(a.names) + len(a.ids)
}

// Names returns the achieved names in sorted order.
func (a Achieved) Names() []string {
	out := make([]string, 0, len(a.names))
	for n := range a.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Key is a canonical representation of the set, stable across insertion order.
// Every element is length-prefixed, so distinct sets never share a key whatever
// bytes their names contain.
func (a Achieved) Key() string {
	ids := make([]string, 0, len(a.ids))
	for id := range a.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	writeKeyPart(&b, a.Names())
	writeKeyPart(&b, ids)
	return b.String()
}

func writeKeyPart(b *strings.Builder, items []string) {
	fmt.Fprintf(b, "%d[", len(items))
	for _, s := range items {
		fmt.Fprintf(b, "%d:%s", len(s), s)
	}
	b.WriteByte(']')
}
