package progress

import (
	"slices"

	"github.com/jonathan/pathway-tracker/internal/types"
)

// maxNextSteps is how many missing requirements are suggested as next steps
const maxNextSteps = 3

// Resolver looks up a pathway definition by exact id.
type Resolver interface {
	Resolve(id string) (*types.PathwayDefinition, bool)
}

// Calculator computes progress against pathways from a Resolver.
// It holds no state besides the resolver and is safe for concurrent use.
type Calculator struct {
	resolver Resolver
}

// NewCalculator creates a calculator backed by resolver.
func NewCalculator(resolver Resolver) *Calculator {
	return &Calculator{resolver: resolver}
}

// Compute resolves pathway and evaluates achieved against it. An unresolved
// pathway is reported by name with Resolved=false and an Unknown percentage.
func (c *Calculator) Compute(pathway string, achieved Achieved) types.Progress {
	def, ok := c.resolver.Resolve(pathway)
	if !ok {
		return Unresolved(pathway)
	}
	return Evaluate(def, achieved)
}

// Unresolved is the progress reported for a pathway with no catalog data.
func Unresolved(name string) types.Progress {
	return types.Progress{
		PathwayID:           name,
		Name:                name,
		Resolved:            false,
		PercentComplete:     types.UnknownPercent(),
		Completed:           []types.PathwayRequirement{},
		Missing:             []types.PathwayRequirement{},
		NextSteps:           []types.PathwayRequirement{},
		MatchedAchievements: []string{},
	}
}

// Evaluate computes progress for a resolved definition.
//
// Requirements are visited in ascending order. Order never gates satisfaction:
// a later item may be satisfied while an earlier one is not. The next
// requirement is the lowest-order unsatisfied required item.
func Evaluate(def *types.PathwayDefinition, achieved Achieved) types.Progress {
	p := types.Progress{
		PathwayID:           def.ID,
		Name:                def.Name,
		Resolved:            true,
		Completed:           []types.PathwayRequirement{},
		Missing:             []types.PathwayRequirement{},
		MatchedAchievements: []string{},
	}

	for _, req := range types.RequiredItems(def) {
		p.TotalRequired++
		ok, matched := Satisfied(req, achieved)
		if !ok {
			p.Missing = append(p.Missing, req)
			continue
		}
		p.CompletedCount++
		p.Completed = append(p.Completed, req)
		if matched != "" {
			p.MatchedAchievements = append(p.MatchedAchievements, matched)
		}
	}

	p.PercentComplete = types.PercentOf(p.CompletedCount, p.TotalRequired)
	if len(p.Missing) > 0 {
		next := p.Missing[0]
		p.NextRequirement = &next
	}
	p.NextSteps = slices.Clone(p.Missing[:min(len(p.Missing), maxNextSteps)])
	return p
}

// Satisfied reports whether a requirement is met and which achieved name met it.
// A matching external id wins, then the requirement's own name, then any one of
// its alternatives. Matched is empty when the match was by external id only.
func Satisfied(req types.PathwayRequirement, achieved Achieved) (ok bool, matched string) {
	if achieved.HasID(req.ExternalID) {
		if achieved.HasName(req.Name) {
			return true, req.Name
		}
		return true, ""
	}
	if achieved.HasName(req.Name) {
		return true, req.Name
	}
	for _, alt := range req.Alternatives {
		if achieved.HasName(alt) {
			return true, alt
		}
	}
	return false, ""
}
