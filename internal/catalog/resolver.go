package catalog

import "github.com/jonathan/pathway-tracker/internal/types"

// Resolve looks a pathway up by exact id. Ids are opaque curated slugs, so no
// case folding or fuzzy matching is applied. The boolean is false when the id
// is unknown, which is the normal outcome for user-entered custom names.
// The returned definition is a copy and may be modified by the caller.
func (c *Catalog) Resolve(id string) (*types.PathwayDefinition, bool) {
	def, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return def.Clone(), true
}

// Get is Resolve with a NotFoundError for callers that prefer error returns.
func (c *Catalog) Get(id string) (*types.PathwayDefinition, error) {
	def, ok := c.Resolve(id)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return def, nil
}

// ResolveFromCareerPath resolves the pathway a CareerPath links to and records
// the career path's display name in MatchedVia.
func (c *Catalog) ResolveFromCareerPath(path types.CareerPath) (*types.PathwayDefinition, bool) {
	if path.PathwayID == "" {
		return nil, false
	}
	def, ok := c.Resolve(path.PathwayID)
	if !ok {
		return nil, false
	}
	def.MatchedVia = path.Name
	return def, true
}
