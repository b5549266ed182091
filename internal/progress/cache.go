package progress

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonathan/pathway-tracker/internal/types"
)

// DefaultCacheSize is the number of (pathway, achieved set) results kept.
const DefaultCacheSize = 1024

// CachedCalculator memoizes Compute on (pathway, canonical achieved set).
// Compute is pure over an immutable catalog, so entries never go stale.
type CachedCalculator struct {
	calc  *Calculator
	cache *lru.Cache[string, types.Progress]
}

// NewCachedCalculator wraps a calculator with an LRU cache of the given size.
func NewCachedCalculator(calc *Calculator, size int) (*CachedCalculator, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, types.Progress](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create progress cache: %w", err)
	}
	return &CachedCalculator{calc: calc, cache: cache}, nil
}

// Compute returns the memoized progress, computing it on a miss.
// The result is a copy; callers may modify it.
func (c *CachedCalculator) Compute(pathway string, achieved Achieved) types.Progress {
	key := cacheKey(pathway, achieved)
	if p, ok := c.cache.Get(key); ok {
		return cloneProgress(p)
	}
	p := c.calc.Compute(pathway, achieved)
	c.cache.Add(key, p)
	return cloneProgress(p)
}

// Len returns the number of cached entries.
func (c *CachedCalculator) Len() int {
	return c.cache.Len()
}

func cacheKey(pathway string, achieved Achieved) string {
	return fmt.Sprintf("%d:%s%s", len(pathway), pathway, achieved.Key())
}

// cloneProgress deep-copies p so nothing in the result aliases a cached entry.
func cloneProgress(p types.Progress) types.Progress {
	out := p
	out.Completed = cloneRequirements(p.Completed)
	out.Missing = cloneRequirements(p.Missing)
	out.NextSteps = cloneRequirements(p.NextSteps)
	out.MatchedAchievements = slices.Clone(p.MatchedAchievements)
	if p.NextRequirement != nil {
		next := p.NextRequirement.Clone()
		out.NextRequirement = &next
	}
	return out
}

func cloneRequirements(reqs []types.PathwayRequirement) []types.PathwayRequirement {
	if reqs == nil {
		return nil
	}
	out := make([]types.PathwayRequirement, len(reqs))
	for i, r := range reqs {
		out[i] = r.Clone()
	}
	return out
}
