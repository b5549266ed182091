package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/pathway-tracker/internal/types"
)

// CountryRegistry is one country's list of pathway definitions, in authoring order.
type CountryRegistry struct {
	Country  string                    `json:"country" yaml:"country"`
	Pathways []types.PathwayDefinition `json:"pathways" yaml:"pathways"`
}

// Catalog is an immutable registry of pathway definitions grouped by country.
// It is safe for concurrent reads; nothing mutates it after Build returns.
type Catalog struct {
	ids       []string
	byID      map[string]*types.PathwayDefinition
	countries []string
	byCountry map[string][]string
	origin    map[string]string // id -> registry country, for duplicate reporting
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Build assembles a catalog from country registries. Registries are iterated in
// the given order, which becomes the catalog iteration order. Build fails fast on
// the first malformed pathway or requirement and on duplicate pathway ids.
func Build(registries ...CountryRegistry) (*Catalog, error) {
	c := &Catalog{
		byID:      make(map[string]*types.PathwayDefinition),
		byCountry: make(map[string][]string),
		origin:    make(map[string]string),
	}

	for _, reg := range registries {
		if _, seen := c.byCountry[reg.Country]; !seen {
			c.countries = append(c.countries, reg.Country)
			c.byCountry[reg.Country] = nil
		}
		for i := range reg.Pathways {
			def, err := normalizePathway(reg.Country, i, &reg.Pathways[i])
			if err != nil {
				return nil, err
			}
			if prev, dup := c.origin[def.ID]; dup {
				return nil, &DuplicatePathwayError{ID: def.ID, Country: reg.Country, Previous: prev}
			}
			c.origin[def.ID] = reg.Country
			c.byID[def.ID] = def
			c.ids = append(c.ids, def.ID)
			c.byCountry[reg.Country] = append(c.byCountry[reg.Country], def.ID)
		}
	}

	return c, nil
}

// normalizePathway validates a definition and returns a private copy with
// requirements sorted by order.
func normalizePathway(country string, index int, p *types.PathwayDefinition) (*types.PathwayDefinition, error) {
	if strings.TrimSpace(p.ID) == "" {
		return nil, &MalformedPathwayError{Country: country, Index: index, Field: "id", Reason: "is required"}
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, &MalformedPathwayError{Country: country, Index: index, Field: "name", Reason: "is required"}
	}

	def := p.Clone()
	def.MatchedVia = ""
	if def.Country == "" {
		def.Country = country
	}

	names := make(map[string]int, len(def.Requirements))
	orders := make(map[int]int, len(def.Requirements))
	for i := range def.Requirements {
		req := &def.Requirements[i]
		if err := validate.Struct(req); err != nil {
			return nil, requirementError(def.ID, i, err)
		}
		if prev, dup := names[req.Name]; dup {
			return nil, &MalformedRequirementError{
				PathwayID: def.ID, Index: i, Field: "name",
				Reason: fmt.Sprintf("duplicate name %q (also requirement %d)", req.Name, prev),
			}
		}
		if prev, dup := orders[req.Order]; dup {
			return nil, &MalformedRequirementError{
				PathwayID: def.ID, Index: i, Field: "order",
				Reason: fmt.Sprintf("duplicate order %d (also requirement %d)", req.Order, prev),
			}
		}
		names[req.Name] = i
		orders[req.Order] = i
	}

	sort.SliceStable(def.Requirements, func(i, j int) bool {
		return def.Requirements[i].Order < def.Requirements[j].Order
	})
	return def, nil
}

func requirementError(pathwayID string, index int, err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		reason := "failed " + fe.Tag()
		if fe.Tag() == "required" {
			reason = "is required"
		} else if fe.Param() != "" {
			reason = fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
		}
		return &MalformedRequirementError{PathwayID: pathwayID, Index: index, Field: field, Reason: reason}
	}
	return &MalformedRequirementError{PathwayID: pathwayID, Index: index, Field: "(struct)", Reason: err.Error()}
}

// Len returns the number of pathways in the catalog.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Countries returns country names in registry order.
func (c *Catalog) Countries() []string {
	return append([]string(nil), c.countries...)
}

// IDs returns every pathway id in catalog order.
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.ids...)
}

// All returns copies of every pathway in catalog order.
func (c *Catalog) All() []types.PathwayDefinition {
	out := make([]types.PathwayDefinition, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, *c.byID[id].Clone())
	}
	return out
}

// ByCountry returns copies of a country's pathways, or nil for an unknown country.
func (c *Catalog) ByCountry(country string) []types.PathwayDefinition {
	ids, ok := c.byCountry[country]
	if !ok {
		return nil
	}
	out := make([]types.PathwayDefinition, 0, len(ids))
	for _, id := range ids {
		out = append(out, *c.byID[id].Clone())
	}
	return out
}
