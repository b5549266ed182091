package catalog

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/jonathan/pathway-tracker/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ukYAML = `
country: United Kingdom
pathways:
  - id: portfolio-pathway
    name: Portfolio Pathway
    target_role: Consultant
    estimated_duration: 2-4 years
    requirements:
      - name: GMC Registration
        category: Registration
        is_required: true
        order: 1
      - name: Portfolio Submission
        category: Document
        is_required: true
        order: 2
        cost_estimate:
          min: 1700
          max: null
          currency: GBP
`

const nzJSON = `{
  "country": "New Zealand",
  "pathways": [
    {"id": "nz-service-post", "name": "Non-Training Clinical Career", "requirements": [
      {"name": "MCNZ Registration", "category": "Registration", "is_required": true, "order": 1}
    ]}
  ]
}`

func TestLoad_CombinesFilesInNameOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"pathways/02-new-zealand.json":   {Data: []byte(nzJSON)},
		"pathways/01-united-kingdom.yaml": {Data: []byte(ukYAML)},
		"pathways/README.md":              {Data: []byte("ignored")},
	}

	c, err := Load(context.Background(), fsys, "pathways")
	require.NoError(t, err)

	assert.Equal(t, []string{"United Kingdom", "New Zealand"}, c.Countries())
	assert.Equal(t, []string{"portfolio-pathway", "nz-service-post"}, c.IDs())

	def, ok := c.Resolve("portfolio-pathway")
	require.True(t, ok)
	assert.Equal(t, "Consultant", def.TargetRole)
	require.NotNil(t, def.Requirements[1].CostEstimate)
	assert.Equal(t, "GBP", def.Requirements[1].CostEstimate.Currency)
	assert.Nil(t, def.Requirements[1].CostEstimate.Max)
}

func TestLoad_SchemaViolation(t *testing.T) {
	fsys := fstest.MapFS{
		"pathways/01-bad.yaml": {Data: []byte("country: X\npathways:\n  - id: Bad Id\n    name: Bad\n    requirements: []\n")},
	}

	_, err := Load(context.Background(), fsys, "pathways")
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "pathways/01-bad.yaml", loadErr.Path)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLoad_MalformedRequirementFailsFast(t *testing.T) {
	fsys := fstest.MapFS{
		"pathways/01-x.yaml": {Data: []byte("country: X\npathways:\n  - id: x\n    name: X\n    requirements:\n      - category: Exam\n        is_required: true\n        order: 1\n")},
	}

	c, err := Load(context.Background(), fsys, "pathways")
	require.Error(t, err)
	assert.Nil(t, c)

	var malformed *MalformedRequirementError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "name", malformed.Field)
}

func TestLoad_RequirementWithoutIsRequiredRejected(t *testing.T) {
	fsys := fstest.MapFS{
		"pathways/01-x.yaml": {Data: []byte("country: X\npathways:\n  - id: x\n    name: X\n    requirements:\n      - name: PLAB 1\n        category: Exam\n        order: 1\n")},
	}

	_, err := Load(context.Background(), fsys, "pathways")
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "is_required")
}

func TestLoad_EmptyDirectory(t *testing.T) {
	fsys := fstest.MapFS{"pathways/notes.txt": {Data: []byte("nothing here")}}

	_, err := Load(context.Background(), fsys, "pathways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no registry files found")
}

func TestLoad_CancelledContext(t *testing.T) {
	fsys := fstest.MapFS{"pathways/01-united-kingdom.yaml": {Data: []byte(ukYAML)}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, fsys, "pathways")
	require.ErrorIs(t, err, context.Canceled)
}
