package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/pathway-tracker/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintPathway(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPathway(&types.PathwayDefinition{
		ID:                "plab-to-training",
		Name:              "PLAB to Training",
		Country:           "United Kingdom",
		EstimatedDuration: "2-3 years",
		Requirements: []types.PathwayRequirement{
			{Name: "PLAB 2", Category: types.CategoryExam, IsRequired: true, Order: 3},
			{Name: "IELTS Academic", Category: types.CategoryLanguage, IsRequired: true, Order: 1, Alternatives: []string{"OET"}},
			{Name: "NHS Clinical Experience", Category: types.CategoryTraining, IsRequired: false, Order: 6},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "PATHWAY REQUIREMENTS")
	assert.Contains(t, output, "PLAB to Training (plab-to-training)")
	assert.Contains(t, output, "Duration: 2-3 years")
	assert.Contains(t, output, "or: OET")
	assert.Contains(t, output, "○ 6. NHS Clinical Experience")
	assert.Less(t, strings.Index(output, "IELTS Academic"), strings.Index(output, "PLAB 2"))
}

func TestPrintPathway_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintPathway(nil)
	assert.Empty(t, buf.String())
}

func TestPrintProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	missing := []types.PathwayRequirement{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}
	p.PrintProgress(types.Progress{
		Name:            "ECFMG Pathway",
		Resolved:        true,
		CompletedCount:  1,
		TotalRequired:   5,
		PercentComplete: types.PercentOf(1, 5),
		Completed:       []types.PathwayRequirement{{Name: "OET Medicine"}},
		Missing:         missing,
		NextSteps:       missing[:3],
	})
	output := buf.String()

	assert.Contains(t, output, "1/5 required (20%)")
	assert.Contains(t, output, "✓ OET Medicine")
	assert.Contains(t, output, "3. C")
	assert.Contains(t, output, "... and 1 more")
	assert.NotContains(t, output, "4. D")
}

func TestPrintProgress_Unresolved(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProgress(types.Progress{Name: "CustomPathXYZ"})

	assert.Contains(t, buf.String(), "No catalog data")
	assert.NotContains(t, buf.String(), "Progress:")
}

func TestPrintMilestones(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMilestones([]types.Milestone{
		{Name: "PLAB 1", Category: "Exam"},
		{Name: "Visa Sponsorship", Category: "Immigration"},
		{Name: "PLAB 2", Category: "Exam"},
	}, "curated")
	output := buf.String()

	assert.Contains(t, output, "3 milestones (curated)")
	assert.Equal(t, 1, strings.Count(output, "Exam:"))
	assert.Less(t, strings.Index(output, "PLAB 2"), strings.Index(output, "Immigration:"))
}

func TestPrintMilestones_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMilestones(nil, "curated")
	assert.Contains(t, buf.String(), "NO MILESTONES")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printBox("TITLE", strings.Repeat("x", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}
