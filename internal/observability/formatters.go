// Package observability provides formatted output utilities for the CLI's
// human-readable mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/pathway-tracker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for pretty mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// PrintPathway outputs a pathway's requirements in order, marking optional items.
func (p *Printer) PrintPathway(def *types.PathwayDefinition) {
	if def == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pathway:  %s (%s)\n", def.Name, def.ID))
	if def.Country != "" {
		sb.WriteString(fmt.Sprintf("Country:  %s\n", def.Country))
	}
	if def.EstimatedDuration != "" {
		sb.WriteString(fmt.Sprintf("Duration: %s\n", def.EstimatedDuration))
	}
	sb.WriteString("\n")

	reqs := def.Clone().Requirements
	sort.SliceStable(reqs, func(i, j int) bool { return reqs[i].Order < reqs[j].Order })
	for _, r := range reqs {
		marker := "•"
		if !r.IsRequired {
			marker = "○"
		}
		sb.WriteString(fmt.Sprintf("%s %d. %s [%s]\n", marker, r.Order, r.Name, r.Category))
		if len(r.Alternatives) > 0 {
			sb.WriteString(fmt.Sprintf("    or: %s\n", strings.Join(r.Alternatives, ", ")))
		}
	}

	p.printBox("PATHWAY REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProgress outputs completion counts, the next requirement and up to
// three next steps.
func (p *Printer) PrintProgress(progress types.Progress) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pathway:  %s\n", progress.Name))

	if !progress.Resolved {
		sb.WriteString("No catalog data for this pathway")
		p.printBox("PATHWAY PROGRESS", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Progress: %d/%d required (%s)\n",
		progress.CompletedCount, progress.TotalRequired, progress.PercentComplete))

	if len(progress.Completed) > 0 {
		sb.WriteString("\nCompleted:\n")
		count := min(len(progress.Completed), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", progress.Completed[i].Name))
		}
		if len(progress.Completed) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(progress.Completed)-maxItemsToShow))
		}
	}

	if len(progress.NextSteps) > 0 {
		sb.WriteString("\nNext steps:\n")
		for i, step := range progress.NextSteps {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step.Name))
		}
		if rest := len(progress.Missing) - len(progress.NextSteps); rest > 0 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", rest))
		}
	}

	p.printBox("PATHWAY PROGRESS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMilestones outputs aggregated milestone templates grouped by category.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMilestones(milestones []types.Milestone, mode string) {
	if len(milestones) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO MILESTONES")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d milestones (%s)\n", len(milestones), mode))

	var categories []string
	byCategory := map[string][]string{}
	for _, m := range milestones {
		c := m.Category
		if _, ok := byCategory[c]; !ok {
			categories = append(categories, c)
		}
		byCategory[c] = append(byCategory[c], m.Name)
	}
	for _, c := range categories {
		sb.WriteString(fmt.Sprintf("\n%s:\n", c))
		for _, name := range byCategory[c] {
			sb.WriteString(fmt.Sprintf("  • %s\n", name))
		}
	}

	p.printBox("CAREER PATH MILESTONES", strings.TrimSuffix(sb.String(), "\n"))
}
