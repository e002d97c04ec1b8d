// Package observability provides formatted text output of hiring reports for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/hireflow/internal/analytics"
	"github.com/jonathan/hireflow/internal/seed"
	"github.com/jonathan/hireflow/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted report output
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
		line = truncate(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to width runes so box borders stay aligned.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// more writes the "... and N more" trailer when a list was cut.
func more(sb *strings.Builder, total int, noun string) {
	if total > maxItemsToShow {
		fmt.Fprintf(sb, "  ... and %d more %s\n", total-maxItemsToShow, noun)
	}
}

// PrintReport prints every section of an analytics report.
func (p *Printer) PrintReport(r analytics.Report) {
	p.PrintHiringMetrics(r.Metrics)
	p.PrintFunnel(r.Metrics.HiringFunnel)
	p.PrintDepartments(r.Departments)
	p.PrintEfficiency(r.Efficiency)
}

// PrintHiringMetrics outputs the headline numbers with top skills and status breakdown.
func (p *Printer) PrintHiringMetrics(m types.HiringMetrics) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Jobs:          %d (%d active)\n", m.TotalJobs, m.ActiveJobs)
	fmt.Fprintf(&sb, "Applications:  %d\n", m.TotalApplications)
	fmt.Fprintf(&sb, "Interviews:    %d\n", m.TotalInterviews)
	fmt.Fprintf(&sb, "Hire rate:     %.1f%%\n", m.HireRate*100)
	fmt.Fprintf(&sb, "Time to hire:  %.1f days\n", m.AverageTimeToHire)

	if len(m.TopSkills) > 0 {
		sb.WriteString("\nTop skills:\n")
		for _, s := range m.TopSkills[:min(len(m.TopSkills), maxItemsToShow)] {
			fmt.Fprintf(&sb, "  • %-20s %3d  %5.1f%%\n", s.Skill, s.Count, s.Percentage)
		}
		more(&sb, len(m.TopSkills), "skills")
	}

	if len(m.ApplicationsByStatus) > 0 {
		sb.WriteString("\nApplications by status:\n")
		for _, l := range m.ApplicationsByStatus {
			fmt.Fprintf(&sb, "  • %-20s %3d  %5.1f%%\n", l.Label, l.Count, l.Percentage)
		}
	}

	p.printBox("HIRING METRICS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFunnel outputs each funnel stage with its conversion from the previous stage.
func (p *Printer) PrintFunnel(stages []types.FunnelMetric) {
	if len(stages) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range stages {
		fmt.Fprintf(&sb, "%-12s %4d  %5.1f%%", s.Stage, s.Count, s.Percentage)
		if i > 0 {
			fmt.Fprintf(&sb, "  (→ %.1f%%)", s.ConversionRate)
		}
		sb.WriteString("\n")
	}

	p.printBox("HIRING FUNNEL", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDepartments outputs the department rollup, busiest department first.
func (p *Printer) PrintDepartments(departments []types.DepartmentMetrics) {
	if len(departments) == 0 {
		return
	}

	sorted := append([]types.DepartmentMetrics(nil), departments...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalApplications > sorted[j].TotalApplications
	})

	var sb strings.Builder
	for _, d := range sorted[:min(len(sorted), maxItemsToShow)] {
		fmt.Fprintf(&sb, "%s\n", d.Department)
		fmt.Fprintf(&sb, "    open %d · applications %d · hire rate %.1f%%\n",
			d.OpenPositions, d.TotalApplications, d.HireRate*100)
	}
	more(&sb, len(sorted), "departments")

	p.printBox("DEPARTMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEfficiency outputs source effectiveness and recruiter performance.
func (p *Printer) PrintEfficiency(e types.RecruitmentEfficiency) {
	if len(e.SourceEffectiveness) == 0 && len(e.RecruiterPerformance) == 0 {
		return
	}

	var sb strings.Builder
	if len(e.SourceEffectiveness) > 0 {
		sb.WriteString("Sources:\n")
		for _, s := range e.SourceEffectiveness[:min(len(e.SourceEffectiveness), maxItemsToShow)] {
			fmt.Fprintf(&sb, "  • %-16s %3d apps  %2d hires  %5.1f%%\n", s.Source, s.Applications, s.Hires, s.ConversionRate*100)
		}
		more(&sb, len(e.SourceEffectiveness), "sources")
	}

	if len(e.RecruiterPerformance) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Recruiters:\n")
		for _, r := range e.RecruiterPerformance[:min(len(e.RecruiterPerformance), maxItemsToShow)] {
			name := r.RecruiterName
			if name == "" {
				name = r.RecruiterID
			}
			fmt.Fprintf(&sb, "  • %-16s %2d jobs  %3d apps  %2d hires\n", name, r.ActiveJobs, r.TotalApplications, r.Hires)
		}
		more(&sb, len(e.RecruiterPerformance), "recruiters")
	}

	p.printBox("RECRUITMENT EFFICIENCY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSeedSummary outputs the records created and skipped per collection.
func (p *Printer) PrintSeedSummary(sum seed.Summary) {
	kinds := make([]string, 0, len(sum.Created)+len(sum.Skipped))
	seen := map[string]bool{}
	for _, m := range []map[string]int{sum.Created, sum.Skipped} {
		for k := range m {
			if !seen[k] {
				seen[k] = true
				kinds = append(kinds, k)
			}
		}
	}
	sort.Strings(kinds)

	var sb strings.Builder
	for _, k := range kinds {
		fmt.Fprintf(&sb, "%-24s created %3d  skipped %3d\n", k, sum.Created[k], sum.Skipped[k])
	}
	fmt.Fprintf(&sb, "\nTotal created: %d", sum.Total())

	p.printBox("SEED SUMMARY", sb.String())
}
