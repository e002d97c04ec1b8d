// Package export renders analytics reports as XLSX workbooks.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/hireflow/internal/analytics"
)

// Sheet names, in workbook order.
const (
	SheetSummary     = "Summary"
	SheetFunnel      = "Funnel"
	SheetDepartments = "Departments"
	SheetSources     = "Sources"
	SheetRecruiters  = "Recruiters"
	SheetJobs        = "Jobs"
	SheetTimeSeries  = "Time Series"
)

type table struct {
	sheet   string
	headers []string
	rows    [][]any
	widths  []float64
}

// Workbook renders report as XLSX bytes, one sheet per view.
func Workbook(report analytics.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// NewFile starts with a default sheet; reuse it for the summary
	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}

	for i, t := range tables(report) {
		if i > 0 {
			if _, err := f.NewSheet(t.sheet); err != nil {
				return nil, fmt.Errorf("create sheet %s: %w", t.sheet, err)
			}
		}
		if err := writeTable(f, t); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func tables(r analytics.Report) []table {
	m := r.Metrics
	summary := table{
		sheet:   SheetSummary,
		headers: []string{"Metric", "Value"},
		rows: [][]any{
			{"Total jobs", m.TotalJobs},
			{"Active jobs", m.ActiveJobs},
			{"Total applications", m.TotalApplications},
			{"Total interviews", m.TotalInterviews},
			{"Hire rate", m.HireRate},
			{"Average time to hire (days)", m.AverageTimeToHire},
		},
		widths: []float64{30, 14},
	}
	for _, s := range m.TopSkills {
		summary.rows = append(summary.rows, []any{"Skill: " + s.Skill, s.Count})
	}
	for _, s := range m.ApplicationsByStatus {
		summary.rows = append(summary.rows, []any{"Status: " + s.Label, s.Count})
	}
	for _, s := range m.InterviewsByType {
		summary.rows = append(summary.rows, []any{"Interview: " + s.Label, s.Count})
	}

	funnel := table{
		sheet:   SheetFunnel,
		headers: []string{"Stage", "Count", "Percentage", "Conversion Rate"},
		widths:  []float64{16, 10, 14, 16},
	}
	for _, s := range m.HiringFunnel {
		funnel.rows = append(funnel.rows, []any{s.Stage, s.Count, s.Percentage, s.ConversionRate})
	}

	departments := table{
		sheet:   SheetDepartments,
		headers: []string{"Department", "Open Positions", "Applications", "Avg Time to Hire", "Hire Rate"},
		widths:  []float64{22, 14, 14, 16, 12},
	}
	for _, d := range r.Departments {
		departments.rows = append(departments.rows, []any{d.Department, d.OpenPositions, d.TotalApplications, d.AverageTimeToHire, d.HireRate})
	}

	sources := table{
		sheet:   SheetSources,
		headers: []string{"Source", "Applications", "Hires", "Conversion Rate"},
		widths:  []float64{22, 14, 10, 16},
	}
	for _, s := range r.Efficiency.SourceEffectiveness {
		sources.rows = append(sources.rows, []any{s.Source, s.Applications, s.Hires, s.ConversionRate})
	}

	recruiters := table{
		sheet:   SheetRecruiters,
		headers: []string{"Recruiter", "Active Jobs", "Applications", "Interviews", "Hires", "Avg Time to Hire"},
		widths:  []float64{24, 12, 14, 12, 10, 16},
	}
	for _, rec := range r.Efficiency.RecruiterPerformance {
		recruiters.rows = append(recruiters.rows, []any{rec.RecruiterName, rec.ActiveJobs, rec.TotalApplications, rec.Interviews, rec.Hires, rec.AverageTimeToHire})
	}

	jobs := table{
		sheet:   SheetJobs,
		headers: []string{"Job", "Status", "Applications", "Views", "Application Rate", "Time to Fill"},
		widths:  []float64{32, 10, 14, 10, 16, 14},
	}
	for _, j := range r.Efficiency.JobPerformance {
		jobs.rows = append(jobs.rows, []any{j.JobTitle, string(j.Status), j.Applications, j.Views, j.ApplicationRate, j.TimeToFill})
	}

	series := table{
		sheet:   SheetTimeSeries,
		headers: []string{"Date", "Applications", "Interviews", "Hires"},
		widths:  []float64{14, 14, 12, 10},
	}
	for _, p := range r.TimeSeries {
		series.rows = append(series.rows, []any{p.Date, p.Applications, p.Interviews, p.Hires})
	}

	return []table{summary, funnel, departments, sources, recruiters, jobs, series}
}

func writeTable(f *excelize.File, t table) error {
	if err := f.SetSheetRow(t.sheet, "A1", &t.headers); err != nil {
		return fmt.Errorf("write %s header: %w", t.sheet, err)
	}
	for i, row := range t.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(t.sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", t.sheet, i+2, err)
		}
	}
	for i, w := range t.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		_ = f.SetColWidth(t.sheet, col, col, w)
	}
	return nil
}
