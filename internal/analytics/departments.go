package analytics

import (
	"sort"

	"github.com/jonathan/hireflow/internal/stats"
	"github.com/jonathan/hireflow/internal/types"
)

// Departments returns one row per department label, sorted by name. A department appears
// when it has a counted job or an application.
func Departments(ds Dataset) []types.DepartmentMetrics {
	deptOfJob := make(map[string]string, len(ds.postings()))
	rows := make(map[string]*types.DepartmentMetrics)
	appsByDept := make(map[string][]types.Application)

	row := func(name string) *types.DepartmentMetrics {
		r, ok := rows[name]
		if !ok {
			r = &types.DepartmentMetrics{Department: name}
			rows[name] = r
		}
		return r
	}

	for _, job := range ds.postings() {
		deptOfJob[job.ID] = departmentOf(job)
	}
	for _, job := range ds.Jobs {
		r := row(departmentOf(job))
		if job.Status == types.JobStatusActive {
			r.OpenPositions++
		}
	}
	for _, app := range ds.Applications {
		name, ok := deptOfJob[app.JobID]
		if !ok {
			continue
		}
		row(name)
		appsByDept[name] = append(appsByDept[name], app)
	}

	out := make([]types.DepartmentMetrics, 0, len(rows))
	for name, r := range rows {
		apps := appsByDept[name]
		r.TotalApplications = len(apps)
		r.AverageTimeToHire = averageTimeToHire(apps)
		r.HireRate = stats.Ratio(countHired(apps), len(apps))
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out
}
