package analytics

import (
	"sort"

	"github.com/jonathan/hireflow/internal/stats"
	"github.com/jonathan/hireflow/internal/types"
)

// UnknownSource labels applications that did not record a source.
const UnknownSource = "Unknown"

// Efficiency builds the source, recruiter and job performance reports.
// names maps recruiter ids to display names; unknown ids are shown as-is.
func Efficiency(ds Dataset, names map[string]string) types.RecruitmentEfficiency {
	return types.RecruitmentEfficiency{
		SourceEffectiveness:  Sources(ds.Applications),
		RecruiterPerformance: Recruiters(ds, names),
		JobPerformance:       JobPerformance(ds),
	}
}

// Sources rolls up applications per source, busiest source first.
func Sources(apps []types.Application) []types.SourceMetric {
	rows := make(map[string]*types.SourceMetric)
	for _, app := range apps {
		source := app.Source
		if source == "" {
			source = UnknownSource
		}
		r, ok := rows[source]
		if !ok {
			r = &types.SourceMetric{Source: source}
			rows[source] = r
		}
		r.Applications++
		if app.Status == types.StatusHired {
			r.Hires++
		}
	}

	out := make([]types.SourceMetric, 0, len(rows))
	for _, r := range rows {
		r.ConversionRate = stats.Ratio(r.Hires, r.Applications)
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Applications != out[j].Applications {
			return out[i].Applications > out[j].Applications
		}
		return out[i].Source < out[j].Source
	})
	return out
}

// Recruiters rolls up jobs, applications, interviews and hires per job poster, sorted by id.
// A recruiter appears when they have a counted job, an application or an interview.
func Recruiters(ds Dataset, names map[string]string) []types.RecruiterMetric {
	recruiterOfJob := make(map[string]string, len(ds.postings()))
	rows := make(map[string]*types.RecruiterMetric)
	apps := make(map[string][]types.Application)

	row := func(id string) *types.RecruiterMetric {
		r, ok := rows[id]
		if !ok {
			name := names[id]
			if name == "" {
				name = id
			}
			r = &types.RecruiterMetric{RecruiterID: id, RecruiterName: name}
			rows[id] = r
		}
		return r
	}

	for _, job := range ds.postings() {
		recruiterOfJob[job.ID] = job.PostedBy
	}
	for _, job := range ds.Jobs {
		r := row(job.PostedBy)
		if job.Status == types.JobStatusActive {
			r.ActiveJobs++
		}
	}
	for _, app := range ds.Applications {
		if id, ok := recruiterOfJob[app.JobID]; ok {
			row(id)
			apps[id] = append(apps[id], app)
		}
	}
	for _, iv := range ds.Interviews {
		if id, ok := recruiterOfJob[iv.JobID]; ok {
			row(id).Interviews++
		}
	}

	out := make([]types.RecruiterMetric, 0, len(rows))
	for id, r := range rows {
		r.TotalApplications = len(apps[id])
		r.Hires = countHired(apps[id])
		r.AverageTimeToHire = averageTimeToHire(apps[id])
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecruiterID < out[j].RecruiterID })
	return out
}

// JobPerformance reports applications, views and time to fill per job, in job order.
// Jobs posted outside the date range are listed only when they received applications in it.
func JobPerformance(ds Dataset) []types.JobPerformanceMetric {
	appsByJob := make(map[string][]types.Application)
	for _, app := range ds.Applications {
		appsByJob[app.JobID] = append(appsByJob[app.JobID], app)
	}
	counted := make(map[string]bool, len(ds.Jobs))
	for _, job := range ds.Jobs {
		counted[job.ID] = true
	}

	out := make([]types.JobPerformanceMetric, 0, len(ds.Jobs))
	for _, job := range ds.postings() {
		apps := appsByJob[job.ID]
		if !counted[job.ID] && len(apps) == 0 {
			continue
		}
		out = append(out, types.JobPerformanceMetric{
			JobID:           job.ID,
			JobTitle:        job.Title,
			Applications:    len(apps),
			Views:           job.ViewsCount,
			ApplicationRate: stats.Ratio(len(apps), job.ViewsCount),
			TimeToFill:      timeToFill(job, apps),
			Status:          job.Status,
		})
	}
	return out
}

// timeToFill is the days from posting to the earliest recorded hire, 0 when nobody was hired.
func timeToFill(job types.Job, apps []types.Application) float64 {
	var first *types.Application
	for i := range apps {
		if apps[i].Status != types.StatusHired {
			continue
		}
		if first == nil || apps[i].LastUpdated.Before(first.LastUpdated) {
			first = &apps[i]
		}
	}
	if first == nil {
		return 0
	}
	return first.LastUpdated.Sub(job.PostedAt).Hours() / 24
}
