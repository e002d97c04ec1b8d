// Package analytics composes cross-entity hiring reports from jobs, applications and interviews.
// All functions are pure; callers load the collections and pass them in as a Dataset.
package analytics

import (
	"strings"
	"time"

	"github.com/jonathan/hireflow/internal/types"
)

// UnassignedDepartment labels jobs without a department.
const UnassignedDepartment = "Unassigned"

// Dataset is the slice of the store a report is computed over.
//
// Jobs holds the postings counted in job totals. Postings holds every job that passed the
// job-level criteria whatever its posting date; applications and interviews are attributed
// to departments, recruiters and jobs through it. A nil Postings falls back to Jobs.
type Dataset struct {
	Jobs         []types.Job
	Postings     []types.Job
	Applications []types.Application
	Interviews   []types.Interview
}

func (ds Dataset) postings() []types.Job {
	if ds.Postings != nil {
		return ds.Postings
	}
	return ds.Jobs
}

// Filter narrows ds to the records selected by f.
//
// Job-level criteria (department, recruiter, job type, experience level) also restrict
// applications and interviews to the surviving jobs. The date range applies to each
// collection's own reference date: posted_at, applied_at and scheduled_at. Postings keeps
// the jobs outside the date range so in-range applications to older postings still roll
// up to their department and recruiter.
func Filter(ds Dataset, f types.AnalyticsFilters) Dataset {
	jobLevel := f.Department != "" || f.RecruiterID != "" || f.JobType != "" || f.ExperienceLevel != ""

	kept := make(map[string]bool, len(ds.Jobs))
	out := Dataset{
		Jobs:         make([]types.Job, 0, len(ds.Jobs)),
		Postings:     make([]types.Job, 0, len(ds.Jobs)),
		Applications: make([]types.Application, 0, len(ds.Applications)),
		Interviews:   make([]types.Interview, 0, len(ds.Interviews)),
	}

	for _, job := range ds.Jobs {
		if !matchJob(job, f) {
			continue
		}
		kept[job.ID] = true
		out.Postings = append(out.Postings, job)
		if within(job.PostedAt, f) {
			out.Jobs = append(out.Jobs, job)
		}
	}
	for _, app := range ds.Applications {
		if jobLevel && !kept[app.JobID] {
			continue
		}
		if within(app.AppliedAt, f) {
			out.Applications = append(out.Applications, app)
		}
	}
	for _, iv := range ds.Interviews {
		if jobLevel && !kept[iv.JobID] {
			continue
		}
		if within(iv.ScheduledAt, f) {
			out.Interviews = append(out.Interviews, iv)
		}
	}
	return out
}

func matchJob(job types.Job, f types.AnalyticsFilters) bool {
	if f.Department != "" && !strings.EqualFold(departmentOf(job), f.Department) {
		return false
	}
	if f.RecruiterID != "" && job.PostedBy != f.RecruiterID {
		return false
	}
	if f.JobType != "" && job.JobType != f.JobType {
		return false
	}
	if f.ExperienceLevel != "" && job.ExperienceLevel != f.ExperienceLevel {
		return false
	}
	return true
}

func within(t time.Time, f types.AnalyticsFilters) bool {
	if f.DateFrom != nil && t.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && t.After(*f.DateTo) {
		return false
	}
	return true
}

func departmentOf(job types.Job) string {
	if job.Department == "" {
		return UnassignedDepartment
	}
	return job.Department
}

// daysToHire is the number of days between applying and the hire being recorded.
func daysToHire(app types.Application) float64 {
	return app.LastUpdated.Sub(app.AppliedAt).Hours() / 24
}

// averageTimeToHire averages daysToHire over the hired applications in apps.
func averageTimeToHire(apps []types.Application) float64 {
	var total float64
	hired := 0
	for _, app := range apps {
		if app.Status == types.StatusHired {
			total += daysToHire(app)
			hired++
		}
	}
	if hired == 0 {
		return 0
	}
	return total / float64(hired)
}

func countHired(apps []types.Application) int {
	n := 0
	for _, app := range apps {
		if app.Status == types.StatusHired {
			n++
		}
	}
	return n
}
