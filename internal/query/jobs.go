package query

import "github.com/jonathan/hireflow/internal/types"

// MatchJob reports whether job satisfies every criterion set in f.
func MatchJob(job *types.Job, f types.JobFilters) bool {
	if f.Search != "" && !anyContainsFold(f.Search, job.Title, job.Description, job.Company) {
		return false
	}
	if f.Location != "" && !containsFold(job.Location, f.Location) {
		return false
	}
	if f.WorkLocation != "" && job.WorkLocation != f.WorkLocation {
		return false
	}
	if f.JobType != "" && job.JobType != f.JobType {
		return false
	}
	if f.ExperienceLevel != "" && job.ExperienceLevel != f.ExperienceLevel {
		return false
	}
	if f.Status != "" && job.Status != f.Status {
		return false
	}
	if f.SalaryMin != nil && (job.SalaryMin == nil || *job.SalaryMin < *f.SalaryMin) {
		return false
	}
	if f.SalaryMax != nil && (job.SalaryMax == nil || *job.SalaryMax > *f.SalaryMax) {
		return false
	}
	if len(f.Skills) > 0 && !overlapsFold(job.Skills, f.Skills) {
		return false
	}
	return true
}

// Jobs returns the jobs matching f, newest posting first.
func Jobs(jobs []types.Job, f types.JobFilters) []types.Job {
	return selectSorted(jobs,
		func(j *types.Job) bool { return MatchJob(j, f) },
		func(a, b *types.Job) bool { return a.PostedAt.After(b.PostedAt) },
	)
}
