package analytics

import (
	"github.com/jonathan/hireflow/internal/stats"
	"github.com/jonathan/hireflow/internal/types"
)

// HiringMetrics builds the headline report for ds.
func HiringMetrics(ds Dataset) types.HiringMetrics {
	active := 0
	for _, job := range ds.Jobs {
		if job.Status == types.JobStatusActive {
			active++
		}
	}

	return types.HiringMetrics{
		TotalJobs:            len(ds.Jobs),
		ActiveJobs:           active,
		TotalApplications:    len(ds.Applications),
		TotalInterviews:      len(ds.Interviews),
		HireRate:             stats.Ratio(countHired(ds.Applications), len(ds.Applications)),
		AverageTimeToHire:    averageTimeToHire(ds.Applications),
		TopSkills:            TopSkills(ds.Jobs, TopSkillsLimit),
		ApplicationsByStatus: ApplicationsByStatus(ds.Applications),
		InterviewsByType:     InterviewsByType(ds.Interviews),
		HiringFunnel:         Funnel(ds.Applications),
	}
}

// Report bundles every analytics view of one dataset.
type Report struct {
	Metrics     types.HiringMetrics         `json:"metrics"`
	TimeSeries  []types.TimeSeriesPoint     `json:"time_series"`
	Departments []types.DepartmentMetrics   `json:"departments"`
	Efficiency  types.RecruitmentEfficiency `json:"efficiency"`
}

// Build computes the full Report for ds. names maps recruiter ids to display names.
func Build(ds Dataset, names map[string]string) Report {
	return Report{
		Metrics:     HiringMetrics(ds),
		TimeSeries:  TimeSeries(ds),
		Departments: Departments(ds),
		Efficiency:  Efficiency(ds, names),
	}
}
