package types

import "time"

// HiringMetrics is the headline dashboard report.
type HiringMetrics struct {
	TotalJobs            int            `json:"total_jobs"`
	ActiveJobs           int            `json:"active_jobs"`
	TotalApplications    int            `json:"total_applications"`
	TotalInterviews      int            `json:"total_interviews"`
	HireRate             float64        `json:"hire_rate"`
	AverageTimeToHire    float64        `json:"average_time_to_hire"`
	TopSkills            []SkillMetric  `json:"top_skills"`
	ApplicationsByStatus []LabelMetric  `json:"applications_by_status"`
	InterviewsByType     []LabelMetric  `json:"interviews_by_type"`
	HiringFunnel         []FunnelMetric `json:"hiring_funnel"`
}

// SkillMetric is how often a skill is requested across jobs.
type SkillMetric struct {
	Skill      string  `json:"skill"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// LabelMetric is one row of a labelled breakdown such as applications by status.
type LabelMetric struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// FunnelMetric is one stage of the hiring funnel.
type FunnelMetric struct {
	Stage          string  `json:"stage"`
	Count          int     `json:"count"`
	Percentage     float64 `json:"percentage"`
	ConversionRate float64 `json:"conversion_rate"`
}

// TimeSeriesPoint holds event counts for one calendar day (YYYY-MM-DD, UTC).
type TimeSeriesPoint struct {
	Date         string `json:"date"`
	Applications int    `json:"applications"`
	Interviews   int    `json:"interviews"`
	Hires        int    `json:"hires"`
}

// DepartmentMetrics is the hiring rollup for one department.
type DepartmentMetrics struct {
	Department        string  `json:"department"`
	OpenPositions     int     `json:"open_positions"`
	TotalApplications int     `json:"total_applications"`
	AverageTimeToHire float64 `json:"average_time_to_hire"`
	HireRate          float64 `json:"hire_rate"`
}

// RecruitmentEfficiency groups the source, recruiter and job performance reports.
type RecruitmentEfficiency struct {
	SourceEffectiveness  []SourceMetric         `json:"source_effectiveness"`
	RecruiterPerformance []RecruiterMetric      `json:"recruiter_performance"`
	JobPerformance       []JobPerformanceMetric `json:"job_performance"`
}

// SourceMetric rolls up applications by where they came from.
type SourceMetric struct {
	Source         string  `json:"source"`
	Applications   int     `json:"applications"`
	Hires          int     `json:"hires"`
	ConversionRate float64 `json:"conversion_rate"`
}

// RecruiterMetric rolls up the jobs posted by one recruiter.
type RecruiterMetric struct {
	RecruiterID       string  `json:"recruiter_id"`
	RecruiterName     string  `json:"recruiter_name"`
	ActiveJobs        int     `json:"active_jobs"`
	TotalApplications int     `json:"total_applications"`
	Interviews        int     `json:"interviews"`
	Hires             int     `json:"hires"`
	AverageTimeToHire float64 `json:"average_time_to_hire"`
}

// JobPerformanceMetric reports how one posting is doing.
type JobPerformanceMetric struct {
	JobID           string    `json:"job_id"`
	JobTitle        string    `json:"job_title"`
	Applications    int       `json:"applications"`
	Views           int       `json:"views"`
	ApplicationRate float64   `json:"application_rate"`
	TimeToFill      float64   `json:"time_to_fill"`
	Status          JobStatus `json:"status"`
}

// AnalyticsFilters narrows the data an analytics report is computed over.
type AnalyticsFilters struct {
	DateFrom        *time.Time      `json:"date_from,omitempty"`
	DateTo          *time.Time      `json:"date_to,omitempty"`
	Department      string          `json:"department,omitempty"`
	RecruiterID     string          `json:"recruiter_id,omitempty"`
	JobType         JobType         `json:"job_type,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty"`
}
