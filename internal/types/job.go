// Package types provides the domain records, filter criteria and report structures shared by the hireflow packages.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// JobStatus is the lifecycle state of a job posting.
type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"
)

// JobStatuses lists every job status in lifecycle order.
var JobStatuses = []JobStatus{JobStatusDraft, JobStatusActive, JobStatusPaused, JobStatusClosed}

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool { return contains(JobStatuses, s) }

// WorkLocation describes where the work happens.
type WorkLocation string

const (
	WorkLocationRemote WorkLocation = "remote"
	WorkLocationHybrid WorkLocation = "hybrid"
	WorkLocationOnSite WorkLocation = "on-site"
)

// WorkLocations lists every work location.
var WorkLocations = []WorkLocation{WorkLocationRemote, WorkLocationHybrid, WorkLocationOnSite}

// Valid reports whether w is a known work location.
func (w WorkLocation) Valid() bool { return contains(WorkLocations, w) }

// JobType is the employment type of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// JobTypes lists every job type.
var JobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship}

// Valid reports whether t is a known job type.
func (t JobType) Valid() bool { return contains(JobTypes, t) }

// ExperienceLevel is the seniority a posting targets.
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

// ExperienceLevels lists every experience level.
var ExperienceLevels = []ExperienceLevel{ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive}

// Valid reports whether l is a known experience level.
func (l ExperienceLevel) Valid() bool { return contains(ExperienceLevels, l) }

// Job is a posted position.
type Job struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Requirements      []string        `json:"requirements"`
	Responsibilities  []string        `json:"responsibilities"`
	Company           string          `json:"company"`
	Department        string          `json:"department,omitempty"`
	Location          string          `json:"location"`
	WorkLocation      WorkLocation    `json:"work_location"`
	JobType           JobType         `json:"job_type"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	SalaryMin         *int            `json:"salary_min,omitempty"`
	SalaryMax         *int            `json:"salary_max,omitempty"`
	Currency          string          `json:"currency"`
	Skills            []string        `json:"skills"`
	Benefits          []string        `json:"benefits"`
	Status            JobStatus       `json:"status"`
	PostedBy          string          `json:"posted_by"`
	PostedAt          time.Time       `json:"posted_at"`
	ExpiresAt         *time.Time      `json:"expires_at,omitempty"`
	ApplicationsCount int             `json:"applications_count"`
	ViewsCount        int             `json:"views_count"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// GetID returns the job identifier.
func (j Job) GetID() string { return j.ID }

// JobFilters holds the optional job search criteria. Zero values impose no constraint.
type JobFilters struct {
	Search          string          `json:"search,omitempty"`
	Location        string          `json:"location,omitempty"`
	WorkLocation    WorkLocation    `json:"work_location,omitempty"`
	JobType         JobType         `json:"job_type,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty"`
	SalaryMin       *int            `json:"salary_min,omitempty"`
	SalaryMax       *int            `json:"salary_max,omitempty"`
	Skills          []string        `json:"skills,omitempty"`
	Status          JobStatus       `json:"status,omitempty"`
}

// JobInput is the payload for creating a job posting.
type JobInput struct {
	Title            string          `json:"title" validate:"required"`
	Description      string          `json:"description" validate:"required"`
	Requirements     []string        `json:"requirements"`
	Responsibilities []string        `json:"responsibilities"`
	Company          string          `json:"company" validate:"required"`
	Department       string          `json:"department,omitempty"`
	Location         string          `json:"location" validate:"required"`
	WorkLocation     WorkLocation    `json:"work_location" validate:"required,oneof=remote hybrid on-site"`
	JobType          JobType         `json:"job_type" validate:"required,oneof=full-time part-time contract internship"`
	ExperienceLevel  ExperienceLevel `json:"experience_level" validate:"required,oneof=entry mid senior executive"`
	SalaryMin        *int            `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax        *int            `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
	Currency         string          `json:"currency"`
	Skills           []string        `json:"skills"`
	Benefits         []string        `json:"benefits"`
	Status           JobStatus       `json:"status" validate:"omitempty,oneof=draft active paused closed"`
	PostedBy         string          `json:"posted_by" validate:"required"`
	ExpiresAt        *time.Time      `json:"expires_at,omitempty"`
}

// Validate validates the JobInput using the validator and checks the salary range.
func (in *JobInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return err
	}
	return checkSalaryRange(in.SalaryMin, in.SalaryMax)
}

// JobPatch is a partial job update. Nil fields are left untouched.
type JobPatch struct {
	Title            *string          `json:"title,omitempty"`
	Description      *string          `json:"description,omitempty"`
	Requirements     []string         `json:"requirements,omitempty"`
	Responsibilities []string         `json:"responsibilities,omitempty"`
	Company          *string          `json:"company,omitempty"`
	Department       *string          `json:"department,omitempty"`
	Location         *string          `json:"location,omitempty"`
	WorkLocation     *WorkLocation    `json:"work_location,omitempty"`
	JobType          *JobType         `json:"job_type,omitempty"`
	ExperienceLevel  *ExperienceLevel `json:"experience_level,omitempty"`
	SalaryMin        *int             `json:"salary_min,omitempty"`
	SalaryMax        *int             `json:"salary_max,omitempty"`
	Currency         *string          `json:"currency,omitempty"`
	Skills           []string         `json:"skills,omitempty"`
	Benefits         []string         `json:"benefits,omitempty"`
	Status           *JobStatus       `json:"status,omitempty"`
	ExpiresAt        *time.Time       `json:"expires_at,omitempty"`
}

// Validate checks the enum fields present in the patch.
func (p *JobPatch) Validate() error {
	if p.WorkLocation != nil && !p.WorkLocation.Valid() {
		return &ErrInvalidEnum{Field: "work_location", Value: string(*p.WorkLocation)}
	}
	if p.JobType != nil && !p.JobType.Valid() {
		return &ErrInvalidEnum{Field: "job_type", Value: string(*p.JobType)}
	}
	if p.ExperienceLevel != nil && !p.ExperienceLevel.Valid() {
		return &ErrInvalidEnum{Field: "experience_level", Value: string(*p.ExperienceLevel)}
	}
	if p.Status != nil && !p.Status.Valid() {
		return &ErrInvalidEnum{Field: "status", Value: string(*p.Status)}
	}
	return nil
}

// Apply copies the present patch fields onto job.
func (p *JobPatch) Apply(job *Job) {
	if p.Title != nil {
		job.Title = *p.Title
	}
	if p.Description != nil {
		job.Description = *p.Description
	}
	if p.Requirements != nil {
		job.Requirements = p.Requirements
	}
	if p.Responsibilities != nil {
		job.Responsibilities = p.Responsibilities
	}
	if p.Company != nil {
		job.Company = *p.Company
	}
	if p.Department != nil {
		job.Department = *p.Department
	}
	if p.Location != nil {
		job.Location = *p.Location
	}
	if p.WorkLocation != nil {
		job.WorkLocation = *p.WorkLocation
	}
	if p.JobType != nil {
		job.JobType = *p.JobType
	}
	if p.ExperienceLevel != nil {
		job.ExperienceLevel = *p.ExperienceLevel
	}
	if p.SalaryMin != nil {
		job.SalaryMin = p.SalaryMin
	}
	if p.SalaryMax != nil {
		job.SalaryMax = p.SalaryMax
	}
	if p.Currency != nil {
		job.Currency = *p.Currency
	}
	if p.Skills != nil {
		job.Skills = p.Skills
	}
	if p.Benefits != nil {
		job.Benefits = p.Benefits
	}
	if p.Status != nil {
		job.Status = *p.Status
	}
	if p.ExpiresAt != nil {
		job.ExpiresAt = p.ExpiresAt
	}
}
