package hiring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/hireflow/internal/query"
	"github.com/jonathan/hireflow/internal/types"
)

const defaultCurrency = "USD"

// ListJobs returns the jobs matching filters, newest posting first.
func (s *Service) ListJobs(ctx context.Context, filters types.JobFilters) ([]types.Job, error) {
	jobs, err := s.repos.Jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return query.Jobs(jobs, filters), nil
}

// GetJob returns the job with id, or nil when there is none.
func (s *Service) GetJob(ctx context.Context, id string) (*types.Job, error) {
	job, err := s.repos.Jobs.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// CreateJob validates in and stores a new posting with zeroed counters.
func (s *Service) CreateJob(ctx context.Context, in types.JobInput) (*types.Job, error) {
	if err := in.Validate(); err != nil {
		return nil, asValidation(err)
	}

	now := s.clock()
	job := types.Job{
		ID:               s.newID(),
		Title:            in.Title,
		Description:      in.Description,
		Requirements:     nonNil(in.Requirements),
		Responsibilities: nonNil(in.Responsibilities),
		Company:          in.Company,
		Department:       in.Department,
		Location:         in.Location,
		WorkLocation:     in.WorkLocation,
		JobType:          in.JobType,
		ExperienceLevel:  in.ExperienceLevel,
		SalaryMin:        in.SalaryMin,
		SalaryMax:        in.SalaryMax,
		Currency:         in.Currency,
		Skills:           nonNil(in.Skills),
		Benefits:         nonNil(in.Benefits),
		Status:           in.Status,
		PostedBy:         in.PostedBy,
		PostedAt:         now,
		ExpiresAt:        utcPtr(in.ExpiresAt),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if job.Status == "" {
		job.Status = types.JobStatusDraft
	}
	if job.Currency == "" {
		job.Currency = defaultCurrency
	}

	if err := s.repos.Jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &job, nil
}

// UpdateJob applies patch to the job with id. It returns nil when the job does not exist.
// The salary range of the patched job must stay ordered.
func (s *Service) UpdateJob(ctx context.Context, id string, patch types.JobPatch) (*types.Job, error) {
	if err := patch.Validate(); err != nil {
		return nil, asValidation(err)
	}

	job, err := s.repos.Jobs.Update(ctx, id, func(job *types.Job) error {
		patch.Apply(job)
		job.ExpiresAt = utcPtr(job.ExpiresAt)
		if err := job.CheckSalaryRange(); err != nil {
			return asValidation(err)
		}
		job.UpdatedAt = s.clock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// DeleteJob removes the job with id and reports whether it existed.
func (s *Service) DeleteJob(ctx context.Context, id string) (bool, error) {
	ok, err := s.repos.Jobs.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}
	return ok, nil
}

// RecordJobView increments the view counter of the job with id.
func (s *Service) RecordJobView(ctx context.Context, id string) (*types.Job, error) {
	job, err := s.repos.Jobs.Update(ctx, id, func(job *types.Job) error {
		job.ViewsCount++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record job view: %w", err)
	}
	return job, nil
}

// CloseExpiredJobs closes every active job whose expiry is before now and returns the
// closed jobs.
func (s *Service) CloseExpiredJobs(ctx context.Context, now time.Time) ([]types.Job, error) {
	jobs, err := s.repos.Jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	closed := []types.Job{}
	for _, candidate := range jobs {
		if !expired(&candidate, now) {
			continue
		}
		job, err := s.repos.Jobs.Update(ctx, candidate.ID, func(job *types.Job) error {
			// the job may have changed since it was listed
			if !expired(job, now) {
				return errSkip
			}
			job.Status = types.JobStatusClosed
			job.UpdatedAt = s.clock()
			return nil
		})
		if errors.Is(err, errSkip) {
			continue
		}
		if err != nil {
			return closed, fmt.Errorf("failed to close job %s: %w", candidate.ID, err)
		}
		if job != nil {
			closed = append(closed, *job)
		}
	}
	return closed, nil
}

func expired(job *types.Job, now time.Time) bool {
	return job.Status == types.JobStatusActive && job.ExpiresAt != nil && job.ExpiresAt.Before(now)
}
