package hiring

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/hireflow/internal/query"
	"github.com/jonathan/hireflow/internal/stats"
	"github.com/jonathan/hireflow/internal/types"
)

// ListApplications returns the applications matching filters, most recent first, with
// their notes attached.
func (s *Service) ListApplications(ctx context.Context, filters types.ApplicationFilters) ([]types.Application, error) {
	apps, err := s.repos.Applications.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	result := query.Applications(apps, filters)

	notes, err := s.repos.Notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list application notes: %w", err)
	}
	for i := range result {
		result[i].Notes = query.Notes(notes, result[i].ID)
	}
	return result, nil
}

// GetApplication returns the application with id and its notes, or nil when there is none.
func (s *Service) GetApplication(ctx context.Context, id string) (*types.Application, error) {
	app, err := s.repos.Applications.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if app == nil {
		return nil, nil
	}
	notes, err := s.ListApplicationNotes(ctx, id)
	if err != nil {
		return nil, err
	}
	app.Notes = notes
	return app, nil
}

// CreateApplication stores a new application in the applied status and bumps the
// application counter of its job when the job exists.
func (s *Service) CreateApplication(ctx context.Context, in types.ApplicationInput) (*types.Application, error) {
	if err := in.Validate(); err != nil {
		return nil, asValidation(err)
	}

	job, err := s.repos.Jobs.Get(ctx, in.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	now := s.clock()
	app := types.Application{
		ID:             s.newID(),
		JobID:          in.JobID,
		JobTitle:       in.JobTitle,
		Company:        in.Company,
		CandidateID:    in.CandidateID,
		CandidateName:  in.CandidateName,
		CandidateEmail: in.CandidateEmail,
		CandidatePhone: in.CandidatePhone,
		ResumeURL:      in.ResumeURL,
		CoverLetter:    in.CoverLetter,
		Status:         types.StatusApplied,
		AppliedAt:      now,
		LastUpdated:    now,
		Notes:          []types.ApplicationNote{},
		Tags:           nonNil(in.Tags),
		Source:         in.Source,
	}
	if job != nil {
		if app.JobTitle == "" {
			app.JobTitle = job.Title
		}
		if app.Company == "" {
			app.Company = job.Company
		}
	}

	if err := s.repos.Applications.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	if job != nil {
		_, err := s.repos.Jobs.Update(ctx, job.ID, func(job *types.Job) error {
			job.ApplicationsCount++
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to count application: %w", err)
		}
	}
	return &app, nil
}

// GetApplicationStats summarizes every stored application.
func (s *Service) GetApplicationStats(ctx context.Context) (types.ApplicationStats, error) {
	apps, err := s.repos.Applications.List(ctx)
	if err != nil {
		return types.ApplicationStats{}, fmt.Errorf("failed to list applications: %w", err)
	}
	return stats.Applications(apps, s.clock()), nil
}

// UpdateApplicationStatus moves the application with id to status. It returns nil when the
// application does not exist.
func (s *Service) UpdateApplicationStatus(ctx context.Context, id string, status types.ApplicationStatus) (*types.Application, error) {
	if !status.Valid() {
		return nil, &ErrValidation{Field: "status", Message: fmt.Sprintf("unknown value %q", status)}
	}

	app, err := s.repos.Applications.Update(ctx, id, func(app *types.Application) error {
		if err := s.checkTransition(app.Status, status); err != nil {
			return err
		}
		app.Status = status
		app.LastUpdated = s.clock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return app, nil
}

// UpdateApplicationRating sets the 1..5 rating of the application with id. It returns nil
// when the application does not exist.
func (s *Service) UpdateApplicationRating(ctx context.Context, id string, rating int) (*types.Application, error) {
	if err := types.CheckRating("rating", rating); err != nil {
		return nil, asValidation(err)
	}

	app, err := s.repos.Applications.Update(ctx, id, func(app *types.Application) error {
		app.Rating = &rating
		app.LastUpdated = s.clock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update application rating: %w", err)
	}
	return app, nil
}

// BulkUpdateApplications applies patch to every listed application and returns the updated
// records in the order of ids. Unknown ids are skipped, as are status changes refused by
// strict transitions.
func (s *Service) BulkUpdateApplications(ctx context.Context, ids []string, patch types.ApplicationPatch) ([]types.Application, error) {
	if err := patch.Validate(); err != nil {
		return nil, asValidation(err)
	}

	updated := []types.Application{}
	for _, id := range ids {
		app, err := s.repos.Applications.Update(ctx, id, func(app *types.Application) error {
			if patch.Status != nil {
				if err := s.checkTransition(app.Status, *patch.Status); err != nil {
					return errSkip
				}
				app.Status = *patch.Status
			}
			if patch.Rating != nil {
				rating := *patch.Rating
				app.Rating = &rating
			}
			if patch.Tags != nil {
				app.Tags = patch.Tags
			}
			app.LastUpdated = s.clock()
			return nil
		})
		if errors.Is(err, errSkip) {
			log.WithField("application_id", id).Debug("[hiring] bulk update skipped a refused status change")
			continue
		}
		if err != nil {
			return updated, fmt.Errorf("failed to update application %s: %w", id, err)
		}
		if app != nil {
			updated = append(updated, *app)
		}
	}
	return updated, nil
}

// AddApplicationNote attaches a note to the application with id. It returns nil when the
// application does not exist.
func (s *Service) AddApplicationNote(ctx context.Context, applicationID string, in types.NoteInput) (*types.ApplicationNote, error) {
	if err := in.Validate(); err != nil {
		return nil, asValidation(err)
	}

	now := s.clock()
	app, err := s.repos.Applications.Update(ctx, applicationID, func(app *types.Application) error {
		app.LastUpdated = now
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to touch application: %w", err)
	}
	if app == nil {
		return nil, nil
	}

	note := types.ApplicationNote{
		ID:            s.newID(),
		ApplicationID: applicationID,
		AuthorID:      in.AuthorID,
		AuthorName:    in.AuthorName,
		Content:       in.Content,
		IsPrivate:     in.IsPrivate,
		CreatedAt:     now,
	}
	if err := s.repos.Notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create application note: %w", err)
	}
	return &note, nil
}

// ListApplicationNotes returns the notes of an application, newest first.
func (s *Service) ListApplicationNotes(ctx context.Context, applicationID string) ([]types.ApplicationNote, error) {
	notes, err := s.repos.Notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list application notes: %w", err)
	}
	return query.Notes(notes, applicationID), nil
}
