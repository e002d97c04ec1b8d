package hiring

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/hireflow/internal/query"
	"github.com/jonathan/hireflow/internal/stats"
	"github.com/jonathan/hireflow/internal/types"
)

// ListInterviews returns the interviews matching filters, earliest first.
func (s *Service) ListInterviews(ctx context.Context, filters types.InterviewFilters) ([]types.Interview, error) {
	ivs, err := s.repos.Interviews.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return query.Interviews(ivs, filters), nil
}

// GetInterview returns the interview with id, or nil when there is none.
func (s *Service) GetInterview(ctx context.Context, id string) (*types.Interview, error) {
	iv, err := s.repos.Interviews.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return iv, nil
}

// GetInterviewStats summarizes every stored interview.
func (s *Service) GetInterviewStats(ctx context.Context) (types.InterviewStats, error) {
	ivs, err := s.repos.Interviews.List(ctx)
	if err != nil {
		return types.InterviewStats{}, fmt.Errorf("failed to list interviews: %w", err)
	}
	return stats.Interviews(ivs, s.clock()), nil
}

// CreateInterview schedules a new interview. The status defaults to scheduled.
func (s *Service) CreateInterview(ctx context.Context, in types.InterviewInput) (*types.Interview, error) {
	if err := in.Validate(); err != nil {
		return nil, asValidation(err)
	}

	now := s.clock()
	iv := types.Interview{
		ID:               s.newID(),
		ApplicationID:    in.ApplicationID,
		JobID:            in.JobID,
		JobTitle:         in.JobTitle,
		CandidateID:      in.CandidateID,
		CandidateName:    in.CandidateName,
		CandidateEmail:   in.CandidateEmail,
		InterviewerID:    in.InterviewerID,
		InterviewerName:  in.InterviewerName,
		InterviewerEmail: in.InterviewerEmail,
		Type:             in.Type,
		Status:           in.Status,
		ScheduledAt:      in.ScheduledAt.UTC(),
		Duration:         in.Duration,
		Location:         in.Location,
		MeetingLink:      in.MeetingLink,
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if iv.Status == "" {
		iv.Status = types.InterviewScheduled
	}

	if err := s.repos.Interviews.Create(ctx, iv); err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return &iv, nil
}

// UpdateInterview applies patch to the interview with id. It returns nil when the interview
// does not exist.
func (s *Service) UpdateInterview(ctx context.Context, id string, patch types.InterviewPatch) (*types.Interview, error) {
	if err := patch.Validate(); err != nil {
		return nil, asValidation(err)
	}

	iv, err := s.repos.Interviews.Update(ctx, id, func(iv *types.Interview) error {
		patch.Apply(iv)
		iv.ScheduledAt = iv.ScheduledAt.UTC()
		iv.UpdatedAt = s.clock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update interview: %w", err)
	}
	return iv, nil
}

// DeleteInterview removes the interview with id and reports whether it existed.
func (s *Service) DeleteInterview(ctx context.Context, id string) (bool, error) {
	ok, err := s.repos.Interviews.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete interview: %w", err)
	}
	return ok, nil
}

// SubmitInterviewFeedback attaches feedback to the interview with id and marks it completed.
// An interview takes feedback once. It returns nil when the interview does not exist.
func (s *Service) SubmitInterviewFeedback(ctx context.Context, id string, in types.FeedbackInput) (*types.Interview, error) {
	if err := in.Validate(); err != nil {
		return nil, asValidation(err)
	}

	iv, err := s.repos.Interviews.Update(ctx, id, func(iv *types.Interview) error {
		if iv.Feedback != nil {
			return &ErrFeedbackExists{InterviewID: iv.ID}
		}
		now := s.clock()
		iv.Feedback = &types.InterviewFeedback{
			ID:              s.newID(),
			InterviewID:     iv.ID,
			OverallRating:   in.OverallRating,
			TechnicalSkills: in.TechnicalSkills,
			Communication:   in.Communication,
			CulturalFit:     in.CulturalFit,
			Experience:      in.Experience,
			Strengths:       nonNil(in.Strengths),
			Weaknesses:      nonNil(in.Weaknesses),
			Comments:        in.Comments,
			Recommendation:  in.Recommendation,
			CreatedAt:       now,
		}
		iv.Status = types.InterviewCompleted
		iv.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit interview feedback: %w", err)
	}
	return iv, nil
}

// AvailableSlots returns the open slots of an interviewer on the calendar day of date.
func (s *Service) AvailableSlots(ctx context.Context, interviewerID string, date time.Time) ([]types.InterviewSlot, error) {
	slots, err := s.repos.Slots.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interview slots: %w", err)
	}
	return query.Slots(slots, interviewerID, date), nil
}

// CreateSlot publishes an available slot for an interviewer.
func (s *Service) CreateSlot(ctx context.Context, in types.SlotInput) (*types.InterviewSlot, error) {
	if err := in.Validate(); err != nil {
		return nil, asValidation(err)
	}

	slot := types.InterviewSlot{
		ID:            s.newID(),
		InterviewerID: in.InterviewerID,
		Date:          in.Date.UTC(),
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		IsAvailable:   true,
		Duration:      in.Duration,
	}
	if err := s.repos.Slots.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to create interview slot: %w", err)
	}
	return &slot, nil
}
