package hiring

import (
	"context"
	"fmt"

	"github.com/jonathan/hireflow/internal/query"
	"github.com/jonathan/hireflow/internal/types"
)

// GetProfile returns the profile owned by userID, or nil when there is none.
func (s *Service) GetProfile(ctx context.Context, userID string) (*types.CandidateProfile, error) {
	profiles, err := s.repos.Profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	for i := range profiles {
		if profiles[i].UserID == userID {
			return &profiles[i], nil
		}
	}
	return nil, nil
}

// CreateProfile stores a new profile. A user owns at most one profile.
func (s *Service) CreateProfile(ctx context.Context, in types.ProfileInput) (*types.CandidateProfile, error) {
	if err := in.Validate(); err != nil {
		return nil, asValidation(err)
	}

	existing, err := s.GetProfile(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ErrProfileExists{UserID: in.UserID}
	}

	now := s.clock()
	profile := types.CandidateProfile{
		ID:                s.newID(),
		UserID:            in.UserID,
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Email:             in.Email,
		Phone:             in.Phone,
		Location:          in.Location,
		Title:             in.Title,
		Summary:           in.Summary,
		Experience:        nonNil(in.Experience),
		Education:         nonNil(in.Education),
		Skills:            nonNil(in.Skills),
		Certifications:    nonNil(in.Certifications),
		Languages:         nonNil(in.Languages),
		PortfolioURL:      in.PortfolioURL,
		LinkedinURL:       in.LinkedinURL,
		GithubURL:         in.GithubURL,
		ResumeURL:         in.ResumeURL,
		ProfilePictureURL: in.ProfilePictureURL,
		IsPublic:          in.IsPublic,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repos.Profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile applies patch to the profile with id. It returns nil when the profile does
// not exist.
func (s *Service) UpdateProfile(ctx context.Context, id string, patch types.ProfilePatch) (*types.CandidateProfile, error) {
	if err := patch.Validate(); err != nil {
		return nil, asValidation(err)
	}

	profile, err := s.repos.Profiles.Update(ctx, id, func(p *types.CandidateProfile) error {
		patch.Apply(p)
		p.UpdatedAt = s.clock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// SearchProfiles returns the public profiles matching search and sharing a skill with
// skills, most recently updated first.
func (s *Service) SearchProfiles(ctx context.Context, search string, skills []string) ([]types.CandidateProfile, error) {
	profiles, err := s.repos.Profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return query.Profiles(profiles, search, skills), nil
}
