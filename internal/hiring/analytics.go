package hiring

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/hireflow/internal/analytics"
	"github.com/jonathan/hireflow/internal/types"
)

// loadDataset fetches jobs, applications and interviews concurrently and narrows them to
// filters.
func (s *Service) loadDataset(ctx context.Context, filters types.AnalyticsFilters) (analytics.Dataset, error) {
	var ds analytics.Dataset

	// each goroutine writes a distinct field
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobs, err := s.repos.Jobs.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list jobs: %w", err)
		}
		ds.Jobs = jobs
		return nil
	})
	g.Go(func() error {
		apps, err := s.repos.Applications.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list applications: %w", err)
		}
		ds.Applications = apps
		return nil
	})
	g.Go(func() error {
		ivs, err := s.repos.Interviews.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list interviews: %w", err)
		}
		ds.Interviews = ivs
		return nil
	})
	if err := g.Wait(); err != nil {
		return analytics.Dataset{}, err
	}

	return analytics.Filter(ds, filters), nil
}

// recruiterNames maps user ids to display names for the recruiter report.
func (s *Service) recruiterNames(ctx context.Context) (map[string]string, error) {
	users, err := s.repos.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

// GetHiringMetrics returns the headline hiring report.
func (s *Service) GetHiringMetrics(ctx context.Context, filters types.AnalyticsFilters) (types.HiringMetrics, error) {
	ds, err := s.loadDataset(ctx, filters)
	if err != nil {
		return types.HiringMetrics{}, err
	}
	return analytics.HiringMetrics(ds), nil
}

// GetTimeSeriesData returns daily application, interview and hire counts.
func (s *Service) GetTimeSeriesData(ctx context.Context, filters types.AnalyticsFilters) ([]types.TimeSeriesPoint, error) {
	ds, err := s.loadDataset(ctx, filters)
	if err != nil {
		return nil, err
	}
	return analytics.TimeSeries(ds), nil
}

// GetDepartmentMetrics returns one row per department.
func (s *Service) GetDepartmentMetrics(ctx context.Context, filters types.AnalyticsFilters) ([]types.DepartmentMetrics, error) {
	ds, err := s.loadDataset(ctx, filters)
	if err != nil {
		return nil, err
	}
	return analytics.Departments(ds), nil
}

// GetRecruitmentEfficiency returns the source, recruiter and job performance reports.
func (s *Service) GetRecruitmentEfficiency(ctx context.Context, filters types.AnalyticsFilters) (types.RecruitmentEfficiency, error) {
	ds, err := s.loadDataset(ctx, filters)
	if err != nil {
		return types.RecruitmentEfficiency{}, err
	}
	names, err := s.recruiterNames(ctx)
	if err != nil {
		return types.RecruitmentEfficiency{}, err
	}
	return analytics.Efficiency(ds, names), nil
}

// GetAnalyticsReport returns every analytics view computed over one load of the store.
func (s *Service) GetAnalyticsReport(ctx context.Context, filters types.AnalyticsFilters) (analytics.Report, error) {
	ds, err := s.loadDataset(ctx, filters)
	if err != nil {
		return analytics.Report{}, err
	}
	names, err := s.recruiterNames(ctx)
	if err != nil {
		return analytics.Report{}, err
	}
	return analytics.Build(ds, names), nil
}
