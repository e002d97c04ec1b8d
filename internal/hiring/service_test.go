package hiring

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hireflow/internal/store"
	"github.com/jonathan/hireflow/internal/types"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, opts ...Option) (*Service, *store.Repositories) {
	t.Helper()
	repos := store.NewMemory()
	n := 0
	opts = append([]Option{
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("gen-%d", n)
		}),
	}, opts...)
	return NewService(repos, opts...), repos
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func validJobInput() types.JobInput {
	return types.JobInput{
		Title:           "Backend Engineer",
		Description:     "Build services",
		Company:         "Acme",
		Department:      "Engineering",
		Location:        "Berlin",
		WorkLocation:    types.WorkLocationRemote,
		JobType:         types.JobTypeFullTime,
		ExperienceLevel: types.ExperienceMid,
		SalaryMin:       intPtr(60000),
		SalaryMax:       intPtr(90000),
		Skills:          []string{"Go", "SQL"},
		PostedBy:        "recruiter-1",
	}
}

func seedApplication(t *testing.T, repos *store.Repositories, id string, status types.ApplicationStatus) {
	t.Helper()
	require.NoError(t, repos.Applications.Create(context.Background(), types.Application{
		ID:          id,
		JobID:       "job-1",
		Status:      status,
		AppliedAt:   testNow.Add(-48 * time.Hour),
		LastUpdated: testNow.Add(-48 * time.Hour),
		Tags:        []string{},
		Notes:       []types.ApplicationNote{},
	}))
}

func TestService_DefaultOptions(t *testing.T) {
	svc := NewService(store.NewMemory())
	assert.False(t, svc.strict)
	assert.NotEmpty(t, svc.newID())
	assert.NotEqual(t, svc.newID(), svc.newID())
	assert.Equal(t, time.UTC, svc.clock().Location())
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to types.ApplicationStatus
		want     bool
	}{
		{types.StatusApplied, types.StatusScreening, true},
		{types.StatusApplied, types.StatusHired, false},
		{types.StatusScreening, types.StatusTechnicalInterview, true},
		{types.StatusOfferExtended, types.StatusHired, true},
		{types.StatusHired, types.StatusRejected, false},
		{types.StatusRejected, types.StatusApplied, false},
		{types.StatusWithdrawn, types.StatusWithdrawn, true},
		{types.StatusFinalInterview, types.StatusWithdrawn, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_to_%s", tt.from, tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}
