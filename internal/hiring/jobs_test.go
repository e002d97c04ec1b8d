package hiring

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hireflow/internal/types"
)

func TestCreateJob(t *testing.T) {
	svc, repos := newTestService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, validJobInput())
	require.NoError(t, err)
	require.NotNil(t, job)

	assert.Equal(t, "gen-1", job.ID)
	assert.Equal(t, types.JobStatusDraft, job.Status)
	assert.Equal(t, "USD", job.Currency)
	assert.Equal(t, 0, job.ApplicationsCount)
	assert.Equal(t, 0, job.ViewsCount)
	assert.Equal(t, testNow, job.CreatedAt)
	assert.Equal(t, testNow, job.UpdatedAt)
	assert.Equal(t, testNow, job.PostedAt)
	assert.Equal(t, []string{}, job.Benefits)

	stored, err := repos.Jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job, stored)
}

func TestCreateJob_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.JobInput)
		field  string
	}{
		{"missing title", func(in *types.JobInput) { in.Title = "" }, "title"},
		{"unknown job type", func(in *types.JobInput) { in.JobType = "seasonal" }, "job_type"},
		{"inverted salary", func(in *types.JobInput) { in.SalaryMin = intPtr(100000) }, "salary_min"},
		{"unknown status", func(in *types.JobInput) { in.Status = "archived" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repos := newTestService(t)
			in := validJobInput()
			tt.mutate(&in)

			job, err := svc.CreateJob(context.Background(), in)
			assert.Nil(t, job)
			var verr *ErrValidation
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)

			all, err := repos.Jobs.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestUpdateJob(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, validJobInput())
	require.NoError(t, err)

	later := testNow.Add(time.Hour)
	svc.now = func() time.Time { return later }

	active := types.JobStatusActive
	updated, err := svc.UpdateJob(ctx, job.ID, types.JobPatch{Title: strPtr("Staff Engineer"), Status: &active})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Staff Engineer", updated.Title)
	assert.Equal(t, types.JobStatusActive, updated.Status)
	assert.Equal(t, "Build services", updated.Description)
	assert.Equal(t, later, updated.UpdatedAt)
	assert.Equal(t, testNow, updated.CreatedAt)
}

func TestUpdateJob_Missing(t *testing.T) {
	svc, _ := newTestService(t)

	job, err := svc.UpdateJob(context.Background(), "nope", types.JobPatch{Title: strPtr("x")})
	assert.NoError(t, err)
	assert.Nil(t, job)
}

func TestUpdateJob_SalaryRangeChecksMergedValues(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, validJobInput())
	require.NoError(t, err)

	_, err = svc.UpdateJob(ctx, job.ID, types.JobPatch{SalaryMin: intPtr(95000)})
	var verr *ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "salary_min", verr.Field)

	stored, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 60000, *stored.SalaryMin)
}

func TestDeleteJob(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, validJobInput())
	require.NoError(t, err)

	ok, err := svc.DeleteJob(ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.DeleteJob(ctx, job.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecordJobView(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, validJobInput())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := svc.RecordJobView(ctx, job.ID)
		require.NoError(t, err)
	}
	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.ViewsCount)

	missing, err := svc.RecordJobView(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListJobs_FiltersAndSorts(t *testing.T) {
	svc, repos := newTestService(t)
	ctx := context.Background()

	for i, jt := range []types.JobType{types.JobTypeFullTime, types.JobTypeContract, types.JobTypeFullTime} {
		require.NoError(t, repos.Jobs.Create(ctx, types.Job{
			ID:           string(rune('a' + i)),
			WorkLocation: types.WorkLocationRemote,
			JobType:      jt,
			PostedAt:     testNow.Add(time.Duration(i) * time.Hour),
		}))
	}

	jobs, err := svc.ListJobs(ctx, types.JobFilters{WorkLocation: types.WorkLocationRemote, JobType: types.JobTypeFullTime})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "c", jobs[0].ID)
	assert.Equal(t, "a", jobs[1].ID)
}

func TestCloseExpiredJobs(t *testing.T) {
	svc, repos := newTestService(t)
	ctx := context.Background()

	past := testNow.Add(-time.Hour)
	future := testNow.Add(time.Hour)
	seed := []types.Job{
		{ID: "expired-active", Status: types.JobStatusActive, ExpiresAt: &past},
		{ID: "expired-draft", Status: types.JobStatusDraft, ExpiresAt: &past},
		{ID: "future-active", Status: types.JobStatusActive, ExpiresAt: &future},
		{ID: "exact-active", Status: types.JobStatusActive, ExpiresAt: &testNow},
		{ID: "no-expiry", Status: types.JobStatusActive},
	}
	for _, job := range seed {
		require.NoError(t, repos.Jobs.Create(ctx, job))
	}

	closed, err := svc.CloseExpiredJobs(ctx, testNow)
	require.NoError(t, err)
	require.Len(t, closed, 1)
	assert.Equal(t, "expired-active", closed[0].ID)
	assert.Equal(t, types.JobStatusClosed, closed[0].Status)

	for _, id := range []string{"expired-draft", "future-active", "exact-active", "no-expiry"} {
		job, err := repos.Jobs.Get(ctx, id)
		require.NoError(t, err)
		assert.NotEqual(t, types.JobStatusClosed, job.Status, id)
	}

	again, err := svc.CloseExpiredJobs(ctx, testNow)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestSweeper(t *testing.T) {
	svc, repos := newTestService(t)
	ctx := context.Background()

	past := testNow.Add(-24 * time.Hour)
	require.NoError(t, repos.Jobs.Create(ctx, types.Job{ID: "j", Status: types.JobStatusActive, ExpiresAt: &past}))

	sw, err := NewSweeper(svc, "")
	require.NoError(t, err)

	n, err := sw.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	sw.Start()
	sw.Stop(ctx)

	_, err = NewSweeper(svc, "not a schedule")
	assert.Error(t, err)
}
