package sqlstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hireflow/internal/store"
	"github.com/jonathan/hireflow/internal/types"
)

// newTestRepositories opens a fresh in-memory SQLite database for each test.
func newTestRepositories(t *testing.T) *store.Repositories {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err, "open in-memory sqlite")
	return NewRepositories(db)
}

func TestCollection_CreateGetList(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepositories(t)

	require.NoError(t, repos.Jobs.Create(ctx, types.Job{ID: "b", Title: "Second inserted first"}))
	require.NoError(t, repos.Jobs.Create(ctx, types.Job{ID: "a", Title: "Inserted later"}))

	got, err := repos.Jobs.Get(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Inserted later", got.Title)

	list, err := repos.Jobs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID, "insertion order, not id order")
	assert.Equal(t, "a", list[1].ID)
}

func TestCollection_KindsAreIsolated(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepositories(t)

	require.NoError(t, repos.Jobs.Create(ctx, types.Job{ID: "1"}))
	require.NoError(t, repos.Applications.Create(ctx, types.Application{ID: "1", Status: types.StatusApplied}))

	jobs, err := repos.Jobs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	app, err := repos.Applications.Get(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, types.StatusApplied, app.Status)
}

func TestCollection_GetMissing(t *testing.T) {
	repos := newTestRepositories(t)

	got, err := repos.Interviews.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCollection_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepositories(t)

	require.NoError(t, repos.Jobs.Create(ctx, types.Job{ID: "1"}))
	err := repos.Jobs.Create(ctx, types.Job{ID: "1"})
	assert.ErrorIs(t, err, store.ErrDuplicateID)
}

func TestCollection_Update(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepositories(t)
	require.NoError(t, repos.Applications.Create(ctx, types.Application{ID: "1", Status: types.StatusApplied}))

	updated, err := repos.Applications.Update(ctx, "1", func(a *types.Application) error {
		a.Status = types.StatusHired
		a.Tags = []string{"fast-track"}
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, types.StatusHired, updated.Status)

	got, err := repos.Applications.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, types.StatusHired, got.Status)
	assert.Equal(t, []string{"fast-track"}, got.Tags)

	missing, err := repos.Applications.Update(ctx, "nope", func(*types.Application) error { return nil })
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCollection_UpdateErrorRollsBack(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepositories(t)
	require.NoError(t, repos.Jobs.Create(ctx, types.Job{ID: "1", Title: "Original"}))

	boom := errors.New("boom")
	_, err := repos.Jobs.Update(ctx, "1", func(j *types.Job) error {
		j.Title = "Changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repos.Jobs.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Title)
}

func TestCollection_Delete(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepositories(t)
	require.NoError(t, repos.Jobs.Create(ctx, types.Job{ID: "1"}))

	ok, err := repos.Jobs.Delete(ctx, "1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repos.Jobs.Delete(ctx, "1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCollection_UserRecordKeepsPasswordHash(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepositories(t)

	rec := types.UserRecord{User: types.User{ID: "u1", Email: "a@b.com", Role: types.RoleEmployer}, PasswordHash: "hash"}
	require.NoError(t, repos.Users.Create(ctx, rec))

	got, err := repos.Users.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Equal(t, types.RoleEmployer, got.Role)
}
