package server

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hireflow/internal/types"
)

func TestParseJobFilters(t *testing.T) {
	q := url.Values{
		"search":     {" react "},
		"skills":     {"Go, TypeScript", ",Rust"},
		"salary_min": {"50000"},
		"status":     {"active"},
	}

	f, err := parseJobFilters(q)
	require.NoError(t, err)
	assert.Equal(t, "react", f.Search)
	assert.Equal(t, []string{"Go", "TypeScript", "Rust"}, f.Skills)
	require.NotNil(t, f.SalaryMin)
	assert.Equal(t, 50000, *f.SalaryMin)
	assert.Nil(t, f.SalaryMax)
	assert.Equal(t, types.JobStatusActive, f.Status)
}

func TestParseFilters_FirstErrorWins(t *testing.T) {
	_, err := parseJobFilters(url.Values{"work_location": {"moon"}, "salary_max": {"x"}})
	require.Error(t, err)

	var verr *ErrValidation
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "work_location", verr.Field)
}

func TestParseApplicationFilters_Dates(t *testing.T) {
	f, err := parseApplicationFilters(url.Values{
		"date_from": {"2024-01-10"},
		"date_to":   {"2024-01-20"},
	})
	require.NoError(t, err)
	require.NotNil(t, f.DateFrom)
	require.NotNil(t, f.DateTo)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), *f.DateFrom)
	assert.Equal(t, time.Date(2024, 1, 20, 23, 59, 59, 999999999, time.UTC), *f.DateTo)

	f, err = parseApplicationFilters(url.Values{"date_to": {"2024-01-20T08:00:00+02:00"}})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 20, 6, 0, 0, 0, time.UTC), *f.DateTo)

	_, err = parseApplicationFilters(url.Values{"date_from": {"20/01/2024"}})
	assert.Error(t, err)
}

func TestParseCommunicationFilters(t *testing.T) {
	f, err := parseCommunicationFilters(url.Values{"unread_only": {"true"}, "type": {"interview"}})
	require.NoError(t, err)
	assert.True(t, f.UnreadOnly)
	assert.Equal(t, types.ConversationType("interview"), f.Type)

	_, err = parseCommunicationFilters(url.Values{"type": {"gossip"}})
	assert.Error(t, err)
}

func TestParseDay(t *testing.T) {
	day, err := parseDay(url.Values{"date": {"2024-01-30"}}, "date")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC), day)

	_, err = parseDay(url.Values{}, "date")
	var verr *ErrValidation
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "is required", verr.Message)
}
