package server

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/hireflow/internal/export"
	"github.com/jonathan/hireflow/internal/types"
)

func newJobBody() map[string]any {
	return map[string]any{
		"title":            "Backend Engineer",
		"description":      "Build APIs",
		"company":          "TechCorp",
		"department":       "Engineering",
		"location":         "Berlin",
		"work_location":    "remote",
		"job_type":         "full-time",
		"experience_level": "mid",
		"skills":           []string{"Go", "PostgreSQL"},
		"posted_by":        "1",
	}
}

func TestJobs_ListAndFilter(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/jobs", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]types.Job](t, w), 3)

	w = do(t, s, http.MethodGet, "/jobs?status=active", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	jobs := decode[[]types.Job](t, w)
	assert.Len(t, jobs, 2)
	for _, j := range jobs {
		assert.Equal(t, types.JobStatusActive, j.Status)
	}

	tests := []struct {
		name  string
		query string
	}{
		{name: "unknown status", query: "status=archived"},
		{name: "non-numeric salary", query: "salary_min=lots"},
		{name: "unknown job type", query: "job_type=gig"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodGet, "/jobs?"+tt.query, nil, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestJobs_Lifecycle(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodPost, "/jobs", newJobBody(), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	job := decode[types.Job](t, w)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, types.JobStatusDraft, job.Status)
	assert.Equal(t, "USD", job.Currency)
	assert.Zero(t, job.ApplicationsCount)
	assert.Equal(t, testNow, job.PostedAt)

	w = do(t, s, http.MethodPut, "/jobs/"+job.ID, map[string]any{"status": "active", "title": "Senior Backend Engineer"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[types.Job](t, w)
	assert.Equal(t, types.JobStatusActive, updated.Status)
	assert.Equal(t, "Senior Backend Engineer", updated.Title)

	w = do(t, s, http.MethodPost, "/jobs/"+job.ID+"/views", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[types.Job](t, w).ViewsCount)

	w = do(t, s, http.MethodDelete, "/jobs/"+job.ID, nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, s, http.MethodGet, "/jobs/"+job.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "job not found", errorMessage(t, w))

	w = do(t, s, http.MethodDelete, "/jobs/"+job.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJobs_CreateValidation(t *testing.T) {
	s, _ := newTestServer(t)

	missingTitle := newJobBody()
	delete(missingTitle, "title")
	w := do(t, s, http.MethodPost, "/jobs", missingTitle, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	inverted := newJobBody()
	inverted["salary_min"] = 120000
	inverted["salary_max"] = 90000
	w = do(t, s, http.MethodPost, "/jobs", inverted, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPut, "/jobs/missing", map[string]any{"title": "x"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplications_ListAndStats(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/applications?status=screening", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	apps := decode[[]types.Application](t, w)
	require.Len(t, apps, 1)
	assert.Equal(t, "3", apps[0].ID)

	w = do(t, s, http.MethodGet, "/applications?job_id=1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]types.Application](t, w), 3)

	w = do(t, s, http.MethodGet, "/applications?date_from=yesterday", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodGet, "/applications/stats", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 6, decode[types.ApplicationStats](t, w).Total)

	w = do(t, s, http.MethodGet, "/applications/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application not found", errorMessage(t, w))
}

func TestApplications_StatusAndRating(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodPut, "/applications/3/status", map[string]any{"status": "phone_interview"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	app := decode[types.Application](t, w)
	assert.Equal(t, types.ApplicationStatus("phone_interview"), app.Status)
	assert.Equal(t, testNow, app.LastUpdated)

	w = do(t, s, http.MethodPut, "/applications/3/status", map[string]any{"status": "ghosted"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPut, "/applications/missing/status", map[string]any{"status": "screening"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodPut, "/applications/3/rating", map[string]any{"rating": 4}, "")
	require.Equal(t, http.StatusOK, w.Code)
	app = decode[types.Application](t, w)
	require.NotNil(t, app.Rating)
	assert.Equal(t, 4, *app.Rating)

	w = do(t, s, http.MethodPut, "/applications/3/rating", map[string]any{"rating": 7}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPut, "/applications/3/rating", map[string]any{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplications_BulkUpdate(t *testing.T) {
	s, _ := newTestServer(t)

	body := map[string]any{
		"ids":     []string{"1", "id-missing"},
		"updates": map[string]any{"status": "rejected", "rating": 2, "tags": []string{"archived"}},
	}
	w := do(t, s, http.MethodPost, "/applications/bulk", body, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	apps := decode[[]types.Application](t, w)
	require.Len(t, apps, 1)
	assert.Equal(t, "1", apps[0].ID)
	assert.Equal(t, types.ApplicationStatus("rejected"), apps[0].Status)
	assert.Equal(t, []string{"archived"}, apps[0].Tags)
	require.NotNil(t, apps[0].Rating)
	assert.Equal(t, 2, *apps[0].Rating)

	w = do(t, s, http.MethodPost, "/applications/bulk", map[string]any{"ids": []string{"1"}, "updates": map[string]any{"status": "bogus"}}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPost, "/applications/bulk", map[string]any{"ids": []string{"1"}, "updates": map[string]any{"rating": 9}}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplications_Notes(t *testing.T) {
	s, _ := newTestServer(t)

	note := map[string]any{"content": "Strong system design answers", "author_id": "1", "author_name": "Sarah Johnson"}
	w := do(t, s, http.MethodPost, "/applications/1/notes", note, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[types.ApplicationNote](t, w)
	assert.Equal(t, "1", created.ApplicationID)

	w = do(t, s, http.MethodGet, "/applications/1/notes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	notes := decode[[]types.ApplicationNote](t, w)
	assert.Len(t, notes, 2)

	w = do(t, s, http.MethodPost, "/applications/missing/notes", note, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodPost, "/applications/1/notes", map[string]any{"author_id": "1", "author_name": "Sarah"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInterviews(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/interviews/stats", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[types.InterviewStats](t, w).Total)

	w = do(t, s, http.MethodGet, "/interviews?status=completed", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	ivs := decode[[]types.Interview](t, w)
	require.Len(t, ivs, 1)
	assert.Equal(t, "2", ivs[0].ID)

	feedback := map[string]any{"overall_rating": 4, "recommendation": "hire"}
	w = do(t, s, http.MethodPost, "/interviews/2/feedback", feedback, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, s, http.MethodPost, "/interviews/missing/feedback", feedback, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodPost, "/interviews/1/feedback", map[string]any{"overall_rating": 9, "recommendation": "hire"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodDelete, "/interviews/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInterviewerSlots(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/interviewers/interviewer-1/slots?date=2024-01-30", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]types.InterviewSlot](t, w), 2)

	w = do(t, s, http.MethodGet, "/interviewers/interviewer-1/slots?date=2024-01-31", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]types.InterviewSlot](t, w))

	w = do(t, s, http.MethodGet, "/interviewers/interviewer-1/slots", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	slot := map[string]any{"date": "2024-01-31T00:00:00Z", "start_time": "11:00", "end_time": "12:00", "duration": 60}
	w = do(t, s, http.MethodPost, "/interviewers/interviewer-1/slots", slot, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[types.InterviewSlot](t, w)
	assert.Equal(t, "interviewer-1", created.InterviewerID)
	assert.True(t, created.IsAvailable)

	w = do(t, s, http.MethodGet, "/interviewers/interviewer-1/slots?date=2024-01-31", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]types.InterviewSlot](t, w), 1)
}

func TestMessaging_SendAndRead(t *testing.T) {
	s, _ := newTestServer(t)

	msg := map[string]any{
		"sender":    map[string]any{"id": "1", "name": "Sarah Johnson", "role": "hr_manager"},
		"recipient": map[string]any{"id": "c1", "name": "John Doe"},
		"content":   "Are you free on Thursday?",
	}
	w := do(t, s, http.MethodPost, "/conversations/conv-1/messages", msg, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	sent := decode[types.Message](t, w)
	assert.Equal(t, "conv-1", sent.ConversationID)
	assert.Equal(t, types.MessageText, sent.Type)

	w = do(t, s, http.MethodGet, "/conversations/conv-1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[types.Conversation](t, w).UnreadCount)

	w = do(t, s, http.MethodGet, "/users/c1/notifications", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	notifications := decode[[]types.Notification](t, w)
	require.Len(t, notifications, 3)
	assert.Equal(t, types.NotificationMessage, notifications[0].Type)

	w = do(t, s, http.MethodPost, "/conversations/conv-1/read", map[string]any{"user_id": "c1"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, decode[types.Conversation](t, w).UnreadCount)

	w = do(t, s, http.MethodPost, "/messages/msg-3/read", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, types.MessageRead, decode[types.Message](t, w).Status)

	w = do(t, s, http.MethodPost, "/conversations/missing/messages", msg, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodGet, "/conversations/conv-1/messages", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]types.Message](t, w), 4)
}

func TestMessaging_Conversations(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/conversations?participant_id=c1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[[]types.Conversation](t, w))

	w = do(t, s, http.MethodGet, "/conversations?unread_only=maybe", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodGet, "/conversations/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	conv := map[string]any{
		"type": "general",
		"participants": []map[string]any{
			{"user_id": "1", "user_name": "Sarah Johnson", "user_role": "hr_manager"},
			{"user_id": "c1", "user_name": "John Doe", "user_role": "job_seeker"},
		},
	}
	w = do(t, s, http.MethodPost, "/conversations", conv, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Zero(t, decode[types.Conversation](t, w).UnreadCount)
}

func TestNotificationSettings(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/users/c1/notification-settings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[types.NotificationSettings](t, w).MessageNotifications)

	w = do(t, s, http.MethodPut, "/users/c1/notification-settings", map[string]any{"message_notifications": false}, "")
	require.Equal(t, http.StatusOK, w.Code)
	saved := decode[types.NotificationSettings](t, w)
	assert.Equal(t, "c1", saved.UserID)
	assert.False(t, saved.MessageNotifications)

	w = do(t, s, http.MethodPost, "/notifications/notif-1/read", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[types.Notification](t, w).IsRead)

	w = do(t, s, http.MethodPost, "/notifications/missing/read", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfiles(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/profiles?skills=react", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	profiles := decode[[]types.CandidateProfile](t, w)
	require.Len(t, profiles, 1)
	assert.Equal(t, "c1", profiles[0].UserID)

	w = do(t, s, http.MethodGet, "/profiles?skills=cobol", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]types.CandidateProfile](t, w))

	w = do(t, s, http.MethodGet, "/users/c1/profile", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p1", decode[types.CandidateProfile](t, w).ID)

	w = do(t, s, http.MethodGet, "/users/1/profile", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	dup := map[string]any{"user_id": "c1", "first_name": "John", "last_name": "Doe", "email": "john.doe@email.com"}
	w = do(t, s, http.MethodPost, "/profiles", dup, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, s, http.MethodPut, "/profiles/p1", map[string]any{"title": "Staff Engineer"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Staff Engineer", decode[types.CandidateProfile](t, w).Title)

	w = do(t, s, http.MethodPut, "/profiles/missing", map[string]any{"title": "x"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUser(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/users/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	user := decode[map[string]any](t, w)
	assert.Equal(t, "hr@techcorp.example", user["email"])
	assert.NotContains(t, user, "password_hash")

	w = do(t, s, http.MethodGet, "/users/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalytics(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/analytics/hiring", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	metrics := decode[types.HiringMetrics](t, w)
	assert.Equal(t, 3, metrics.TotalJobs)
	assert.Equal(t, 6, metrics.TotalApplications)

	w = do(t, s, http.MethodGet, "/analytics/hiring?date_from=not-a-date", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, path := range []string{"/analytics/time-series", "/analytics/departments", "/analytics/efficiency"} {
		w = do(t, s, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestAnalyticsExport(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/analytics/export.xlsx", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "hiring-report.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Contains(t, f.GetSheetList(), export.SheetSummary)
}
