package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hireflow/internal/types"
)

const seedPassword = "changeme123"

func login(t *testing.T, s *Server, email string) types.LoginResponse {
	t.Helper()
	w := do(t, s, http.MethodPost, "/auth/login", map[string]any{"email": email, "password": seedPassword}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[types.LoginResponse](t, w)
}

func TestRegister(t *testing.T) {
	s, _ := newTestServer(t, withAuth())

	body := map[string]any{"name": "Ada Lovelace", "email": "ada@example.com", "password": "password123"}
	w := do(t, s, http.MethodPost, "/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[types.LoginResponse](t, w)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, types.RoleJobSeeker, resp.User.Role)

	w = do(t, s, http.MethodPost, "/auth/register", map[string]any{"name": "Ada", "email": "ADA@example.com", "password": "password123"}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "short password", body: map[string]any{"name": "Bob", "email": "bob@example.com", "password": "short"}},
		{name: "bad email", body: map[string]any{"name": "Bob", "email": "bob", "password": "password123"}},
		{name: "admin role", body: map[string]any{"name": "Bob", "email": "bob@example.com", "password": "password123", "role": "admin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/auth/register", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	s, _ := newTestServer(t, withAuth())

	resp := login(t, s, "hr@techcorp.example")
	assert.Equal(t, "1", resp.User.ID)
	assert.Equal(t, types.RoleHRManager, resp.User.Role)

	w := do(t, s, http.MethodPost, "/auth/login", map[string]any{"email": "hr@techcorp.example", "password": "wrong-password"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, s, http.MethodPost, "/auth/login", map[string]any{"email": "nobody@example.com", "password": seedPassword}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, s, http.MethodPost, "/auth/login", "{", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouteAuthorization(t *testing.T) {
	s, _ := newTestServer(t, withAuth())

	hr := login(t, s, "hr@techcorp.example").Token
	seeker := login(t, s, "john.doe@email.com").Token

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		token  string
		want   int
	}{
		{name: "health is public", method: http.MethodGet, path: "/health", want: http.StatusOK},
		{name: "jobs need a token", method: http.MethodGet, path: "/jobs", want: http.StatusUnauthorized},
		{name: "garbage token", method: http.MethodGet, path: "/jobs", token: "not-a-jwt", want: http.StatusUnauthorized},
		{name: "seeker reads jobs", method: http.MethodGet, path: "/jobs", token: seeker, want: http.StatusOK},
		{name: "seeker cannot post jobs", method: http.MethodPost, path: "/jobs", body: newJobBody(), token: seeker, want: http.StatusForbidden},
		{name: "hr posts jobs", method: http.MethodPost, path: "/jobs", body: newJobBody(), token: hr, want: http.StatusCreated},
		{name: "seeker cannot read analytics", method: http.MethodGet, path: "/analytics/hiring", token: seeker, want: http.StatusForbidden},
		{name: "hr reads analytics", method: http.MethodGet, path: "/analytics/hiring", token: hr, want: http.StatusOK},
		{name: "seeker reads own notifications", method: http.MethodGet, path: "/users/c1/notifications", token: seeker, want: http.StatusOK},
		{name: "hr cannot read others notifications", method: http.MethodGet, path: "/users/c1/notifications", token: hr, want: http.StatusForbidden},
		{name: "seeker cannot change others settings", method: http.MethodPut, path: "/users/1/notification-settings", body: map[string]any{"message_notifications": false}, token: seeker, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, tt.method, tt.path, tt.body, tt.token)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestCreateJob_DefaultsPosterToCaller(t *testing.T) {
	s, _ := newTestServer(t, withAuth())
	token := login(t, s, "employer@startupxyz.example").Token

	body := newJobBody()
	delete(body, "posted_by")
	w := do(t, s, http.MethodPost, "/jobs", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "2", decode[types.Job](t, w).PostedBy)
}

func TestSendMessage_SenderMustBeCaller(t *testing.T) {
	s, _ := newTestServer(t, withAuth())
	seeker := login(t, s, "john.doe@email.com").Token

	spoofed := map[string]any{
		"sender":    map[string]any{"id": "1", "name": "Sarah Johnson"},
		"recipient": map[string]any{"id": "c1", "name": "John Doe"},
		"content":   "Offer withdrawn",
	}
	w := do(t, s, http.MethodPost, "/conversations/conv-1/messages", spoofed, seeker)
	assert.Equal(t, http.StatusForbidden, w.Code)

	own := map[string]any{
		"sender":    map[string]any{"id": "c1", "name": "John Doe"},
		"recipient": map[string]any{"id": "1", "name": "Sarah Johnson"},
		"content":   "Thursday works",
	}
	w = do(t, s, http.MethodPost, "/conversations/conv-1/messages", own, seeker)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestAdminActsForOthers(t *testing.T) {
	s, _ := newTestServer(t, withAuth())
	admin := login(t, s, "admin@hireflow.example").Token

	w := do(t, s, http.MethodGet, "/users/c1/notification-settings", nil, admin)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMarkNotificationRead_OwnerOnly(t *testing.T) {
	s, _ := newTestServer(t, withAuth())
	hr := login(t, s, "hr@techcorp.example").Token
	seeker := login(t, s, "john.doe@email.com").Token
	admin := login(t, s, "admin@hireflow.example").Token

	w := do(t, s, http.MethodPost, "/notifications/notif-1/read", nil, hr)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, s, http.MethodGet, "/users/c1/notifications", nil, seeker)
	require.Equal(t, http.StatusOK, w.Code)
	for _, n := range decode[[]types.Notification](t, w) {
		assert.False(t, n.IsRead, n.ID)
	}

	w = do(t, s, http.MethodPost, "/notifications/notif-1/read", nil, seeker)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, decode[types.Notification](t, w).IsRead)

	w = do(t, s, http.MethodPost, "/notifications/notif-2/read", nil, admin)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, s, http.MethodPost, "/notifications/nope/read", nil, seeker)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkConversationRead_OnlyForSelf(t *testing.T) {
	s, _ := newTestServer(t, withAuth())
	hr := login(t, s, "hr@techcorp.example").Token
	seeker := login(t, s, "john.doe@email.com").Token

	w := do(t, s, http.MethodPost, "/conversations/conv-1/read", map[string]any{"user_id": "c1"}, hr)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, s, http.MethodGet, "/conversations/conv-1", nil, seeker)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[types.Conversation](t, w).UnreadCount)

	w = do(t, s, http.MethodPost, "/conversations/conv-1/read", nil, seeker)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	conv := decode[types.Conversation](t, w)
	assert.Zero(t, conv.UnreadCount)
	for _, p := range conv.Participants {
		if p.UserID == "c1" {
			assert.NotNil(t, p.LastReadAt)
		} else {
			assert.Nil(t, p.LastReadAt)
		}
	}
}
