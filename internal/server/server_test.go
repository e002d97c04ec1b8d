package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jonathan/hireflow/internal/config"
	"github.com/jonathan/hireflow/internal/hiring"
	"github.com/jonathan/hireflow/internal/seed"
	"github.com/jonathan/hireflow/internal/server/ratelimit"
	"github.com/jonathan/hireflow/internal/store"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testServerOption func(*Config)

func withAuth() testServerOption {
	return func(c *Config) { c.AuthDisabled = false }
}

func withRateLimit(rc *ratelimit.Config) testServerOption {
	return func(c *Config) { c.RateLimit = rc }
}

// newTestServer creates a server over a memory store loaded with the seed fixture.
// Auth is disabled unless withAuth is passed.
func newTestServer(t *testing.T, opts ...testServerOption) (*Server, *store.Repositories) {
	t.Helper()

	repos := store.NewMemory()
	passwords := &config.PasswordConfig{BcryptCost: bcrypt.MinCost}

	fx, err := seed.Default()
	require.NoError(t, err)
	_, err = seed.Load(context.Background(), repos, fx, passwords.HashPassword)
	require.NoError(t, err)

	svc := hiring.NewService(repos, hiring.WithClock(func() time.Time { return testNow }))

	cfg := Config{
		Port:         8080,
		AuthDisabled: true,
		JWT:          &config.JWTConfig{Secret: testJWTSecret, ExpirationHours: 24},
		Password:     passwords,
		RateLimit:    &ratelimit.Config{Enabled: false},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s, err := New(svc, cfg)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, repos
}

// do sends a request through the full middleware chain.
func do(t *testing.T, s *Server, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, w)["error"]
}

func TestHealthEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, w)["status"])
}

func TestNew_RequiresConfig(t *testing.T) {
	svc := hiring.NewService(store.NewMemory())

	_, err := New(nil, Config{})
	assert.Error(t, err)

	_, err = New(svc, Config{Password: &config.PasswordConfig{BcryptCost: bcrypt.MinCost}})
	assert.Error(t, err, "JWT config is required")

	_, err = New(svc, Config{JWT: &config.JWTConfig{Secret: testJWTSecret, ExpirationHours: 1}})
	assert.Error(t, err, "password config is required")
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodOptions, "/jobs", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestRateLimit(t *testing.T) {
	s, _ := newTestServer(t, withRateLimit(&ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  2,
		DefaultWindow: time.Minute,
	}))

	for i := 0; i < 2; i++ {
		w := do(t, s, http.MethodGet, "/jobs", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := do(t, s, http.MethodGet, "/jobs", nil, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "rate_limit_exceeded", decode[map[string]any](t, w)["error"])

	w = do(t, s, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code, "health is never throttled")
}

func TestInvalidBody(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodPost, "/jobs", "{not json", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "Invalid request body")

	w = do(t, s, http.MethodPost, "/jobs", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "empty")
}
