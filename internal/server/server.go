// Package server provides the HTTP REST API for the hiring service.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jonathan/hireflow/internal/config"
	"github.com/jonathan/hireflow/internal/hiring"
	"github.com/jonathan/hireflow/internal/server/middleware"
	"github.com/jonathan/hireflow/internal/server/ratelimit"
	"github.com/jonathan/hireflow/internal/types"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

var log = logrus.New()

// SetLogger replaces the package logger.
func SetLogger(l *logrus.Logger) {
	log = l
}

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	svc          *hiring.Service
	rateLimiter  *ratelimit.Limiter
	jwtService   *JWTService
	userService  *UserService
	authHandler  *AuthHandler
	authDisabled bool
}

// Config holds server configuration
type Config struct {
	Port int
	// AuthDisabled skips token checks on every route. Meant for local runs only.
	AuthDisabled bool
	JWT          *config.JWTConfig
	Password     *config.PasswordConfig
	// RateLimit defaults to ratelimit.LoadConfig when nil.
	RateLimit *ratelimit.Config
}

// New creates a new server instance
func New(svc *hiring.Service, cfg Config) (*Server, error) {
	if svc == nil {
		return nil, fmt.Errorf("hiring service is required")
	}
	if cfg.JWT == nil {
		return nil, fmt.Errorf("JWT config is required")
	}
	if cfg.Password == nil {
		return nil, fmt.Errorf("password config is required")
	}

	rateConfig := cfg.RateLimit
	if rateConfig == nil {
		loaded, err := ratelimit.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load rate limit config: %w", err)
		}
		rateConfig = loaded
	}

	s := &Server{
		svc:          svc,
		rateLimiter:  ratelimit.NewLimiter(rateConfig),
		jwtService:   NewJWTService(cfg.JWT),
		userService:  NewUserService(svc.Repositories().Users, cfg.Password),
		authDisabled: cfg.AuthDisabled,
	}
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	read, manage := s.authenticated, s.managing

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("GET /users/{id}", read(s.handleGetUser))

	// Jobs
	mux.Handle("GET /jobs", read(s.handleListJobs))
	mux.Handle("GET /jobs/{id}", read(s.handleGetJob))
	mux.Handle("POST /jobs", manage(s.handleCreateJob))
	mux.Handle("PUT /jobs/{id}", manage(s.handleUpdateJob))
	mux.Handle("DELETE /jobs/{id}", manage(s.handleDeleteJob))
	mux.Handle("POST /jobs/{id}/views", read(s.handleRecordJobView))

	// Applications
	mux.Handle("GET /applications", read(s.handleListApplications))
	mux.Handle("GET /applications/stats", read(s.handleApplicationStats))
	mux.Handle("GET /applications/{id}", read(s.handleGetApplication))
	mux.Handle("POST /applications", read(s.handleCreateApplication))
	mux.Handle("PUT /applications/{id}/status", manage(s.handleUpdateApplicationStatus))
	mux.Handle("PUT /applications/{id}/rating", manage(s.handleUpdateApplicationRating))
	mux.Handle("POST /applications/bulk", manage(s.handleBulkUpdateApplications))
	mux.Handle("GET /applications/{id}/notes", manage(s.handleListApplicationNotes))
	mux.Handle("POST /applications/{id}/notes", manage(s.handleAddApplicationNote))

	// Interviews
	mux.Handle("GET /interviews", read(s.handleListInterviews))
	mux.Handle("GET /interviews/stats", read(s.handleInterviewStats))
	mux.Handle("GET /interviews/{id}", read(s.handleGetInterview))
	mux.Handle("POST /interviews", manage(s.handleCreateInterview))
	mux.Handle("PUT /interviews/{id}", manage(s.handleUpdateInterview))
	mux.Handle("DELETE /interviews/{id}", manage(s.handleDeleteInterview))
	mux.Handle("POST /interviews/{id}/feedback", manage(s.handleSubmitFeedback))
	mux.Handle("GET /interviewers/{id}/slots", read(s.handleAvailableSlots))
	mux.Handle("POST /interviewers/{id}/slots", manage(s.handleCreateSlot))

	// Messaging
	mux.Handle("GET /conversations", read(s.handleListConversations))
	mux.Handle("POST /conversations", read(s.handleCreateConversation))
	mux.Handle("GET /conversations/{id}", read(s.handleGetConversation))
	mux.Handle("GET /conversations/{id}/messages", read(s.handleListMessages))
	mux.Handle("POST /conversations/{id}/messages", read(s.handleSendMessage))
	mux.Handle("POST /conversations/{id}/read", read(s.handleMarkConversationRead))
	mux.Handle("POST /messages/{id}/read", read(s.handleMarkMessageRead))
	mux.Handle("GET /users/{id}/notifications", read(s.handleListNotifications))
	mux.Handle("POST /notifications/{id}/read", read(s.handleMarkNotificationRead))
	mux.Handle("GET /users/{id}/notification-settings", read(s.handleGetNotificationSettings))
	mux.Handle("PUT /users/{id}/notification-settings", read(s.handleUpdateNotificationSettings))

	// Candidate profiles
	mux.Handle("GET /profiles", read(s.handleSearchProfiles))
	mux.Handle("POST /profiles", read(s.handleCreateProfile))
	mux.Handle("PUT /profiles/{id}", read(s.handleUpdateProfile))
	mux.Handle("GET /users/{id}/profile", read(s.handleGetProfile))

	// Analytics
	mux.Handle("GET /analytics/hiring", manage(s.handleHiringMetrics))
	mux.Handle("GET /analytics/time-series", manage(s.handleTimeSeries))
	mux.Handle("GET /analytics/departments", manage(s.handleDepartmentMetrics))
	mux.Handle("GET /analytics/efficiency", manage(s.handleRecruitmentEfficiency))
	mux.Handle("GET /analytics/export.xlsx", manage(s.handleExportWorkbook))

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Handler returns the fully wrapped request handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves requests until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Infof("[server] listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.rateLimiter.Stop()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("[server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.rateLimiter.Stop()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("[server] stopped")
	return nil
}

// Close releases background resources without serving.
func (s *Server) Close() {
	s.rateLimiter.Stop()
}

// authenticated requires a valid bearer token.
func (s *Server) authenticated(h http.HandlerFunc) http.Handler {
	if s.authDisabled {
		return h
	}
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(h)
}

// managing requires a valid bearer token carrying a role that may manage hiring.
func (s *Server) managing(h http.HandlerFunc) http.Handler {
	if s.authDisabled {
		return h
	}
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(
		middleware.RequireRole(types.UserRole.CanManageHiring)(h),
	)
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(extractClientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"remote":   r.RemoteAddr,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Debug("[http] request completed")
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.WithError(err).Warn("[http] failed to encode JSON response")
	}
}

// writeError writes an error JSON response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// fail maps a service error onto a status code. Internal errors are logged and not echoed.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", r.URL.Path).Error("[http] request failed")
		writeError(w, status, "internal server error")
		return
	}
	writeError(w, status, err.Error())
}

// respond writes v, or 404 with a message naming what when v is a nil pointer.
func respond[T any](w http.ResponseWriter, status int, v *T, what string) {
	if v == nil {
		writeError(w, http.StatusNotFound, what+" not found")
		return
	}
	writeJSON(w, status, v)
}

// decodeJSON reads a size-limited JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return &ErrValidation{Field: "body", Message: "request body is empty"}
		}
		return &ErrValidation{Field: "body", Message: "Invalid request body"}
	}
	return nil
}

// callerID returns the authenticated user id, or "" when auth is disabled.
func callerID(r *http.Request) string {
	id, err := middleware.GetUserID(r)
	if err != nil {
		return ""
	}
	return id
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For is not trusted.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.UTC().Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
	}

	log.WithFields(logrus.Fields{
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}).Warn("[rate-limit] rate limit exceeded")

	writeJSON(w, http.StatusTooManyRequests, response)
}
