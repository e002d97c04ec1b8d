// Package hiring implements the hiring operations of the service: job postings, applicant
// tracking, interviews, messaging, candidate profiles and analytics. It reads and writes
// through store.Repositories and delegates filtering, statistics and reporting to the
// query, stats and analytics packages.
package hiring

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jonathan/hireflow/internal/store"
)

var log = logrus.New()

// SetLogger replaces the package logger.
func SetLogger(l *logrus.Logger) {
	log = l
}

// Service exposes the hiring operations over a set of repositories.
type Service struct {
	repos  *store.Repositories
	now    func() time.Time
	newID  func() string
	strict bool
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the time source used for timestamps and recency windows.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator sets the function used to mint record ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// WithStrictTransitions rejects application status changes that skip or reverse the pipeline.
// Without it any status may follow any other.
func WithStrictTransitions() Option {
	return func(s *Service) { s.strict = true }
}

// NewService creates a Service over repos.
func NewService(repos *store.Repositories, opts ...Option) *Service {
	s := &Service{
		repos: repos,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Repositories returns the underlying repositories.
func (s *Service) Repositories() *store.Repositories {
	return s.repos
}

func (s *Service) clock() time.Time {
	return s.now().UTC()
}
