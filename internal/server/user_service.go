package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/hireflow/internal/config"
	"github.com/jonathan/hireflow/internal/store"
	"github.com/jonathan/hireflow/internal/types"
)

// UserService provides business logic for user authentication operations
type UserService struct {
	users          store.Collection[types.UserRecord]
	passwordConfig *config.PasswordConfig
	now            func() time.Time
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(users store.Collection[types.UserRecord], passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		users:          users,
		passwordConfig: passwordConfig,
		now:            time.Now,
	}
}

// Register creates a new user with password authentication. The role defaults to job_seeker.
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	existing, err := s.findByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = types.RoleJobSeeker
	}
	now := s.now().UTC()
	rec := types.UserRecord{
		User: types.User{
			ID:         uuid.NewString(),
			Email:      strings.TrimSpace(req.Email),
			Name:       req.Name,
			Role:       role,
			Company:    req.Company,
			Department: req.Department,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		PasswordHash: passwordHash,
	}
	if err := s.users.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &rec.User, nil
}

// Login authenticates a user and returns user data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	rec, err := s.findByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Security: Always return generic error if user not found or password wrong
	if rec == nil || rec.PasswordHash == "" {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, rec.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return &rec.User, nil
}

// GetUser returns the public view of a user, or nil when the id is unknown.
func (s *UserService) GetUser(ctx context.Context, id string) (*types.User, error) {
	rec, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	return &rec.User, nil
}

// findByEmail matches emails case-insensitively.
func (s *UserService) findByEmail(ctx context.Context, email string) (*types.UserRecord, error) {
	records, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	for i := range records {
		if strings.EqualFold(records[i].Email, email) {
			return &records[i], nil
		}
	}
	return nil, nil
}

// HashPassword exposes the configured hasher for fixture loading.
func (s *UserService) HashPassword(password string) (string, error) {
	if s.passwordConfig == nil {
		return "", errors.New("password config is not set")
	}
	return s.passwordConfig.HashPassword(password)
}
