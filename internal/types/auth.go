package types

import "time"

// UserRole is the coarse permission label attached to a user.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleHRManager UserRole = "hr_manager"
	RoleEmployer  UserRole = "employer"
	RoleJobSeeker UserRole = "job_seeker"
)

// UserRoles lists every role.
var UserRoles = []UserRole{RoleAdmin, RoleHRManager, RoleEmployer, RoleJobSeeker}

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool { return contains(UserRoles, r) }

// CanManageHiring reports whether the role may mutate jobs, applications and interviews.
func (r UserRole) CanManageHiring() bool {
	return r == RoleAdmin || r == RoleHRManager || r == RoleEmployer
}

// CreateUserRequest represents the request to create a new user with password authentication.
type CreateUserRequest struct {
	Name       string   `json:"name" validate:"required,min=1"`
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"required,min=8,max=72"`
	Role       UserRole `json:"role" validate:"omitempty,oneof=hr_manager employer job_seeker"`
	Company    string   `json:"company,omitempty"`
	Department string   `json:"department,omitempty"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User is the API view of an account.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       UserRole  `json:"role"`
	Company    string    `json:"company,omitempty"`
	Department string    `json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserRecord is the stored form of a user, including the password hash.
type UserRecord struct {
	User
	PasswordHash string `json:"password_hash"`
}

// GetID returns the user identifier.
func (u UserRecord) GetID() string { return u.ID }

// LoginResponse represents the login/register response with user data and authentication token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate validates the CreateUserRequest using the validator.
func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}
