package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/hireflow/internal/hiring"
	"github.com/jonathan/hireflow/internal/types"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrValidation indicates a malformed request body or query parameter
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		emailErr    *ErrEmailAlreadyExists
		credsErr    *ErrInvalidCredentials
		requestErr  *ErrValidation
		hiringErr   *hiring.ErrValidation
		enumErr     *types.ErrInvalidEnum
		rangeErr    *types.ErrInvalidRange
		feedbackErr *hiring.ErrFeedbackExists
		profileErr  *hiring.ErrProfileExists
	)

	switch {
	case errors.As(err, &emailErr), errors.As(err, &feedbackErr), errors.As(err, &profileErr):
		return http.StatusConflict
	case errors.As(err, &credsErr):
		return http.StatusUnauthorized
	case errors.As(err, &requestErr), errors.As(err, &hiringErr), errors.As(err, &enumErr), errors.As(err, &rangeErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
