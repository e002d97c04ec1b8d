package hiring

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/hireflow/internal/types"
)

// ErrValidation indicates an invalid request payload
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrFeedbackExists indicates an interview already carries feedback
type ErrFeedbackExists struct {
	InterviewID string
}

func (e *ErrFeedbackExists) Error() string {
	return fmt.Sprintf("feedback already submitted for interview: %s", e.InterviewID)
}

// ErrProfileExists indicates the user already owns a profile
type ErrProfileExists struct {
	UserID string
}

func (e *ErrProfileExists) Error() string {
	return fmt.Sprintf("profile already exists for user: %s", e.UserID)
}

// asValidation converts payload check failures into an *ErrValidation and passes other errors through.
func asValidation(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return &ErrValidation{Field: first.Field(), Message: validationMessage(first)}
	}

	var enumErr *types.ErrInvalidEnum
	if errors.As(err, &enumErr) {
		return &ErrValidation{Field: enumErr.Field, Message: fmt.Sprintf("unknown value %q", enumErr.Value)}
	}

	var rangeErr *types.ErrInvalidRange
	if errors.As(err, &rangeErr) {
		return &ErrValidation{Field: rangeErr.Field, Message: rangeErr.Message}
	}

	return err
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
