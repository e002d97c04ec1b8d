package types

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrInvalidEnum is returned when a value is not part of its enumeration.
type ErrInvalidEnum struct {
	Field string
	Value string
}

func (e *ErrInvalidEnum) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// ErrInvalidRange is returned when a numeric field or pair of fields is out of bounds.
type ErrInvalidRange struct {
	Field   string
	Message string
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// CheckRating ensures a rating is within 1..5.
func CheckRating(field string, rating int) error {
	if rating < 1 || rating > 5 {
		return &ErrInvalidRange{Field: field, Message: fmt.Sprintf("must be between 1 and 5, got %d", rating)}
	}
	return nil
}

func checkOptionalRating(field string, rating *int) error {
	if rating == nil {
		return nil
	}
	return CheckRating(field, *rating)
}

func checkSalaryRange(lo, hi *int) error {
	if lo != nil && hi != nil && *lo > *hi {
		return &ErrInvalidRange{Field: "salary_min", Message: fmt.Sprintf("%d exceeds salary_max %d", *lo, *hi)}
	}
	return nil
}

// CheckSalaryRange enforces salary_min <= salary_max on a stored job.
func (j *Job) CheckSalaryRange() error {
	return checkSalaryRange(j.SalaryMin, j.SalaryMax)
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
