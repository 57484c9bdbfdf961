// Package shared contains common domain types, errors, and events
// that are used across all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")
	ErrInvalidEntity = errors.New("invalid entity")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidID       = errors.New("invalid ID")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrNegativeValue   = errors.New("value cannot be negative")
	ErrValueOutOfRange = errors.New("value out of range")

	// Business rule errors
	ErrLimitExceeded = errors.New("limit exceeded")

	// External service errors
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrTimeout            = errors.New("operation timeout")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "course", "enrollment"
	Op      string // Operation that failed, e.g., "Enroll", "CalculateGPA"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// StudentNotFound builds the canonical "student not found" failure citing the ID.
func StudentNotFound(op, studentID string) *DomainError {
	return NewDomainError("student", op, ErrNotFound,
		fmt.Sprintf("Student not found with ID: %s", studentID))
}

// CourseNotFound builds the canonical "course not found" failure citing the ID.
func CourseNotFound(op, courseID string) *DomainError {
	return NewDomainError("course", op, ErrNotFound,
		fmt.Sprintf("Course not found with ID: %s", courseID))
}

// EnrollmentNotFound builds the canonical "enrollment not found" failure.
func EnrollmentNotFound(op, studentID, courseID string) *DomainError {
	return NewDomainError("enrollment", op, ErrNotFound,
		fmt.Sprintf("Enrollment not found for student %s and course %s", studentID, courseID))
}

// CreditLimitExceeded builds the credit-limit failure. No partial state is
// changed when this error is returned.
func CreditLimitExceeded(op string) *DomainError {
	return NewDomainError("enrollment", op, ErrLimitExceeded,
		"Student exceeds maximum credit limit")
}

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsCreditLimitExceeded checks if the error is a credit-limit violation.
func IsCreditLimitExceeded(err error) bool {
	return errors.Is(err, ErrLimitExceeded)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrNegativeValue) ||
		errors.Is(err, ErrValueOutOfRange)
}
