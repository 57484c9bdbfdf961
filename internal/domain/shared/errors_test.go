package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalErrorMessages(t *testing.T) {
	assert.Equal(t, "Student not found with ID: S1", StudentNotFound("Enroll", "S1").Error())
	assert.Equal(t, "Course not found with ID: C1", CourseNotFound("Enroll", "C1").Error())
	assert.Equal(t, "Student exceeds maximum credit limit", CreditLimitExceeded("Enroll").Error())
}

func TestDomainError_Is(t *testing.T) {
	err := StudentNotFound("Enroll", "S1")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsCreditLimitExceeded(err))

	// Matching survives wrapping
	wrapped := fmt.Errorf("handle: %w", err)
	assert.True(t, IsNotFound(wrapped))
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("socket closed")
	err := WrapError("student", "Enroll", ErrServiceUnavailable, "failed to get student", cause)

	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrServiceUnavailable))
	assert.Equal(t, "failed to get student: socket closed", err.Error())
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(NewDomainError("enrollment", "Enroll", ErrInvalidInput, "bad input")))
	assert.True(t, IsValidation(NewDomainError("enrollment", "AssignGrade", ErrValueOutOfRange, "out of range")))
	assert.False(t, IsValidation(CreditLimitExceeded("Enroll")))
}
