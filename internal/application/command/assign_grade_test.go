package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/enrollment-hub/internal/domain/shared"
)

func newGradeFixture(t *testing.T) (*enrollFixture, *AssignGradeHandler) {
	t.Helper()

	f := newEnrollFixture(t)
	h := NewAssignGradeHandler(f.studentRepo, f.enrollmentRepo, nil, nil)
	return f, h
}

func TestAssignGrade_Success(t *testing.T) {
	ctx := context.Background()
	f, h := newGradeFixture(t)
	f.addStudent(t, "S1", 15)
	f.addCourse(t, "C1", 3)

	_, err := f.handler.Handle(ctx, EnrollStudentCommand{StudentID: "S1", CourseID: "C1"})
	require.NoError(t, err)

	result, err := h.Handle(ctx, AssignGradeCommand{StudentID: "S1", CourseID: "C1", Grade: 3.7})
	require.NoError(t, err)

	assert.Equal(t, 3.7, result.Enrollment.Grade)
	assert.True(t, result.Enrollment.IsGraded())

	// The stored record is updated, not duplicated
	enrollments, err := f.enrollmentRepo.GetByStudentID(ctx, "S1")
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, 3.7, enrollments[0].Grade)
}

func TestAssignGrade_OutOfRange(t *testing.T) {
	ctx := context.Background()
	f, h := newGradeFixture(t)
	f.addStudent(t, "S1", 15)
	f.addCourse(t, "C1", 3)

	_, err := f.handler.Handle(ctx, EnrollStudentCommand{StudentID: "S1", CourseID: "C1"})
	require.NoError(t, err)

	_, err = h.Handle(ctx, AssignGradeCommand{StudentID: "S1", CourseID: "C1", Grade: 4.5})
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))

	_, err = h.Handle(ctx, AssignGradeCommand{StudentID: "S1", CourseID: "C1", Grade: -1.0})
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))
}

func TestAssignGrade_InvalidatesCacheAndPublishes(t *testing.T) {
	ctx := context.Background()
	f := newEnrollFixture(t)
	f.addStudent(t, "S1", 15)
	f.addCourse(t, "C1", 3)

	_, err := f.handler.Handle(ctx, EnrollStudentCommand{StudentID: "S1", CourseID: "C1"})
	require.NoError(t, err)

	cache := &recordingGPACache{}
	pub := &recordingPublisher{}
	h := NewAssignGradeHandler(f.studentRepo, f.enrollmentRepo, cache, pub)

	_, err = h.Handle(ctx, AssignGradeCommand{StudentID: "S1", CourseID: "C1", Grade: 3.7})
	require.NoError(t, err)

	// The new grade changes the GPA numerator, so the cached value goes
	assert.Equal(t, []string{"S1"}, cache.invalidated)

	require.Len(t, pub.events, 1)
	assert.Equal(t, shared.EventEnrollmentGraded, pub.events[0].EventType())

	graded, ok := pub.events[0].(shared.EnrollmentGradedEvent)
	require.True(t, ok)
	assert.Equal(t, "S1", graded.StudentID)
	assert.Equal(t, "C1", graded.CourseID)
	assert.Equal(t, 3.7, graded.Grade)
}

func TestAssignGrade_NoSideEffectsOnFailure(t *testing.T) {
	ctx := context.Background()
	f := newEnrollFixture(t)
	f.addStudent(t, "S1", 15)
	f.addCourse(t, "C1", 3)

	_, err := f.handler.Handle(ctx, EnrollStudentCommand{StudentID: "S1", CourseID: "C1"})
	require.NoError(t, err)

	cache := &recordingGPACache{}
	pub := &recordingPublisher{}
	h := NewAssignGradeHandler(f.studentRepo, f.enrollmentRepo, cache, pub)

	// Out-of-range grade
	_, err = h.Handle(ctx, AssignGradeCommand{StudentID: "S1", CourseID: "C1", Grade: 4.5})
	require.Error(t, err)

	// Not enrolled
	_, err = h.Handle(ctx, AssignGradeCommand{StudentID: "S1", CourseID: "C2", Grade: 3.0})
	require.Error(t, err)

	assert.Empty(t, cache.invalidated)
	assert.Empty(t, pub.events)
}

func TestAssignGrade_StudentNotFound(t *testing.T) {
	ctx := context.Background()
	_, h := newGradeFixture(t)

	_, err := h.Handle(ctx, AssignGradeCommand{StudentID: "S404", CourseID: "C1", Grade: 3.0})
	require.Error(t, err)
	assert.Equal(t, "Student not found with ID: S404", err.Error())
}

func TestAssignGrade_NotEnrolled(t *testing.T) {
	ctx := context.Background()
	f, h := newGradeFixture(t)
	f.addStudent(t, "S1", 15)

	_, err := h.Handle(ctx, AssignGradeCommand{StudentID: "S1", CourseID: "C1", Grade: 3.0})
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
}
