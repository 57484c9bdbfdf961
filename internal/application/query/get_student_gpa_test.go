package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/enrollment-hub/internal/domain/course"
	"github.com/campus-hub/enrollment-hub/internal/domain/enrollment"
	"github.com/campus-hub/enrollment-hub/internal/domain/shared"
	"github.com/campus-hub/enrollment-hub/internal/domain/student"
	"github.com/campus-hub/enrollment-hub/internal/infrastructure/persistence/memory"
)

// gpaFixture wires the GPA query over in-memory stores.
// Enrollments are written directly to the store so the query can be
// tested in isolation from the enrollment engine.
type gpaFixture struct {
	studentRepo    *memory.StudentRepository
	courseRepo     *memory.CourseRepository
	enrollmentRepo *memory.EnrollmentRepository
	handler        *GetStudentGPAHandler
}

func newGPAFixture(t *testing.T) *gpaFixture {
	t.Helper()

	f := &gpaFixture{
		studentRepo:    memory.NewStudentRepository(),
		courseRepo:     memory.NewCourseRepository(),
		enrollmentRepo: memory.NewEnrollmentRepository(),
	}
	f.handler = NewGetStudentGPAHandler(f.studentRepo, f.courseRepo, f.enrollmentRepo, nil)
	return f
}

func (f *gpaFixture) addStudent(t *testing.T, id string) {
	t.Helper()

	s, err := student.NewStudent(student.NewStudentParams{
		ID: id, Name: "Test Student", Email: "test@campus.edu", MaxCredits: 30,
	})
	require.NoError(t, err)
	require.NoError(t, f.studentRepo.Save(context.Background(), s))
}

func (f *gpaFixture) addCourse(t *testing.T, id string, credits int) {
	t.Helper()

	c, err := course.NewCourse(course.NewCourseParams{ID: id, Name: "Course " + id, Credits: credits})
	require.NoError(t, err)
	require.NoError(t, f.courseRepo.Save(context.Background(), c))
}

func (f *gpaFixture) enroll(t *testing.T, enrollmentID, studentID, courseID string, grade float64) {
	t.Helper()

	e, err := enrollment.NewEnrollment(enrollmentID, studentID, courseID)
	require.NoError(t, err)
	require.NoError(t, e.AssignGrade(grade))
	require.NoError(t, f.enrollmentRepo.Save(context.Background(), e))
}

func TestGetStudentGPA_WeightedAverage(t *testing.T) {
	ctx := context.Background()
	f := newGPAFixture(t)
	f.addStudent(t, "S1")
	f.addCourse(t, "C1", 3)
	f.addCourse(t, "C2", 4)
	f.addCourse(t, "C3", 3)
	f.enroll(t, "E1", "S1", "C1", 4.0)
	f.enroll(t, "E2", "S1", "C2", 3.5)
	f.enroll(t, "E3", "S1", "C3", 3.0)

	dto, err := f.handler.Handle(ctx, GetStudentGPAQuery{StudentID: "S1"})
	require.NoError(t, err)

	// (4.0*3 + 3.5*4 + 3.0*3) / (3+4+3) = 35 / 10
	assert.InDelta(t, 3.5, dto.GPA, 1e-9)
	assert.Equal(t, 10, dto.TotalCredits)
	assert.Equal(t, 3, dto.Enrollments)
	assert.Equal(t, 0, dto.SkippedOrphans)
	assert.False(t, dto.FromCache)
}

func TestGetStudentGPA_NoEnrollments(t *testing.T) {
	ctx := context.Background()
	f := newGPAFixture(t)
	f.addStudent(t, "S1")

	dto, err := f.handler.Handle(ctx, GetStudentGPAQuery{StudentID: "S1"})
	require.NoError(t, err)

	assert.Equal(t, 0.0, dto.GPA)
	assert.Equal(t, 0, dto.TotalCredits)
	assert.Equal(t, 0, dto.Enrollments)
}

func TestGetStudentGPA_StudentNotFound(t *testing.T) {
	ctx := context.Background()
	f := newGPAFixture(t)

	_, err := f.handler.Handle(ctx, GetStudentGPAQuery{StudentID: "S404"})
	require.Error(t, err)

	assert.True(t, shared.IsNotFound(err))
	assert.Equal(t, "Student not found with ID: S404", err.Error())
}

func TestGetStudentGPA_OrphanedEnrollmentSkipped(t *testing.T) {
	ctx := context.Background()
	f := newGPAFixture(t)
	f.addStudent(t, "S1")
	f.addCourse(t, "C1", 3)
	f.addCourse(t, "C2", 4)
	f.enroll(t, "E1", "S1", "C1", 4.0)
	f.enroll(t, "E2", "S1", "C2", 2.0)

	// Drop C2 from the catalog: its enrollment becomes orphaned and must
	// silently fall out of both the numerator and the denominator.
	require.NoError(t, f.courseRepo.Delete(ctx, "C2"))

	dto, err := f.handler.Handle(ctx, GetStudentGPAQuery{StudentID: "S1"})
	require.NoError(t, err)

	assert.InDelta(t, 4.0, dto.GPA, 1e-9)
	assert.Equal(t, 3, dto.TotalCredits)
	assert.Equal(t, 1, dto.Enrollments)
	assert.Equal(t, 1, dto.SkippedOrphans)
}

func TestGetStudentGPA_AllOrphans(t *testing.T) {
	ctx := context.Background()
	f := newGPAFixture(t)
	f.addStudent(t, "S1")
	f.addCourse(t, "C1", 3)
	f.enroll(t, "E1", "S1", "C1", 3.0)
	require.NoError(t, f.courseRepo.Delete(ctx, "C1"))

	dto, err := f.handler.Handle(ctx, GetStudentGPAQuery{StudentID: "S1"})
	require.NoError(t, err)

	// Every enrollment skipped leaves an empty denominator, not an error
	assert.Equal(t, 0.0, dto.GPA)
	assert.Equal(t, 0, dto.TotalCredits)
	assert.Equal(t, 1, dto.SkippedOrphans)
}

func TestGetStudentGPA_UngradedCountsAsZero(t *testing.T) {
	ctx := context.Background()
	f := newGPAFixture(t)
	f.addStudent(t, "S1")
	f.addCourse(t, "C1", 3)
	f.addCourse(t, "C2", 3)
	f.enroll(t, "E1", "S1", "C1", 4.0)

	// Ungraded enrollment carries its default 0.0 into the average
	e, err := enrollment.NewEnrollment("E2", "S1", "C2")
	require.NoError(t, err)
	require.NoError(t, f.enrollmentRepo.Save(ctx, e))

	dto, err := f.handler.Handle(ctx, GetStudentGPAQuery{StudentID: "S1"})
	require.NoError(t, err)

	// (4.0*3 + 0.0*3) / 6 = 2.0
	assert.InDelta(t, 2.0, dto.GPA, 1e-9)
	assert.Equal(t, 6, dto.TotalCredits)
}

func TestGetStudentGPA_EmptyStudentID(t *testing.T) {
	ctx := context.Background()
	f := newGPAFixture(t)

	_, err := f.handler.Handle(ctx, GetStudentGPAQuery{StudentID: ""})
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))
}
