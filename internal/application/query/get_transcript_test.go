package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/enrollment-hub/internal/domain/shared"
)

func newTranscriptHandler(f *gpaFixture) *GetTranscriptHandler {
	return NewGetTranscriptHandler(f.studentRepo, f.courseRepo, f.enrollmentRepo)
}

func TestGetTranscript(t *testing.T) {
	ctx := context.Background()
	f := newGPAFixture(t)
	f.addStudent(t, "S1")
	f.addCourse(t, "C1", 3)
	f.addCourse(t, "C2", 4)
	f.enroll(t, "E1", "S1", "C1", 3.5)
	f.enroll(t, "E2", "S1", "C2", 4.0)

	h := newTranscriptHandler(f)
	dto, err := h.Handle(ctx, GetTranscriptQuery{StudentID: "S1"})
	require.NoError(t, err)

	assert.Equal(t, "S1", dto.StudentID)
	require.Len(t, dto.Rows, 2)

	assert.Equal(t, "C1", dto.Rows[0].CourseID)
	assert.Equal(t, 3.5, dto.Rows[0].Grade)
	assert.True(t, dto.Rows[0].Graded)
	assert.InDelta(t, 10.5, dto.Rows[0].GradePoints, 1e-9)

	assert.Equal(t, "C2", dto.Rows[1].CourseID)
}

func TestGetTranscript_OrphanSkipped(t *testing.T) {
	ctx := context.Background()
	f := newGPAFixture(t)
	f.addStudent(t, "S1")
	f.addCourse(t, "C1", 3)
	f.enroll(t, "E1", "S1", "C1", 3.0)
	require.NoError(t, f.courseRepo.Delete(ctx, "C1"))

	h := newTranscriptHandler(f)
	dto, err := h.Handle(ctx, GetTranscriptQuery{StudentID: "S1"})
	require.NoError(t, err)
	assert.Empty(t, dto.Rows)
}

func TestGetTranscript_StudentNotFound(t *testing.T) {
	ctx := context.Background()
	f := newGPAFixture(t)

	h := newTranscriptHandler(f)
	_, err := h.Handle(ctx, GetTranscriptQuery{StudentID: "S404"})
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
}
