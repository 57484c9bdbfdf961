package command

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/enrollment-hub/internal/domain/shared"
	"github.com/campus-hub/enrollment-hub/internal/infrastructure/persistence/memory"
)

func TestRegisterStudent_MintsIDWhenEmpty(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStudentRepository()
	h := NewRegisterStudentHandler(repo, nil)

	result, err := h.Handle(ctx, RegisterStudentCommand{
		Name: "Alice", Email: "alice@campus.edu", MaxCredits: 15,
	})
	require.NoError(t, err)

	_, err = uuid.Parse(result.Student.ID)
	assert.NoError(t, err, "minted ID must be a valid UUID")
}

func TestRegisterStudent_DuplicateRejected(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStudentRepository()
	h := NewRegisterStudentHandler(repo, nil)

	cmd := RegisterStudentCommand{ID: "S1", Name: "Alice", Email: "alice@campus.edu", MaxCredits: 15}
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestRegisterStudent_InvalidInput(t *testing.T) {
	ctx := context.Background()
	h := NewRegisterStudentHandler(memory.NewStudentRepository(), nil)

	_, err := h.Handle(ctx, RegisterStudentCommand{
		ID: "S1", Name: "", Email: "alice@campus.edu", MaxCredits: 15,
	})
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))

	_, err = h.Handle(ctx, RegisterStudentCommand{
		ID: "S1", Name: "Alice", Email: "alice@campus.edu", MaxCredits: 0,
	})
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))
}

func TestAddCourse(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCourseRepository()
	h := NewAddCourseHandler(repo, nil)

	result, err := h.Handle(ctx, AddCourseCommand{ID: "C1", Name: "Algorithms", Credits: 3})
	require.NoError(t, err)
	assert.Equal(t, "C1", result.Course.ID)
	assert.Equal(t, 3, result.Course.Credits)

	_, err = h.Handle(ctx, AddCourseCommand{ID: "C1", Name: "Algorithms", Credits: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)

	_, err = h.Handle(ctx, AddCourseCommand{ID: "C2", Name: "Databases", Credits: 0})
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))
}
