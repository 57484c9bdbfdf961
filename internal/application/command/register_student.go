package command

import (
	"context"

	"github.com/campus-hub/enrollment-hub/internal/domain/shared"
	"github.com/campus-hub/enrollment-hub/internal/domain/student"

	"github.com/google/uuid"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER STUDENT COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// RegisterStudentCommand contains the data to register a new student.
type RegisterStudentCommand struct {
	// ID is the student identifier. Minted if empty.
	ID string

	// Name is the display name.
	Name string

	// Email is the contact email.
	Email string

	// MaxCredits is the immutable credit allowance.
	MaxCredits int
}

// RegisterStudentResult contains the result of a registration.
type RegisterStudentResult struct {
	// Student is the registered student.
	Student *student.Student
}

// RegisterStudentHandler handles the RegisterStudentCommand.
type RegisterStudentHandler struct {
	studentRepo    student.Repository
	eventPublisher shared.EventPublisher
}

// NewRegisterStudentHandler creates a new RegisterStudentHandler.
func NewRegisterStudentHandler(studentRepo student.Repository, eventPublisher shared.EventPublisher) *RegisterStudentHandler {
	return &RegisterStudentHandler{
		studentRepo:    studentRepo,
		eventPublisher: eventPublisher,
	}
}

// Handle registers a new student with zero current credits.
func (h *RegisterStudentHandler) Handle(ctx context.Context, cmd RegisterStudentCommand) (*RegisterStudentResult, error) {
	id := cmd.ID
	if id == "" {
		id = uuid.NewString()
	}

	exists, err := h.studentRepo.Exists(ctx, id)
	if err != nil {
		return nil, shared.WrapError("student", "Register", nil, "failed to check student", err)
	}
	if exists {
		return nil, shared.NewDomainError("student", "Register", shared.ErrAlreadyExists,
			"student already exists with ID: "+id)
	}

	stud, err := student.NewStudent(student.NewStudentParams{
		ID:         id,
		Name:       cmd.Name,
		Email:      student.Email(cmd.Email),
		MaxCredits: student.Credits(cmd.MaxCredits),
	})
	if err != nil {
		return nil, shared.WrapError("student", "Register", shared.ErrValidation, "invalid student", err)
	}

	if err := h.studentRepo.Save(ctx, stud); err != nil {
		return nil, shared.WrapError("student", "Register", nil, "failed to save student", err)
	}

	if h.eventPublisher != nil {
		_ = h.eventPublisher.Publish(shared.StudentRegisteredEvent{
			BaseEvent:  shared.NewBaseEvent(shared.EventStudentRegistered),
			StudentID:  stud.ID,
			Name:       stud.Name,
			MaxCredits: int(stud.MaxCredits),
		})
	}

	return &RegisterStudentResult{Student: stud}, nil
}
