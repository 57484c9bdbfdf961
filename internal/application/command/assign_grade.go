package command

import (
	"context"
	"errors"

	"github.com/campus-hub/enrollment-hub/internal/domain/enrollment"
	"github.com/campus-hub/enrollment-hub/internal/domain/shared"
	"github.com/campus-hub/enrollment-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// ASSIGN GRADE COMMAND
// Assigns a grade to an existing enrollment. Grades default to 0.0 at
// enrollment time and are set later through this command.
// ══════════════════════════════════════════════════════════════════════════════

// AssignGradeCommand contains the data to assign a grade.
type AssignGradeCommand struct {
	// StudentID is the ID of the student.
	StudentID string

	// CourseID is the ID of the course.
	CourseID string

	// Grade is the grade to assign, on the 0.0-4.0 scale.
	Grade float64
}

// Validate validates the command.
func (c AssignGradeCommand) Validate() error {
	if c.StudentID == "" {
		return errors.New("assign_grade: student_id is required")
	}
	if c.CourseID == "" {
		return errors.New("assign_grade: course_id is required")
	}
	if c.Grade < enrollment.MinGrade || c.Grade > enrollment.MaxGrade {
		return enrollment.ErrInvalidGrade
	}
	return nil
}

// AssignGradeResult contains the result of a grade assignment.
type AssignGradeResult struct {
	// Enrollment is the updated enrollment record.
	Enrollment *enrollment.Enrollment
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// AssignGradeHandler handles the AssignGradeCommand.
type AssignGradeHandler struct {
	studentRepo    student.Repository
	enrollmentRepo enrollment.Repository
	gpaCache       enrollment.GPACache
	eventPublisher shared.EventPublisher
}

// NewAssignGradeHandler creates a new AssignGradeHandler.
// gpaCache and eventPublisher are optional and may be nil.
func NewAssignGradeHandler(
	studentRepo student.Repository,
	enrollmentRepo enrollment.Repository,
	gpaCache enrollment.GPACache,
	eventPublisher shared.EventPublisher,
) *AssignGradeHandler {
	return &AssignGradeHandler{
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
		gpaCache:       gpaCache,
		eventPublisher: eventPublisher,
	}
}

// Handle executes the grade assignment.
func (h *AssignGradeHandler) Handle(ctx context.Context, cmd AssignGradeCommand) (*AssignGradeResult, error) {
	if err := cmd.Validate(); err != nil {
		if errors.Is(err, enrollment.ErrInvalidGrade) {
			return nil, shared.NewDomainError("enrollment", "AssignGrade", shared.ErrValueOutOfRange, err.Error())
		}
		return nil, shared.WrapError("enrollment", "AssignGrade", shared.ErrInvalidInput, "validation failed", err)
	}

	stud, err := h.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		if errors.Is(err, student.ErrStudentNotFound) {
			return nil, shared.StudentNotFound("AssignGrade", cmd.StudentID)
		}
		return nil, shared.WrapError("student", "AssignGrade", nil, "failed to get student", err)
	}

	enr, err := h.enrollmentRepo.GetByStudentAndCourse(ctx, stud.ID, cmd.CourseID)
	if err != nil {
		if errors.Is(err, enrollment.ErrEnrollmentNotFound) {
			return nil, shared.EnrollmentNotFound("AssignGrade", stud.ID, cmd.CourseID)
		}
		return nil, shared.WrapError("enrollment", "AssignGrade", nil, "failed to get enrollment", err)
	}

	if err := enr.AssignGrade(cmd.Grade); err != nil {
		return nil, shared.NewDomainError("enrollment", "AssignGrade", shared.ErrValueOutOfRange, err.Error())
	}

	if err := h.enrollmentRepo.Save(ctx, enr); err != nil {
		return nil, shared.WrapError("enrollment", "AssignGrade", nil, "failed to save enrollment", err)
	}

	// The grade feeds straight into the GPA numerator; drop any cached value.
	if h.gpaCache != nil {
		_ = h.gpaCache.Invalidate(ctx, stud.ID)
	}

	if h.eventPublisher != nil {
		_ = h.eventPublisher.Publish(shared.EnrollmentGradedEvent{
			BaseEvent: shared.NewBaseEvent(shared.EventEnrollmentGraded),
			StudentID: enr.StudentID,
			CourseID:  enr.CourseID,
			Grade:     enr.Grade,
		})
	}

	return &AssignGradeResult{Enrollment: enr}, nil
}
