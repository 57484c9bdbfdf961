// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"errors"
	"time"

	"github.com/campus-hub/enrollment-hub/internal/domain/course"
	"github.com/campus-hub/enrollment-hub/internal/domain/enrollment"
	"github.com/campus-hub/enrollment-hub/internal/domain/shared"
	"github.com/campus-hub/enrollment-hub/internal/domain/student"

	"github.com/google/uuid"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENROLL STUDENT COMMAND
// The core business rule of the system: enroll a student in a course,
// subject to the student's credit limit. Validations run in strict order
// and the first failure wins; side effects happen only on the success path.
// ══════════════════════════════════════════════════════════════════════════════

// EnrollStudentCommand contains the data to enroll a student in a course.
type EnrollStudentCommand struct {
	// StudentID is the ID of the student to enroll.
	StudentID string

	// CourseID is the ID of the course to enroll into.
	CourseID string
}

// Validate validates the command.
func (c EnrollStudentCommand) Validate() error {
	if c.StudentID == "" {
		return errors.New("enroll_student: student_id is required")
	}
	if c.CourseID == "" {
		return errors.New("enroll_student: course_id is required")
	}
	return nil
}

// EnrollStudentResult contains the result of a successful enrollment.
type EnrollStudentResult struct {
	// Enrollment is the created enrollment record.
	Enrollment *enrollment.Enrollment

	// CreditsTaken is the student's credit total after enrollment.
	CreditsTaken student.Credits

	// EnrolledAt is when the enrollment happened.
	EnrolledAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// EnrollStudentHandler handles the EnrollStudentCommand.
type EnrollStudentHandler struct {
	studentRepo    student.Repository
	courseRepo     course.Repository
	enrollmentRepo enrollment.Repository
	gpaCache       enrollment.GPACache
	eventPublisher shared.EventPublisher
}

// NewEnrollStudentHandler creates a new EnrollStudentHandler.
// gpaCache and eventPublisher are optional and may be nil.
func NewEnrollStudentHandler(
	studentRepo student.Repository,
	courseRepo course.Repository,
	enrollmentRepo enrollment.Repository,
	gpaCache enrollment.GPACache,
	eventPublisher shared.EventPublisher,
) *EnrollStudentHandler {
	return &EnrollStudentHandler{
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		gpaCache:       gpaCache,
		eventPublisher: eventPublisher,
	}
}

// Handle executes the enrollment.
//
// Business rules, checked in order:
//  1. Student must exist.
//  2. Course must exist.
//  3. The course must fit within the student's credit limit
//     (reaching exactly MaxCredits is allowed).
//
// Any failure leaves all repositories unchanged: no enrollment is saved
// and no credits are mutated.
func (h *EnrollStudentHandler) Handle(ctx context.Context, cmd EnrollStudentCommand) (*EnrollStudentResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, shared.WrapError("enrollment", "Enroll", shared.ErrInvalidInput, "validation failed", err)
	}

	// Rule 1: the student must exist.
	stud, err := h.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		if errors.Is(err, student.ErrStudentNotFound) {
			return nil, shared.StudentNotFound("Enroll", cmd.StudentID)
		}
		return nil, shared.WrapError("student", "Enroll", nil, "failed to get student", err)
	}

	// Rule 2: the course must exist.
	crs, err := h.courseRepo.GetByID(ctx, cmd.CourseID)
	if err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			return nil, shared.CourseNotFound("Enroll", cmd.CourseID)
		}
		return nil, shared.WrapError("course", "Enroll", nil, "failed to get course", err)
	}

	// Rule 3: the credit limit. Strictly greater fails; equality is fine.
	if !stud.CanTake(student.Credits(crs.Credits)) {
		return nil, shared.CreditLimitExceeded("Enroll")
	}

	enr, err := enrollment.NewEnrollment(uuid.NewString(), stud.ID, crs.ID)
	if err != nil {
		return nil, shared.WrapError("enrollment", "Enroll", shared.ErrInvalidEntity, "failed to create enrollment", err)
	}

	if err := h.enrollmentRepo.Save(ctx, enr); err != nil {
		return nil, shared.WrapError("enrollment", "Enroll", nil, "failed to save enrollment", err)
	}

	if err := stud.AddCredits(student.Credits(crs.Credits)); err != nil {
		return nil, shared.WrapError("student", "Enroll", nil, "failed to add credits", err)
	}

	if err := h.studentRepo.Save(ctx, stud); err != nil {
		return nil, shared.WrapError("student", "Enroll", nil, "failed to save student", err)
	}

	// A fresh enrollment changes the GPA denominator once graded; drop any
	// cached value. Best effort.
	if h.gpaCache != nil {
		_ = h.gpaCache.Invalidate(ctx, stud.ID)
	}

	h.publishEnrolled(enr, crs.Credits)

	return &EnrollStudentResult{
		Enrollment:   enr,
		CreditsTaken: stud.CurrentCredits,
		EnrolledAt:   enr.EnrolledAt,
	}, nil
}

// publishEnrolled publishes the enrollment.created event. Best effort:
// publishing failures never surface to the caller.
func (h *EnrollStudentHandler) publishEnrolled(enr *enrollment.Enrollment, credits int) {
	if h.eventPublisher == nil {
		return
	}

	_ = h.eventPublisher.Publish(shared.EnrollmentCreatedEvent{
		BaseEvent:    shared.NewBaseEvent(shared.EventEnrollmentCreated),
		EnrollmentID: enr.ID,
		StudentID:    enr.StudentID,
		CourseID:     enr.CourseID,
		Credits:      credits,
	})
}
