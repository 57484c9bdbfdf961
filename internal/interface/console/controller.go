// Package console implements the console-facing presentation layer.
// It is the only place where engine failures are turned into display
// strings; everything below it returns typed errors.
package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/campus-hub/enrollment-hub/internal/application/command"
	"github.com/campus-hub/enrollment-hub/internal/application/query"
	"github.com/campus-hub/enrollment-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONTROLLER
// ══════════════════════════════════════════════════════════════════════════════

// Controller translates engine results and failures into display strings
// prefixed SUCCESS: or ERROR:.
type Controller struct {
	enrollHandler     *command.EnrollStudentHandler
	gradeHandler      *command.AssignGradeHandler
	registerHandler   *command.RegisterStudentHandler
	addCourseHandler  *command.AddCourseHandler
	gpaHandler        *query.GetStudentGPAHandler
	transcriptHandler *query.GetTranscriptHandler
	log               *logger.Logger
}

// NewController creates a new Controller.
func NewController(
	enrollHandler *command.EnrollStudentHandler,
	gradeHandler *command.AssignGradeHandler,
	registerHandler *command.RegisterStudentHandler,
	addCourseHandler *command.AddCourseHandler,
	gpaHandler *query.GetStudentGPAHandler,
	transcriptHandler *query.GetTranscriptHandler,
	log *logger.Logger,
) *Controller {
	if log == nil {
		log = logger.Default()
	}

	return &Controller{
		enrollHandler:     enrollHandler,
		gradeHandler:      gradeHandler,
		registerHandler:   registerHandler,
		addCourseHandler:  addCourseHandler,
		gpaHandler:        gpaHandler,
		transcriptHandler: transcriptHandler,
		log:               log.With(logger.String("component", "console")),
	}
}

// EnrollStudent enrolls a student in a course and formats the outcome.
func (c *Controller) EnrollStudent(ctx context.Context, studentID, courseID string) string {
	result, err := c.enrollHandler.Handle(ctx, command.EnrollStudentCommand{
		StudentID: studentID,
		CourseID:  courseID,
	})
	if err != nil {
		c.log.Warn("enrollment failed",
			logger.String("student_id", studentID),
			logger.String("course_id", courseID),
			logger.Err(err),
		)
		return fmt.Sprintf("ERROR: %s", err.Error())
	}

	c.log.Info("student enrolled",
		logger.String("student_id", studentID),
		logger.String("course_id", courseID),
		logger.Int("credits_taken", int(result.CreditsTaken)),
	)
	return fmt.Sprintf("SUCCESS: Student %s enrolled in course %s", studentID, courseID)
}

// GetStudentGPA computes the student's GPA and formats it to two decimals.
func (c *Controller) GetStudentGPA(ctx context.Context, studentID string) string {
	dto, err := c.gpaHandler.Handle(ctx, query.GetStudentGPAQuery{StudentID: studentID})
	if err != nil {
		c.log.Warn("gpa calculation failed",
			logger.String("student_id", studentID),
			logger.Err(err),
		)
		return fmt.Sprintf("ERROR: %s", err.Error())
	}

	return fmt.Sprintf("GPA for student %s: %.2f", studentID, dto.GPA)
}

// AssignGrade assigns a grade to an enrollment and formats the outcome.
func (c *Controller) AssignGrade(ctx context.Context, studentID, courseID string, grade float64) string {
	_, err := c.gradeHandler.Handle(ctx, command.AssignGradeCommand{
		StudentID: studentID,
		CourseID:  courseID,
		Grade:     grade,
	})
	if err != nil {
		return fmt.Sprintf("ERROR: %s", err.Error())
	}

	return fmt.Sprintf("SUCCESS: Grade %.1f assigned to student %s for course %s", grade, studentID, courseID)
}

// RegisterStudent registers a new student and formats the outcome.
func (c *Controller) RegisterStudent(ctx context.Context, id, name, email string, maxCredits int) string {
	result, err := c.registerHandler.Handle(ctx, command.RegisterStudentCommand{
		ID:         id,
		Name:       name,
		Email:      email,
		MaxCredits: maxCredits,
	})
	if err != nil {
		return fmt.Sprintf("ERROR: %s", err.Error())
	}

	return fmt.Sprintf("SUCCESS: Student %s registered with max credits %d",
		result.Student.ID, int(result.Student.MaxCredits))
}

// AddCourse adds a course to the catalog and formats the outcome.
func (c *Controller) AddCourse(ctx context.Context, id, name string, credits int) string {
	result, err := c.addCourseHandler.Handle(ctx, command.AddCourseCommand{
		ID:      id,
		Name:    name,
		Credits: credits,
	})
	if err != nil {
		return fmt.Sprintf("ERROR: %s", err.Error())
	}

	return fmt.Sprintf("SUCCESS: Course %s added with %d credits", result.Course.ID, result.Course.Credits)
}

// GetTranscript renders the student's transcript.
func (c *Controller) GetTranscript(ctx context.Context, studentID string) string {
	dto, err := c.transcriptHandler.Handle(ctx, query.GetTranscriptQuery{StudentID: studentID})
	if err != nil {
		return fmt.Sprintf("ERROR: %s", err.Error())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Transcript for student %s (%s), credits %d/%d\n",
		dto.StudentID, dto.StudentName, dto.CurrentCredits, dto.MaxCredits)

	if len(dto.Rows) == 0 {
		sb.WriteString("  (no enrollments)")
		return sb.String()
	}

	for _, row := range dto.Rows {
		grade := "not graded"
		if row.Graded {
			grade = fmt.Sprintf("%.2f", row.Grade)
		}
		fmt.Fprintf(&sb, "  %s  %s  %d cr  %s\n", row.CourseID, row.CourseName, row.Credits, grade)
	}

	return strings.TrimRight(sb.String(), "\n")
}
