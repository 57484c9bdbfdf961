package command

import (
	"context"

	"github.com/campus-hub/enrollment-hub/internal/domain/course"
	"github.com/campus-hub/enrollment-hub/internal/domain/shared"

	"github.com/google/uuid"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD COURSE COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// AddCourseCommand contains the data to add a course to the catalog.
type AddCourseCommand struct {
	// ID is the course identifier. Minted if empty.
	ID string

	// Name is the course name.
	Name string

	// Credits is the course credit weight.
	Credits int
}

// AddCourseResult contains the result of adding a course.
type AddCourseResult struct {
	// Course is the added course.
	Course *course.Course
}

// AddCourseHandler handles the AddCourseCommand.
type AddCourseHandler struct {
	courseRepo     course.Repository
	eventPublisher shared.EventPublisher
}

// NewAddCourseHandler creates a new AddCourseHandler.
func NewAddCourseHandler(courseRepo course.Repository, eventPublisher shared.EventPublisher) *AddCourseHandler {
	return &AddCourseHandler{
		courseRepo:     courseRepo,
		eventPublisher: eventPublisher,
	}
}

// Handle adds a course to the catalog.
func (h *AddCourseHandler) Handle(ctx context.Context, cmd AddCourseCommand) (*AddCourseResult, error) {
	id := cmd.ID
	if id == "" {
		id = uuid.NewString()
	}

	exists, err := h.courseRepo.Exists(ctx, id)
	if err != nil {
		return nil, shared.WrapError("course", "Add", nil, "failed to check course", err)
	}
	if exists {
		return nil, shared.NewDomainError("course", "Add", shared.ErrAlreadyExists,
			"course already exists with ID: "+id)
	}

	crs, err := course.NewCourse(course.NewCourseParams{
		ID:      id,
		Name:    cmd.Name,
		Credits: cmd.Credits,
	})
	if err != nil {
		return nil, shared.WrapError("course", "Add", shared.ErrValidation, "invalid course", err)
	}

	if err := h.courseRepo.Save(ctx, crs); err != nil {
		return nil, shared.WrapError("course", "Add", nil, "failed to save course", err)
	}

	if h.eventPublisher != nil {
		_ = h.eventPublisher.Publish(shared.CourseAddedEvent{
			BaseEvent: shared.NewBaseEvent(shared.EventCourseAdded),
			CourseID:  crs.ID,
			Name:      crs.Name,
			Credits:   crs.Credits,
		})
	}

	return &AddCourseResult{Course: crs}, nil
}
