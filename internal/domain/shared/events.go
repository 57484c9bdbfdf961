package shared

import (
	"encoding/json"
	"time"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each event represents something significant that
// happened in the enrollment domain.
const (
	// Student events
	EventStudentRegistered EventType = "student.registered"

	// Course events
	EventCourseAdded EventType = "course.added"

	// Enrollment events
	EventEnrollmentCreated EventType = "enrollment.created"
	EventEnrollmentGraded  EventType = "enrollment.graded"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// Payload returns the event data serialized as JSON.
	Payload() ([]byte, error)
}

// EventHandler processes a single domain event.
type EventHandler func(event Event) error

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	// Publish sends an event to subscribers.
	Publish(event Event) error
}

// EventSubscriber defines the interface for subscribing to events.
type EventSubscriber interface {
	// Subscribe registers a handler for an event type.
	Subscribe(eventType EventType, handler EventHandler) error

	// SubscribeAll registers a handler for all events.
	SubscribeAll(handler EventHandler) error
}

// EventBus combines publishing and subscribing.
type EventBus interface {
	EventPublisher
	EventSubscriber

	// Close shuts the bus down.
	Close() error
}

// BaseEvent provides the common fields of every domain event.
type BaseEvent struct {
	Type EventType `json:"type"`
	At   time.Time `json:"occurred_at"`
}

// EventType returns the type of the event.
func (e BaseEvent) EventType() EventType { return e.Type }

// OccurredAt returns when the event occurred.
func (e BaseEvent) OccurredAt() time.Time { return e.At }

// NewBaseEvent creates the embedded base for a concrete event.
func NewBaseEvent(t EventType) BaseEvent {
	return BaseEvent{Type: t, At: time.Now().UTC()}
}

// StudentRegisteredEvent is published when a new student is registered.
type StudentRegisteredEvent struct {
	BaseEvent
	StudentID  string `json:"student_id"`
	Name       string `json:"name"`
	MaxCredits int    `json:"max_credits"`
}

// Payload returns the event data serialized as JSON.
func (e StudentRegisteredEvent) Payload() ([]byte, error) { return json.Marshal(e) }

// CourseAddedEvent is published when a new course is added to the catalog.
type CourseAddedEvent struct {
	BaseEvent
	CourseID string `json:"course_id"`
	Name     string `json:"name"`
	Credits  int    `json:"credits"`
}

// Payload returns the event data serialized as JSON.
func (e CourseAddedEvent) Payload() ([]byte, error) { return json.Marshal(e) }

// EnrollmentCreatedEvent is published when a student is enrolled in a course.
type EnrollmentCreatedEvent struct {
	BaseEvent
	EnrollmentID string `json:"enrollment_id"`
	StudentID    string `json:"student_id"`
	CourseID     string `json:"course_id"`
	Credits      int    `json:"credits"`
}

// Payload returns the event data serialized as JSON.
func (e EnrollmentCreatedEvent) Payload() ([]byte, error) { return json.Marshal(e) }

// EnrollmentGradedEvent is published when a grade is assigned to an enrollment.
type EnrollmentGradedEvent struct {
	BaseEvent
	StudentID string  `json:"student_id"`
	CourseID  string  `json:"course_id"`
	Grade     float64 `json:"grade"`
}

// Payload returns the event data serialized as JSON.
func (e EnrollmentGradedEvent) Payload() ([]byte, error) { return json.Marshal(e) }
