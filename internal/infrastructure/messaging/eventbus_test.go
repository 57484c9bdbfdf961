package messaging

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/enrollment-hub/internal/domain/shared"
)

func newTestBus(metrics bool) *InMemoryEventBus {
	return NewInMemoryEventBus(InMemoryEventBusConfig{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		EnableMetrics: metrics,
	})
}

func TestEventBus_PublishToSubscriber(t *testing.T) {
	bus := newTestBus(false)

	var received []shared.Event
	err := bus.Subscribe(shared.EventEnrollmentCreated, func(e shared.Event) error {
		received = append(received, e)
		return nil
	})
	require.NoError(t, err)

	event := shared.EnrollmentCreatedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventEnrollmentCreated),
		StudentID: "S1",
		CourseID:  "C1",
		Credits:   3,
	}
	require.NoError(t, bus.Publish(event))

	require.Len(t, received, 1)
	assert.Equal(t, shared.EventEnrollmentCreated, received[0].EventType())
}

func TestEventBus_TypeFiltering(t *testing.T) {
	bus := newTestBus(false)

	calls := 0
	require.NoError(t, bus.Subscribe(shared.EventStudentRegistered, func(shared.Event) error {
		calls++
		return nil
	}))

	all := 0
	require.NoError(t, bus.SubscribeAll(func(shared.Event) error {
		all++
		return nil
	}))

	require.NoError(t, bus.Publish(shared.EnrollmentCreatedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventEnrollmentCreated),
	}))

	// The typed handler does not fire for other event types,
	// the global handler fires for everything
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, all)
}

func TestEventBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := newTestBus(true)

	second := false
	require.NoError(t, bus.Subscribe(shared.EventCourseAdded, func(shared.Event) error {
		return errors.New("boom")
	}))
	require.NoError(t, bus.Subscribe(shared.EventCourseAdded, func(shared.Event) error {
		second = true
		return nil
	}))

	require.NoError(t, bus.Publish(shared.CourseAddedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventCourseAdded),
	}))

	assert.True(t, second)

	successes, failures := bus.Metrics().HandlerStats()
	assert.Equal(t, int64(1), successes)
	assert.Equal(t, int64(1), failures)
	assert.Equal(t, int64(1), bus.Metrics().PublishedCount(shared.EventCourseAdded))
}

func TestEventBus_Closed(t *testing.T) {
	bus := newTestBus(false)
	require.NoError(t, bus.Close())

	err := bus.Publish(shared.EnrollmentCreatedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventEnrollmentCreated),
	})
	assert.ErrorIs(t, err, ErrEventBusClosed)

	err = bus.Subscribe(shared.EventEnrollmentCreated, func(shared.Event) error { return nil })
	assert.ErrorIs(t, err, ErrEventBusClosed)

	// Closing twice is a no-op
	assert.NoError(t, bus.Close())
}
