package eventhandlers_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rai/employee-directory/modules/directory/domain"
	"github.com/rai/employee-directory/modules/notifications/application/eventhandlers"
	"github.com/rai/employee-directory/modules/shared/events"
)

type captureToaster struct {
	messages []string
}

func (c *captureToaster) Success(message string) {
	c.messages = append(c.messages, message)
}

func TestUserEventsHandler_Handle(t *testing.T) {
	toaster := &captureToaster{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := eventhandlers.NewUserEventsHandler(toaster, logger)

	record := domain.Record{ID: 8, FirstName: "Bo", LastName: "Ray"}

	for _, event := range []events.Event{
		domain.NewUserAddedEvent(record),
		domain.NewUserUpdatedEvent(record),
		domain.NewUserDeletedEvent(8),
	} {
		if err := handler.Handle(context.Background(), event); err != nil {
			t.Fatalf("handle failed for %s: %v", event.EventType(), err)
		}
	}

	want := []string{
		"User added successfully!",
		"User updated successfully!",
		"User deleted successfully!",
	}
	if len(toaster.messages) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(toaster.messages))
	}
	for i, message := range want {
		if toaster.messages[i] != message {
			t.Errorf("message %d: expected %q, got %q", i, message, toaster.messages[i])
		}
	}
}

func TestUserEventsHandler_IgnoresUnknownEvents(t *testing.T) {
	toaster := &captureToaster{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := eventhandlers.NewUserEventsHandler(toaster, logger)

	event := events.NewBaseEvent("other.Event", "1")
	if err := handler.Handle(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toaster.messages) != 0 {
		t.Errorf("expected no messages, got %v", toaster.messages)
	}
}
