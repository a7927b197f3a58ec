// Package eventhandlers turns directory mutation events into transient
// user-facing messages.
package eventhandlers

import (
	"context"
	"log/slog"

	"github.com/rai/employee-directory/modules/directory/domain"
	"github.com/rai/employee-directory/modules/shared/events"
)

// Toaster receives transient success messages. Implementations decide the
// presentation (popup, log line, buffer); messages are fire-and-forget and
// never part of persisted state.
type Toaster interface {
	Success(message string)
}

// Toast messages for each mutation.
const (
	userAddedMessage   = "User added successfully!"
	userUpdatedMessage = "User updated successfully!"
	userDeletedMessage = "User deleted successfully!"
)

// UserEventsHandler handles directory mutation events by emitting toasts.
type UserEventsHandler struct {
	toaster Toaster
	logger  *slog.Logger
}

func NewUserEventsHandler(toaster Toaster, logger *slog.Logger) *UserEventsHandler {
	return &UserEventsHandler{toaster: toaster, logger: logger}
}

// Handle maps the event type to its toast message. Unknown event types are
// ignored.
func (h *UserEventsHandler) Handle(ctx context.Context, event events.Event) error {
	var message string
	switch event.EventType() {
	case domain.UserAddedEventType:
		message = userAddedMessage
	case domain.UserUpdatedEventType:
		message = userUpdatedMessage
	case domain.UserDeletedEventType:
		message = userDeletedMessage
	default:
		return nil
	}

	h.logger.Info("toast",
		slog.String("message", message),
		slog.String("user_id", event.AggregateID()))

	if h.toaster != nil {
		h.toaster.Success(message)
	}
	return nil
}
