// Package notifications surfaces transient toast messages for directory
// mutations. It subscribes to domain events rather than being called by the
// directory module - the modules stay decoupled.
package notifications

import (
	"log/slog"

	"github.com/rai/employee-directory/modules/directory/domain"
	"github.com/rai/employee-directory/modules/notifications/application/eventhandlers"
	"github.com/rai/employee-directory/modules/shared/events"
)

// Module represents the notification module entry point.
type Module struct{}

type Config struct {
	EventSubscriber events.Subscriber
	Toaster         eventhandlers.Toaster
	Logger          *slog.Logger
}

// New initializes the notification module and subscribes to the directory
// mutation events.
func New(cfg Config) *Module {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	logger := cfg.Logger.With("module", "notifications")

	handler := eventhandlers.NewUserEventsHandler(cfg.Toaster, logger)

	for _, eventType := range []string{
		domain.UserAddedEventType,
		domain.UserUpdatedEventType,
		domain.UserDeletedEventType,
	} {
		if err := cfg.EventSubscriber.Subscribe(eventType, handler); err != nil {
			logger.Error("failed to subscribe to event",
				slog.String("event_type", eventType), slog.Any("error", err))
		}
	}

	return &Module{}
}
