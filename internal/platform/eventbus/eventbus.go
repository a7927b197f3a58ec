// Package eventbus provides an in-memory event bus for inter-module
// communication. For a multi-process deployment this would be replaced with
// a message broker by adopting the outbox pattern.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rai/employee-directory/modules/shared/events"
)

// InMemoryEventBus implements a simple in-memory event bus. Publish blocks
// until every handler has run; handlers for the same event run concurrently.
type InMemoryEventBus struct {
	mu       sync.RWMutex
	handlers map[string][]events.Handler
	logger   *slog.Logger
}

func New(logger *slog.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		handlers: make(map[string][]events.Handler),
		logger:   logger,
	}
}

// Publish implements events.Publisher.
// A failing handler is logged and does not stop the others.
func (b *InMemoryEventBus) Publish(ctx context.Context, event events.Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.EventType()]
	b.mu.RUnlock()

	b.logger.Debug("publishing event",
		slog.String("event_type", event.EventType()),
		slog.String("event_id", event.EventID()),
		slog.Int("handler_count", len(handlers)))

	g, ctx := errgroup.WithContext(ctx)
	for _, handler := range handlers {
		handler := handler
		g.Go(func() error {
			if err := handler.Handle(ctx, event); err != nil {
				b.logger.Error("event handler failed",
					slog.String("event_type", event.EventType()),
					slog.String("event_id", event.EventID()),
					slog.Any("error", err))
			}
			return nil
		})
	}

	return g.Wait()
}

// Subscribe implements events.Subscriber.
func (b *InMemoryEventBus) Subscribe(eventType string, handler events.Handler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.logger.Debug("subscribed to event", slog.String("event_type", eventType))

	return nil
}

// HandlerFunc is an adapter to use ordinary functions as event handlers.
type HandlerFunc func(ctx context.Context, event events.Event) error

func (f HandlerFunc) Handle(ctx context.Context, event events.Event) error {
	return f(ctx, event)
}

// Compile-time interface checks.
var (
	_ events.Publisher  = (*InMemoryEventBus)(nil)
	_ events.Subscriber = (*InMemoryEventBus)(nil)
)
