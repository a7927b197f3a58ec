package eventbus_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/rai/employee-directory/internal/platform/eventbus"
	"github.com/rai/employee-directory/modules/shared/events"
)

func newBus() *eventbus.InMemoryEventBus {
	return eventbus.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPublish_DeliversToAllSubscribers(t *testing.T) {
	bus := newBus()

	var mu sync.Mutex
	var seen []string

	for _, name := range []string{"first", "second"} {
		name := name
		err := bus.Subscribe("test.Event", eventbus.HandlerFunc(func(ctx context.Context, event events.Event) error {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, name)
			return nil
		}))
		if err != nil {
			t.Fatalf("subscribe failed: %v", err)
		}
	}

	event := events.NewBaseEvent("test.Event", "42")
	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if len(seen) != 2 {
		t.Errorf("expected 2 deliveries, got %d", len(seen))
	}
}

func TestPublish_HandlerFailureDoesNotStopOthers(t *testing.T) {
	bus := newBus()

	delivered := false
	bus.Subscribe("test.Event", eventbus.HandlerFunc(func(ctx context.Context, event events.Event) error {
		return errors.New("boom")
	}))
	bus.Subscribe("test.Event", eventbus.HandlerFunc(func(ctx context.Context, event events.Event) error {
		delivered = true
		return nil
	}))

	if err := bus.Publish(context.Background(), events.NewBaseEvent("test.Event", "1")); err != nil {
		t.Fatalf("publish must absorb handler errors, got %v", err)
	}
	if !delivered {
		t.Error("expected the second handler to run despite the first failing")
	}
}

func TestPublish_NoSubscribers(t *testing.T) {
	bus := newBus()

	if err := bus.Publish(context.Background(), events.NewBaseEvent("test.Unknown", "1")); err != nil {
		t.Fatalf("publishing with no subscribers must succeed, got %v", err)
	}
}
