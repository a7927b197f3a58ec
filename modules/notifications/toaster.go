package notifications

import "sync"

// MemoryToaster buffers the most recent messages so presentation can poll
// and display them. Messages are transient: Drain hands them over exactly
// once.
type MemoryToaster struct {
	mu       sync.Mutex
	messages []string
	limit    int
}

// NewMemoryToaster creates a toaster keeping at most limit undrained
// messages (oldest dropped first). limit <= 0 means unbounded.
func NewMemoryToaster(limit int) *MemoryToaster {
	return &MemoryToaster{limit: limit}
}

// Success implements eventhandlers.Toaster.
func (t *MemoryToaster) Success(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, message)
	if t.limit > 0 && len(t.messages) > t.limit {
		t.messages = t.messages[len(t.messages)-t.limit:]
	}
}

// Drain returns the buffered messages in arrival order and clears the
// buffer.
func (t *MemoryToaster) Drain() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	drained := t.messages
	t.messages = nil
	return drained
}
