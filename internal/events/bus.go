package events

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Handler reacts to dispatched events. Handlers mutate the context in place:
// set a redirect, add action groups to the viewpoint, or do nothing for
// events they do not care about.
type Handler interface {
	HandleEvent(ctx context.Context, ec *Context) error
	Priority() int
	ID() string
}

// HandlerFunc adapts a function into a Handler with priority 0
type HandlerFunc struct {
	Name string
	Fn   func(ctx context.Context, ec *Context) error
}

func (h HandlerFunc) ID() string    { return h.Name }
func (h HandlerFunc) Priority() int { return 0 }
func (h HandlerFunc) HandleEvent(ctx context.Context, ec *Context) error {
	return h.Fn(ctx, ec)
}

// Bus delivers named events to subscribed handlers
type Bus struct {
	handlers map[Name][]Handler
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewBus creates a new event bus
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		handlers: make(map[Name][]Handler),
		logger:   logger,
	}
}

// Subscribe adds a handler for an event name. Handlers run by priority and,
// within a priority, in subscription order. Subscribing the same handler ID
// twice for the same name is a no-op.
func (b *Bus) Subscribe(name Name, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, h := range b.handlers[name] {
		if h.ID() == handler.ID() {
			return
		}
	}

	b.handlers[name] = append(b.handlers[name], handler)
	sort.SliceStable(b.handlers[name], func(i, j int) bool {
		return b.handlers[name][i].Priority() < b.handlers[name][j].Priority()
	})

	b.logger.Debug("EventBus: subscribed handler",
		"handler", handler.ID(),
		"event", name,
		"priority", handler.Priority())
}

// Unsubscribe removes a handler from one event name
func (b *Bus) Unsubscribe(name Name, handlerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.unsubscribe(name, handlerID)
}

// UnsubscribeAll removes a handler from every event name
func (b *Bus) UnsubscribeAll(handlerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for name := range b.handlers {
		b.unsubscribe(name, handlerID)
	}
}

// unsubscribe keeps the remaining handlers in order; caller holds the lock
func (b *Bus) unsubscribe(name Name, handlerID string) {
	handlers := b.handlers[name]
	for i, h := range handlers {
		if h.ID() != handlerID {
			continue
		}

		remaining := make([]Handler, 0, len(handlers)-1)
		remaining = append(remaining, handlers[:i]...)
		remaining = append(remaining, handlers[i+1:]...)
		if len(remaining) == 0 {
			delete(b.handlers, name)
		} else {
			b.handlers[name] = remaining
		}

		b.logger.Debug("EventBus: unsubscribed handler", "handler", handlerID, "event", name)
		return
	}
}

// Dispatch delivers ec to every handler subscribed to its event name. An
// event nobody subscribed to passes through untouched.
func (b *Bus) Dispatch(ctx context.Context, ec *Context) error {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[ec.Event()]))
	copy(handlers, b.handlers[ec.Event()])
	b.mu.RUnlock()

	b.logger.Debug("EventBus: dispatching event", "event", ec.Event(), "handlers", len(handlers))

	for _, handler := range handlers {
		if err := handler.HandleEvent(ctx, ec); err != nil {
			return fmt.Errorf("handler %s failed on %s: %w", handler.ID(), ec.Event(), err)
		}
	}

	return nil
}

// HandlerCount returns how many handlers are subscribed to name
func (b *Bus) HandlerCount(name Name) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[name])
}
