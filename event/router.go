// Package event carries game notifications from the engine to its
// collaborators: a lock-free queue filled during a tick and a router that
// dispatches the queue to subscribers once the tick releases its lock.
package event

import "sync"

// Handler processes specific event types within a context T
type Handler[T any] interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(ctx T, event GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// HandlerFunc adapts a function subscribed to a fixed set of types
type HandlerFunc[T any] struct {
	Types []EventType
	Fn    func(ctx T, event GameEvent)
}

func (h HandlerFunc[T]) HandleEvent(ctx T, event GameEvent) { h.Fn(ctx, event) }
func (h HandlerFunc[T]) EventTypes() []EventType            { return h.Types }

// Router dispatches events to registered handlers
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Registration may happen from any goroutine; dispatch is single-threaded
type Router[T any] struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler[T]
	queue    *EventQueue
	buf      []GameEvent // reused by DispatchAll
}

// NewRouter creates a router attached to the given queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router[T]) Register(handler Handler[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes to handlers in FIFO order
// Returns the number of events consumed
func (r *Router[T]) DispatchAll(ctx T) int {
	r.buf = r.queue.ConsumeInto(r.buf[:0])
	events := r.buf
	if len(events) == 0 {
		return 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
	clear(events)
	return len(events)
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router[T]) HasHandlers(t EventType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router[T]) HandlerCount(t EventType) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[t])
}

// Reset drops every subscription
func (r *Router[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.handlers)
}
