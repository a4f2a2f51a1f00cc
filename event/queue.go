package event

import (
	"sync/atomic"

	"github.com/lixenwraith/snake-poison/parameter"
)

// EventQueue buffers the events one tick produces until the engine dispatches
// them after releasing its lock. Any goroutine may Push; only the dispatcher
// consumes. A slot is readable once its published flag is set.
//
// When full, the oldest unread events are overwritten. Consumed and drained
// slots are zeroed so payloads of a finished tick or life are not retained.
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // next slot to read
	tail      atomic.Uint64 // next slot to write
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims the tail slot, writes the event, then publishes it
func (eq *EventQueue) Push(event GameEvent) {
	for {
		tail := eq.tail.Load()
		next := tail + 1
		if !eq.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		eq.events[idx] = event
		eq.published[idx].Store(true)

		if head := eq.head.Load(); next-head > parameter.EventQueueSize {
			eq.head.CompareAndSwap(head, next-parameter.EventQueueSize)
		}
		return
	}
}

// window returns the readable range start and length, skipping overwritten slots
func (eq *EventQueue) window() (head, start, n uint64) {
	head = eq.head.Load()
	tail := eq.tail.Load()
	start = head
	if tail-start > parameter.EventQueueSize {
		start = tail - parameter.EventQueueSize
	}
	return head, start, tail - start
}

// ConsumeInto appends pending events to dst in FIFO order and returns it
// Reusing dst across ticks keeps dispatch free of allocations
func (eq *EventQueue) ConsumeInto(dst []GameEvent) []GameEvent {
	base := len(dst)
	for {
		head, start, n := eq.window()
		if n == 0 {
			return dst
		}

		dst = dst[:base]
		read := uint64(0)
		for ; read < n; read++ {
			idx := (start + read) & parameter.EventBufferMask
			if !eq.published[idx].Load() {
				break
			}
			dst = append(dst, eq.events[idx])
		}

		if eq.head.CompareAndSwap(head, start+read) {
			eq.release(start, read)
			return dst
		}
	}
}

// Consume returns all pending events in a new slice, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	events := eq.ConsumeInto(nil)
	if len(events) == 0 {
		return nil
	}
	return events
}

// Drain discards every pending event without copying them out
func (eq *EventQueue) Drain() int {
	for {
		head, start, n := eq.window()
		if n == 0 {
			return 0
		}

		read := uint64(0)
		for read < n && eq.published[(start+read)&parameter.EventBufferMask].Load() {
			read++
		}

		if eq.head.CompareAndSwap(head, start+read) {
			eq.release(start, read)
			return int(read)
		}
	}
}

func (eq *EventQueue) release(start, n uint64) {
	for i := uint64(0); i < n; i++ {
		idx := (start + i) & parameter.EventBufferMask
		eq.events[idx] = GameEvent{}
		eq.published[idx].Store(false)
	}
}

// Len returns the number of unread events, capped at capacity
func (eq *EventQueue) Len() int {
	n := eq.tail.Load() - eq.head.Load()
	if n > parameter.EventQueueSize {
		n = parameter.EventQueueSize
	}
	return int(n)
}
