package events

import (
	"github.com/lixenwraith/pump-clicker/constants"
)

// EventQueue is a bounded FIFO of game events
// Single goroutine: the event loop pushes and consumes
//
// Overflow: oldest events dropped when full
type EventQueue struct {
	events   []GameEvent
	capacity int
	dropped  uint64
}

// NewEventQueue creates a queue of constants.EventQueueSize
func NewEventQueue() *EventQueue {
	return NewEventQueueSize(constants.EventQueueSize)
}

// NewEventQueueSize creates a queue holding at most capacity events
func NewEventQueueSize(capacity int) *EventQueue {
	if capacity <= 0 {
		capacity = constants.EventQueueSize
	}
	return &EventQueue{
		events:   make([]GameEvent, 0, capacity),
		capacity: capacity,
	}
}

// Push appends event, dropping the oldest when full
func (eq *EventQueue) Push(event GameEvent) {
	if len(eq.events) == eq.capacity {
		copy(eq.events, eq.events[1:])
		eq.events = eq.events[:len(eq.events)-1]
		eq.dropped++
	}
	eq.events = append(eq.events, event)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	result := make([]GameEvent, len(eq.events))
	copy(result, eq.events)
	eq.events = eq.events[:0]
	return result
}

// Len returns pending event count
func (eq *EventQueue) Len() int {
	return len(eq.events)
}

// Dropped returns how many events were lost to overflow
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}
