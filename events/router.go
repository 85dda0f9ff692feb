package events

// Handler processes specific event types
// Collaborators (renderer, audio, metrics) implement this to receive routed events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously during dispatch
	HandleEvent(event GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Events pushed by a handler during dispatch are delivered in the same DispatchAll
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes to handlers in FIFO order
// Returns the number of events consumed
func (r *Router) DispatchAll() int {
	total := 0
	for {
		batch := r.queue.Consume()
		if len(batch) == 0 {
			return total
		}
		for _, ev := range batch {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
		total += len(batch)
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
