package events

import (
	"testing"
)

// recordingHandler records the event types it receives
type recordingHandler struct {
	name  string
	types []EventType
	log   *[]string
	onEv  func(GameEvent)
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func (h *recordingHandler) HandleEvent(ev GameEvent) {
	*h.log = append(*h.log, h.name+":"+ev.Type.String())
	if h.onEv != nil {
		h.onEv(ev)
	}
}

func TestEventQueue_FIFO(t *testing.T) {
	q := NewEventQueueSize(4)
	q.Push(GameEvent{Type: EventActivation})
	q.Push(GameEvent{Type: EventCountChanged})
	q.Push(GameEvent{Type: EventRateChanged})

	if q.Len() != 3 {
		t.Fatalf("Expected 3 pending, got %d", q.Len())
	}

	got := q.Consume()
	want := []EventType{EventActivation, EventCountChanged, EventRateChanged}
	for i, ev := range got {
		if ev.Type != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], ev.Type)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue after Consume, got %d", q.Len())
	}
	if q.Consume() != nil {
		t.Error("Expected nil from empty queue")
	}
}

func TestEventQueue_OverflowDropsOldest(t *testing.T) {
	q := NewEventQueueSize(2)
	q.Push(GameEvent{Type: EventActivation})
	q.Push(GameEvent{Type: EventBonus})
	q.Push(GameEvent{Type: EventCountChanged})

	if q.Dropped() != 1 {
		t.Errorf("Expected 1 dropped, got %d", q.Dropped())
	}
	got := q.Consume()
	if len(got) != 2 || got[0].Type != EventBonus || got[1].Type != EventCountChanged {
		t.Errorf("Expected [bonus count], got %v", got)
	}
}

func TestEventQueue_DefaultCapacity(t *testing.T) {
	q := NewEventQueueSize(0)
	if q.capacity <= 0 {
		t.Errorf("Expected default capacity, got %d", q.capacity)
	}
}

func TestRouter_RegistrationOrder(t *testing.T) {
	var log []string
	q := NewEventQueue()
	r := NewRouter(q)
	r.Register(&recordingHandler{name: "a", types: []EventType{EventCountChanged}, log: &log})
	r.Register(&recordingHandler{name: "b", types: []EventType{EventCountChanged, EventRateChanged}, log: &log})

	if r.HandlerCount(EventCountChanged) != 2 || r.HandlerCount(EventRateChanged) != 1 {
		t.Fatalf("Unexpected handler counts")
	}

	q.Push(GameEvent{Type: EventCountChanged})
	q.Push(GameEvent{Type: EventRateChanged})
	q.Push(GameEvent{Type: EventStateSaved})
	if n := r.DispatchAll(); n != 3 {
		t.Errorf("Expected 3 consumed, got %d", n)
	}

	want := []string{"a:CountChanged", "b:CountChanged", "b:RateChanged"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Dispatch %d: expected %s, got %s", i, want[i], log[i])
		}
	}
}

func TestRouter_EventsPushedDuringDispatch(t *testing.T) {
	var log []string
	q := NewEventQueue()
	r := NewRouter(q)
	r.Register(&recordingHandler{
		name:  "chain",
		types: []EventType{EventActivation, EventCountChanged},
		log:   &log,
		onEv: func(ev GameEvent) {
			if ev.Type == EventActivation {
				q.Push(GameEvent{Type: EventCountChanged})
			}
		},
	})

	q.Push(GameEvent{Type: EventActivation})
	if n := r.DispatchAll(); n != 2 {
		t.Errorf("Expected 2 consumed, got %d", n)
	}
	if len(log) != 2 || log[1] != "chain:CountChanged" {
		t.Errorf("Expected follow-up event delivered, got %v", log)
	}
	if q.Len() != 0 {
		t.Errorf("Expected drained queue, got %d", q.Len())
	}
}

func TestEventTypeString(t *testing.T) {
	if EventMilestoneAchieved.String() != "MilestoneAchieved" {
		t.Errorf("Unexpected name %q", EventMilestoneAchieved.String())
	}
	if SourceTouch.String() != "touch" {
		t.Errorf("Unexpected source %q", SourceTouch.String())
	}
}
