package engine

import (
	"fmt"

	"github.com/lixenwraith/pump-clicker/events"
)

// Sink receives read-only projections of game state for rendering
type Sink interface {
	OnCountChanged(count int64)
	OnRateChanged(rate int)
	OnMilestoneAchieved(label string)
	OnProgress(fraction float64)
}

// SinkHandler adapts routed events to a Sink
type SinkHandler struct {
	sink Sink
}

// NewSinkHandler wraps sink as a router handler
func NewSinkHandler(sink Sink) *SinkHandler {
	return &SinkHandler{sink: sink}
}

// EventTypes implements events.Handler
func (h *SinkHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventCountChanged,
		events.EventRateChanged,
		events.EventProgressChanged,
		events.EventMilestoneAchieved,
	}
}

// HandleEvent implements events.Handler
func (h *SinkHandler) HandleEvent(ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.CountPayload:
		h.sink.OnCountChanged(p.Count)
	case *events.RatePayload:
		h.sink.OnRateChanged(p.Rate)
	case *events.ProgressPayload:
		h.sink.OnProgress(p.Fraction)
	case *events.MilestonePayload:
		h.sink.OnMilestoneAchieved(MilestoneLabel(p))
	}
}

// MilestoneLabel returns the display label, threshold value when unlabeled
func MilestoneLabel(p *events.MilestonePayload) string {
	if p.Label != "" {
		return p.Label
	}
	return fmt.Sprintf("%d", p.Threshold)
}
