package status

import (
	"github.com/lixenwraith/pump-clicker/events"
)

// Handler updates collectors from routed game events
type Handler struct {
	reg *Registry
}

// NewHandler creates a router handler writing to reg
func NewHandler(reg *Registry) *Handler {
	return &Handler{reg: reg}
}

// EventTypes implements events.Handler
func (h *Handler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventActivation,
		events.EventBonus,
		events.EventCountChanged,
		events.EventRateChanged,
		events.EventMilestoneAchieved,
		events.EventStateSaved,
		events.EventSaveFailed,
	}
}

// HandleEvent implements events.Handler
func (h *Handler) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventActivation:
		source := "unknown"
		if p, ok := ev.Payload.(*events.ActivationPayload); ok {
			source = p.Source.String()
		}
		h.reg.Activations.WithLabelValues(source).Inc()
	case events.EventBonus:
		if p, ok := ev.Payload.(*events.BonusPayload); ok {
			h.reg.BonusClicks.Add(float64(p.Amount))
		}
	case events.EventCountChanged:
		if p, ok := ev.Payload.(*events.CountPayload); ok {
			h.reg.Count.Set(float64(p.Count))
		}
	case events.EventRateChanged:
		if p, ok := ev.Payload.(*events.RatePayload); ok {
			h.reg.ClicksPerSec.Set(float64(p.Rate))
		}
	case events.EventMilestoneAchieved:
		h.reg.Milestones.Inc()
	case events.EventStateSaved:
		h.reg.SavesTotal.WithLabelValues(ResultOK).Inc()
	case events.EventSaveFailed:
		h.reg.SavesTotal.WithLabelValues(ResultFailed).Inc()
	}
}

// ObserveQueue records the event queue's overflow count
func (h *Handler) ObserveQueue(q interface{ Dropped() uint64 }) {
	h.reg.DroppedEvents.Set(float64(q.Dropped()))
}
