package audio

import (
	"github.com/lixenwraith/pump-clicker/events"
)

// Player is the feedback surface FeedbackHandler drives
type Player interface {
	PlayClick()
	PlayAchievement()
}

// FeedbackHandler plays sounds for routed game events
type FeedbackHandler struct {
	player Player
}

// NewFeedbackHandler wraps player as a router handler
func NewFeedbackHandler(player Player) *FeedbackHandler {
	return &FeedbackHandler{player: player}
}

// EventTypes implements events.Handler
func (h *FeedbackHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventActivation, events.EventMilestoneAchieved}
}

// HandleEvent implements events.Handler
func (h *FeedbackHandler) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventActivation:
		h.player.PlayClick()
	case events.EventMilestoneAchieved:
		h.player.PlayAchievement()
	}
}
