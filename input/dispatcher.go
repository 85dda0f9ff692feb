package input

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pump-clicker/engine"
	"github.com/lixenwraith/pump-clicker/events"
)

// Target receives normalized input, *engine.Game implements it
type Target interface {
	Activate(source events.Source) engine.ActivationResult
	SecretSequence() engine.ActivationResult
}

// PointerKind discriminates pointer gestures on the button
type PointerKind uint8

const (
	PointerClick PointerKind = iota
	PointerTouchStart
	PointerContextMenu
)

// PointerEvent is a pointer gesture already hit-tested against the button
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// Dispatcher collapses pointer, touch and keyboard input into one activation per action
// and runs the secret sequence detector on every key
//
// Return values report whether the input was consumed, the binding layer suppresses
// the environment's default action (scroll, select, context menu) for consumed input
type Dispatcher struct {
	target   Target
	detector *SequenceDetector
}

// NewDispatcher creates a dispatcher watching sequence, nil uses SecretSequence
func NewDispatcher(target Target, sequence []KeyCode) *Dispatcher {
	if sequence == nil {
		sequence = SecretSequence
	}
	return &Dispatcher{
		target:   target,
		detector: NewSequenceDetector(sequence),
	}
}

// OnPointer activates on click or touch start, context menu is swallowed
func (d *Dispatcher) OnPointer(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerClick:
		d.target.Activate(events.SourcePointer)
		return true
	case PointerTouchStart:
		d.target.Activate(events.SourceTouch)
		return true
	case PointerContextMenu:
		return true
	default:
		return false
	}
}

// OnKey activates on Space/Enter, then feeds the secret detector
func (d *Dispatcher) OnKey(code KeyCode) bool {
	consumed := false
	if code.IsActivation() {
		d.target.Activate(events.SourceKeyboard)
		consumed = true
	}

	if d.detector.Feed(code) {
		logrus.Debug("secret sequence matched")
		d.target.SecretSequence()
	}
	return consumed
}
