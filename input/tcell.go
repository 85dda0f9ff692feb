package input

import (
	"github.com/gdamore/tcell/v2"
)

// Rect is a screen-cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// KeyFromTcell maps a tcell key to a KeyCode
// Keys without a named code get a distinct terminal code so they still break a key run
func KeyFromTcell(key tcell.Key, r rune) KeyCode {
	switch key {
	case tcell.KeyRune:
		return RuneKey(r)
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return KeyQuit
	}
	if key < 0 || KeyCode(key) >= keyRuneBase-keyTerminalBase {
		return KeyNone
	}
	return keyTerminalBase + KeyCode(key)
}

// TerminalBinding feeds tcell events to a Dispatcher
// Mouse presses are edge-detected, tcell reports held buttons on every motion event
type TerminalBinding struct {
	dispatcher *Dispatcher
	button     func() Rect
	held       tcell.ButtonMask
}

// NewTerminalBinding binds dispatcher to the button rectangle reported by button
func NewTerminalBinding(dispatcher *Dispatcher, button func() Rect) *TerminalBinding {
	return &TerminalBinding{
		dispatcher: dispatcher,
		button:     button,
	}
}

// HandleEvent routes one terminal event, returns false when the user asked to quit
func (b *TerminalBinding) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return b.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		b.HandleMouse(x, y, ev.Buttons())
	}
	return true
}

// HandleKey routes a key press, returns false on quit keys
// Every other key reaches the dispatcher, unmapped keys included
func (b *TerminalBinding) HandleKey(key tcell.Key, r rune) bool {
	code := KeyFromTcell(key, r)
	if code == KeyQuit || code == KeyEscape {
		return false
	}
	b.dispatcher.OnKey(code)
	return true
}

// HandleMouse routes a mouse state sample, only newly pressed buttons inside the button count
func (b *TerminalBinding) HandleMouse(x, y int, buttons tcell.ButtonMask) {
	pressed := buttons &^ b.held
	b.held = buttons

	if !b.button().Contains(x, y) {
		return
	}
	if pressed&tcell.Button1 != 0 {
		b.dispatcher.OnPointer(PointerEvent{Kind: PointerClick, X: x, Y: y})
	}
	if pressed&tcell.Button2 != 0 {
		b.dispatcher.OnPointer(PointerEvent{Kind: PointerContextMenu, X: x, Y: y})
	}
}
