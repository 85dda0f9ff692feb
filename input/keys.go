package input

import (
	"fmt"
	"unicode"
)

// KeyCode identifies a physical key independent of the terminal library
// Letter keys are case-insensitive, like physical key codes
type KeyCode uint32

const (
	KeyNone KeyCode = iota
	KeySpace
	KeyEnter
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit // Ctrl+C, Ctrl+Q

	keyTerminalBase KeyCode = 0x8000  // Other terminal keys (Tab, F-keys, Ctrl combos)
	keyRuneBase     KeyCode = 0x10000 // Printable runes
)

// Letter keys used by the secret sequence
const (
	KeyA = keyRuneBase + 'a'
	KeyB = keyRuneBase + 'b'
)

// SecretSequence is the fixed key run that grants the bonus
var SecretSequence = []KeyCode{
	KeyUp, KeyUp, KeyDown, KeyDown,
	KeyLeft, KeyRight, KeyLeft, KeyRight,
	KeyB, KeyA,
}

// RuneKey returns the key code for a printable rune
func RuneKey(r rune) KeyCode {
	if r == ' ' {
		return KeySpace
	}
	return keyRuneBase + KeyCode(unicode.ToLower(r))
}

// IsActivation reports whether the key activates the button
func (k KeyCode) IsActivation() bool {
	return k == KeySpace || k == KeyEnter
}

// String returns the key name for logs
func (k KeyCode) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyUp:
		return "ArrowUp"
	case KeyDown:
		return "ArrowDown"
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	case KeyQuit:
		return "Quit"
	}
	if k >= keyTerminalBase && k < keyRuneBase {
		return fmt.Sprintf("Terminal(%d)", uint32(k-keyTerminalBase))
	}
	if k >= keyRuneBase {
		return fmt.Sprintf("Key%c", unicode.ToUpper(rune(k-keyRuneBase)))
	}
	return fmt.Sprintf("Key(%d)", uint32(k))
}
