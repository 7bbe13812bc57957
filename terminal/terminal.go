// Package terminal provides the key-event model and the character-cell
// terminal primitives the prompt engines draw with.
package terminal

import "errors"

// ErrInterrupted is returned by ReadKey when the user presses Ctrl+C while the
// terminal is in raw mode.
var ErrInterrupted = errors.New("interrupted")

// Terminal is the set of operations a prompt engine needs from the terminal.
// Every write is flushed before the call returns. Cursor moves are relative;
// a count of zero or less is a no-op.
type Terminal interface {
	ReadKey() (KeyEvent, error)
	Write(s string) error
	MoveLeft(n int) error
	MoveUp(n int) error
	MoveDown(n int) error
	HideCursor() error
	ShowCursor() error

	// EnterRawMode and ExitRawMode nest: only the outermost pair changes
	// the terminal mode.
	EnterRawMode() error
	ExitRawMode() error
}

// KeyKind distinguishes presses from repeats and releases on terminals that
// report them (kitty keyboard protocol). Legacy terminals only send presses.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

func (k KeyKind) String() string {
	switch k {
	case KeyPress:
		return "press"
	case KeyRepeat:
		return "repeat"
	case KeyRelease:
		return "release"
	}
	return "unknown"
}

// KeyCode identifies the key of an event.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyChar
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEsc
	KeyTab
)

var keyNames = map[KeyCode]string{
	KeyUnknown:   "unknown",
	KeyChar:      "char",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEsc:       "esc",
	KeyTab:       "tab",
}

func (c KeyCode) String() string {
	if name, ok := keyNames[c]; ok {
		return name
	}
	return "unknown"
}

// KeyEvent is one decoded key event. Rune is set only for KeyChar.
type KeyEvent struct {
	Kind KeyKind
	Code KeyCode
	Rune rune
}

// Pressed reports whether the event is a key press.
func (e KeyEvent) Pressed() bool {
	return e.Kind == KeyPress
}

func (e KeyEvent) String() string {
	if e.Code == KeyChar {
		return e.Kind.String() + " " + string(e.Rune)
	}
	return e.Kind.String() + " " + e.Code.String()
}

// Char returns a press event for the printable rune r.
func Char(r rune) KeyEvent {
	return KeyEvent{Kind: KeyPress, Code: KeyChar, Rune: r}
}

// Key returns a press event for a non-character key.
func Key(code KeyCode) KeyEvent {
	return KeyEvent{Kind: KeyPress, Code: code}
}
