// Package terminaltest provides a deterministic in-memory terminal for
// testing code that draws with terminal.Terminal.
package terminaltest

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/moasq/painless/terminal"
)

// VirtualTerminal replays scripted key events and interprets everything
// written to it into a screen grid, so tests can assert on what a user would
// see. It understands text, CR, LF, SGR (ignored), cursor up/down/left/right
// and cursor show/hide.
//
// ReadKey returns io.EOF once the script is exhausted.
type VirtualTerminal struct {
	mu sync.Mutex

	keys   []terminal.KeyEvent
	writes []string

	grid    [][]rune
	row     int
	col     int
	hidden  bool
	rawMode int

	// ReadErr, when set, is returned by ReadKey after the script is
	// exhausted instead of io.EOF.
	ReadErr error
}

// New returns a virtual terminal that will deliver keys in order.
func New(keys ...terminal.KeyEvent) *VirtualTerminal {
	v := &VirtualTerminal{}
	v.Push(keys...)
	return v
}

// Push appends key events to the script.
func (v *VirtualTerminal) Push(keys ...terminal.KeyEvent) *VirtualTerminal {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.keys = append(v.keys, keys...)
	return v
}

// Type appends one character press per rune of s.
func (v *VirtualTerminal) Type(s string) *VirtualTerminal {
	for _, r := range s {
		v.Push(terminal.Char(r))
	}
	return v
}

// Press appends presses of the given keys.
func (v *VirtualTerminal) Press(codes ...terminal.KeyCode) *VirtualTerminal {
	for _, c := range codes {
		v.Push(terminal.Key(c))
	}
	return v
}

// Pending returns how many scripted events have not been read.
func (v *VirtualTerminal) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.keys)
}

func (v *VirtualTerminal) ReadKey() (terminal.KeyEvent, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.keys) == 0 {
		if v.ReadErr != nil {
			return terminal.KeyEvent{}, v.ReadErr
		}
		return terminal.KeyEvent{}, io.EOF
	}
	ev := v.keys[0]
	v.keys = v.keys[1:]
	return ev, nil
}

func (v *VirtualTerminal) Write(s string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.writes = append(v.writes, s)
	v.interpret(s)
	return nil
}

func (v *VirtualTerminal) MoveLeft(n int) error {
	return v.moveSeq(n, 'D')
}

func (v *VirtualTerminal) MoveUp(n int) error {
	return v.moveSeq(n, 'A')
}

func (v *VirtualTerminal) MoveDown(n int) error {
	return v.moveSeq(n, 'B')
}

func (v *VirtualTerminal) moveSeq(n int, final byte) error {
	if n <= 0 {
		return nil
	}
	return v.Write("\x1b[" + strconv.Itoa(n) + string(final))
}

func (v *VirtualTerminal) HideCursor() error {
	return v.Write("\x1b[?25l")
}

func (v *VirtualTerminal) ShowCursor() error {
	return v.Write("\x1b[?25h")
}

func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rawMode++
	return nil
}

func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.rawMode > 0 {
		v.rawMode--
	}
	return nil
}

// RawModeActive reports whether raw mode is currently entered.
func (v *VirtualTerminal) RawModeActive() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rawMode > 0
}

// CursorHidden reports whether the last visibility change hid the cursor.
func (v *VirtualTerminal) CursorHidden() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.hidden
}

// Cursor returns the zero-based cursor row and column.
func (v *VirtualTerminal) Cursor() (row, col int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.row, v.col
}

// Output returns every write concatenated, escape sequences included.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return strings.Join(v.writes, "")
}

// Lines returns the screen rows with trailing blanks removed.
func (v *VirtualTerminal) Lines() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	lines := make([]string, len(v.grid))
	for i, cells := range v.grid {
		lines[i] = renderRow(cells)
	}
	return lines
}

// Line returns screen row i with trailing blanks removed, or "" past the end.
func (v *VirtualTerminal) Line(i int) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if i < 0 || i >= len(v.grid) {
		return ""
	}
	return renderRow(v.grid[i])
}

// Screen returns all rows joined by newlines.
func (v *VirtualTerminal) Screen() string {
	return strings.Join(v.Lines(), "\n")
}

func renderRow(cells []rune) string {
	var b strings.Builder
	for _, r := range cells {
		if r == 0 {
			// Continuation cell of a wide rune, or never written.
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func (v *VirtualTerminal) interpret(s string) {
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\r':
			v.col = 0
			continue
		case '\n':
			v.row++
			continue
		case 0x1b:
			i = v.escape(runes, i)
			continue
		}
		v.put(r)
	}
}

// escape handles the sequence starting at runes[i] and returns the index of
// its last rune.
func (v *VirtualTerminal) escape(runes []rune, i int) int {
	if i+1 >= len(runes) || runes[i+1] != '[' {
		return i
	}
	j := i + 2
	for j < len(runes) && (runes[j] < 0x40 || runes[j] > 0x7e) {
		j++
	}
	if j >= len(runes) {
		return len(runes) - 1
	}
	params := string(runes[i+2 : j])
	n := 1
	if p, err := strconv.Atoi(params); err == nil {
		n = p
	}

	switch runes[j] {
	case 'A':
		v.row = max(v.row-n, 0)
	case 'B':
		v.row += n
	case 'C':
		v.col += n
	case 'D':
		v.col = max(v.col-n, 0)
	case 'l':
		if params == "?25" {
			v.hidden = true
		}
	case 'h':
		if params == "?25" {
			v.hidden = false
		}
	}
	return j
}

func (v *VirtualTerminal) put(r rune) {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return
	}
	for len(v.grid) <= v.row {
		v.grid = append(v.grid, nil)
	}
	line := v.grid[v.row]
	for len(line) < v.col+w {
		line = append(line, ' ')
	}
	line[v.col] = r
	for k := 1; k < w; k++ {
		line[v.col+k] = 0
	}
	v.grid[v.row] = line
	v.col += w
}

var _ terminal.Terminal = (*VirtualTerminal)(nil)
