package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// TTY is the Terminal backed by a real terminal device.
type TTY struct {
	in  *os.File
	out *bufio.Writer
	dec *Decoder

	fd       int
	mu       sync.Mutex
	rawDepth int
	rawState *term.State
}

// Open binds a TTY to in and out. in must be the terminal's input file for
// raw mode to work.
func Open(in *os.File, out io.Writer) *TTY {
	return &TTY{
		in:  in,
		out: bufio.NewWriter(out),
		dec: NewDecoder(in),
		fd:  int(in.Fd()),
	}
}

// Stdio binds a TTY to the process's standard input and output.
func Stdio() *TTY {
	return Open(os.Stdin, os.Stdout)
}

// IsTerminal reports whether the input side is a terminal.
func (t *TTY) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

// EnterRawMode switches the terminal to raw mode. Calls nest.
func (t *TTY) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.rawDepth > 0 {
		t.rawDepth++
		return nil
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.rawState = state
	t.rawDepth = 1
	return nil
}

// ExitRawMode restores the mode saved by the outermost EnterRawMode.
func (t *TTY) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.rawDepth == 0 {
		return nil
	}
	t.rawDepth--
	if t.rawDepth > 0 {
		return nil
	}
	state := t.rawState
	t.rawState = nil
	if err := term.Restore(t.fd, state); err != nil {
		return fmt.Errorf("restore terminal mode: %w", err)
	}
	return nil
}

// Close shows the cursor and leaves raw mode regardless of nesting depth.
// It is meant for interrupt paths where engines did not get to clean up.
func (t *TTY) Close() error {
	var result *multierror.Error
	if err := t.ShowCursor(); err != nil {
		result = multierror.Append(result, err)
	}
	t.mu.Lock()
	if t.rawDepth > 0 {
		t.rawDepth = 1
	}
	t.mu.Unlock()
	if err := t.ExitRawMode(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// ReadKey blocks until the next key event.
func (t *TTY) ReadKey() (KeyEvent, error) {
	return t.dec.ReadKey()
}

// Write emits s and flushes.
func (t *TTY) Write(s string) error {
	if _, err := t.out.WriteString(s); err != nil {
		return fmt.Errorf("write terminal: %w", err)
	}
	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("flush terminal: %w", err)
	}
	return nil
}

// MoveLeft moves the cursor n columns left.
func (t *TTY) MoveLeft(n int) error {
	return t.move(termenv.CursorBackSeq, n)
}

// MoveUp moves the cursor n rows up.
func (t *TTY) MoveUp(n int) error {
	return t.move(termenv.CursorUpSeq, n)
}

// MoveDown moves the cursor n rows down.
func (t *TTY) MoveDown(n int) error {
	return t.move(termenv.CursorDownSeq, n)
}

// move skips n <= 0 because terminals treat a zero count as one.
func (t *TTY) move(seq string, n int) error {
	if n <= 0 {
		return nil
	}
	return t.Write(termenv.CSI + fmt.Sprintf(seq, n))
}

// HideCursor hides the text cursor.
func (t *TTY) HideCursor() error {
	return t.Write(termenv.CSI + termenv.HideCursorSeq)
}

// ShowCursor shows the text cursor.
func (t *TTY) ShowCursor() error {
	return t.Write(termenv.CSI + termenv.ShowCursorSeq)
}

var _ Terminal = (*TTY)(nil)
