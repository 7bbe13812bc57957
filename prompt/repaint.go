package prompt

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/moasq/painless/terminal"
)

// painter draws relative to the current cursor position. There is no
// absolute position query, so every operation leaves the cursor at the
// logical edit point.
type painter struct {
	term  terminal.Terminal
	theme Theme

	// errWidth is the width of the error annotation on screen, 0 if none.
	errWidth int
}

func (pt *painter) write(s string) error {
	if s == "" {
		return nil
	}
	return pt.term.Write(s)
}

// eraseBackward blanks the n columns left of the cursor and ends n columns
// further left.
func (pt *painter) eraseBackward(n int) error {
	for i := 0; i < n; i++ {
		if err := pt.term.MoveLeft(1); err != nil {
			return err
		}
		if err := pt.term.Write(" "); err != nil {
			return err
		}
		if err := pt.term.MoveLeft(1); err != nil {
			return err
		}
	}
	return nil
}

// eraseForward blanks n columns from the cursor and returns to it.
func (pt *painter) eraseForward(n int) error {
	if n <= 0 {
		return nil
	}
	if err := pt.term.Write(strings.Repeat(" ", n)); err != nil {
		return err
	}
	return pt.term.MoveLeft(n)
}

// showError draws msg highlighted at the cursor and moves back to where it
// started, so typing resumes in front of the message.
func (pt *painter) showError(msg string) error {
	if err := pt.term.Write(pt.theme.errorText(msg)); err != nil {
		return err
	}
	w := width(msg)
	if err := pt.term.MoveLeft(w); err != nil {
		return err
	}
	pt.errWidth = w
	return nil
}

// dismissError blanks the current error annotation, if any.
func (pt *painter) dismissError() error {
	if pt.errWidth == 0 {
		return nil
	}
	n := pt.errWidth
	pt.errWidth = 0
	return pt.eraseForward(n)
}

func width(s string) int {
	return runewidth.StringWidth(s)
}

func invalidInput(raw string) string {
	return "Invalid input: '" + raw + "'; try again"
}
