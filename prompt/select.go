package prompt

import (
	"errors"
	"fmt"

	"github.com/moasq/painless/terminal"
)

// ErrNoOptions is returned by Select when there is nothing to choose from.
var ErrNoOptions = errors.New("no options to select from")

// Select lets the user pick one of options with Up and Down, shown inline as
// "prompt[option]⭥", and returns the chosen index. Options are displayed
// with fmt.Sprint. The cursor does not wrap.
func Select[T any](p *Prompter, prompt string, options []T) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}

	labels := make([]string, len(options))
	widest := 0
	for i, opt := range options {
		labels[i] = fmt.Sprint(opt)
		widest = max(widest, width(labels[i]))
	}

	st := &selectState{
		pt:     p.painter(),
		labels: labels,
		widest: widest,
		tracef: p.tracef,
	}
	err := p.session(func() error {
		return p.withHiddenCursor(func() error {
			if err := st.pt.write(prompt); err != nil {
				return err
			}
			if err := st.draw(); err != nil {
				return err
			}
			return p.loop(st)
		})
	})
	if err != nil {
		return 0, err
	}
	return st.cursor, nil
}

type selectState struct {
	pt     *painter
	labels []string
	widest int
	tracef func(format string, args ...any)

	cursor int
	// drawn is the width of the bracketed option currently on screen.
	drawn int
}

func (s *selectState) handle(ev terminal.KeyEvent) (bool, error) {
	prev := s.cursor
	switch ev.Code {
	case terminal.KeyEnter:
		return true, nil
	case terminal.KeyUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case terminal.KeyDown:
		if s.cursor < len(s.labels)-1 {
			s.cursor++
		}
	default:
		return false, nil
	}
	if s.cursor == prev {
		return false, nil
	}
	s.tracef("select cursor %d -> %d", prev, s.cursor)
	return false, s.redraw()
}

func (s *selectState) box() string {
	return "[" + s.labels[s.cursor] + "]" + s.pt.theme.SelectIndicator
}

func (s *selectState) draw() error {
	box := s.box()
	if err := s.pt.write(s.pt.theme.bold(box)); err != nil {
		return err
	}
	s.drawn = width(box)
	return nil
}

// redraw returns to the start of the bracket and blanks room for the widest
// option before drawing, so a shorter option leaves nothing behind.
func (s *selectState) redraw() error {
	if err := s.pt.term.MoveLeft(s.drawn); err != nil {
		return err
	}
	room := 2 + s.widest + width(s.pt.theme.SelectIndicator)
	if err := s.pt.eraseForward(room); err != nil {
		return err
	}
	return s.draw()
}
