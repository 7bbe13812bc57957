package prompt

import (
	"strings"

	"github.com/moasq/painless/terminal"
)

// MultiSelect shows one checkbox line per option and a submit line below
// them. Up and Down move between lines and wrap around, Enter toggles the
// option under the cursor or, on the submit line, returns the selections.
func (p *Prompter) MultiSelect(prompt, submit string, options []string) ([]bool, error) {
	st := &multiSelectState{
		pt:       p.painter(),
		options:  options,
		submit:   submit,
		selected: make([]bool, len(options)),
		tracef:   p.tracef,
	}
	err := p.session(func() error {
		return p.withHiddenCursor(func() error {
			if err := st.pt.write(p.theme.bold(strings.TrimSpace(prompt)) + "\r\n"); err != nil {
				return err
			}
			if err := st.render(); err != nil {
				return err
			}
			return p.loop(st)
		})
	})
	if err != nil {
		return nil, err
	}
	return st.selected, nil
}

// multiSelectState tracks the cursor over len(options)+1 lines; index
// len(options) is the submit line.
type multiSelectState struct {
	pt       *painter
	options  []string
	submit   string
	selected []bool
	tracef   func(format string, args ...any)

	cursor int
	// row is the line the terminal cursor sits on, relative to the first
	// option. Only meaningful once rendered.
	row      int
	rendered bool
}

func (s *multiSelectState) submitIndex() int {
	return len(s.options)
}

func (s *multiSelectState) handle(ev terminal.KeyEvent) (bool, error) {
	switch ev.Code {
	case terminal.KeyEnter:
		if s.cursor == s.submitIndex() {
			return true, nil
		}
		s.selected[s.cursor] = !s.selected[s.cursor]
		s.tracef("toggle %d -> %t", s.cursor, s.selected[s.cursor])
	case terminal.KeyUp:
		if s.cursor == 0 {
			s.cursor = s.submitIndex()
		} else {
			s.cursor--
		}
	case terminal.KeyDown:
		if s.cursor == s.submitIndex() {
			s.cursor = 0
		} else {
			s.cursor++
		}
	default:
		return false, nil
	}
	return false, s.render()
}

func (s *multiSelectState) line(i int) string {
	glyph := s.pt.theme.Unchecked
	if s.selected[i] {
		glyph = s.pt.theme.Checked
	}
	text := glyph + " " + s.options[i]
	if i == s.cursor {
		return s.pt.theme.underline(text)
	}
	return text
}

func (s *multiSelectState) submitLine() string {
	text := s.pt.theme.SubmitMark + " " + s.submit
	if s.cursor == s.submitIndex() {
		return s.pt.theme.boldUnderline(text)
	}
	return s.pt.theme.bold(text)
}

// render repaints every line and parks the cursor on the active one. The
// first render creates the lines with CRLF so the screen scrolls if needed;
// later renders walk over them with cursor movement.
func (s *multiSelectState) render() error {
	t := s.pt.term
	if s.rendered {
		if err := t.MoveUp(s.row); err != nil {
			return err
		}
	}
	for i := range s.options {
		if err := t.Write("\r" + s.line(i)); err != nil {
			return err
		}
		var err error
		if s.rendered {
			err = t.MoveDown(1)
		} else {
			err = t.Write("\r\n")
		}
		if err != nil {
			return err
		}
	}
	if err := t.Write("\r" + s.submitLine()); err != nil {
		return err
	}
	if err := t.MoveUp(s.submitIndex() - s.cursor); err != nil {
		return err
	}
	if err := t.Write("\r"); err != nil {
		return err
	}
	s.row = s.cursor
	s.rendered = true
	return nil
}
