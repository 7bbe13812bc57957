package prompt

import (
	"github.com/mattn/go-runewidth"

	"github.com/moasq/painless/terminal"
)

const separator = ", "

// ArrayInput reads a sequence of T rendered as "[a, b, c]". Enter on a
// non-empty element confirms it; Enter on an empty element ends the array.
// Backspace on an empty element takes back the previous one.
type ArrayInput[T any] struct {
	Prompt string
	// Parse converts each element. Nil means ParseText[T].
	Parse ParseFunc[T]
	// Validator checks the whole sequence once it is terminated. A rejection
	// discards every element and starts the array over.
	Validator Validator[[]T]
}

// InputArray reads a sequence of T after printing prompt.
func InputArray[T any](p *Prompter, prompt string) ([]T, error) {
	return ArrayInput[T]{Prompt: prompt}.Run(p)
}

// InputArrayWithValidation reads a sequence of T that v accepts as a whole.
func InputArrayWithValidation[T any](p *Prompter, prompt string, v Validator[[]T]) ([]T, error) {
	return ArrayInput[T]{Prompt: prompt, Validator: v}.Run(p)
}

// Run draws the prompt and the opening bracket and edits until the sequence
// is terminated and accepted.
func (in ArrayInput[T]) Run(p *Prompter) ([]T, error) {
	parse := in.Parse
	if parse == nil {
		var err error
		if parse, err = parserFor[T](); err != nil {
			return nil, err
		}
	}

	st := &arrayState[T]{
		pt:        p.painter(),
		parse:     parse,
		validator: in.Validator,
		tracef:    p.tracef,
		values:    []T{},
	}
	err := p.session(func() error {
		if err := st.pt.write(in.Prompt + "["); err != nil {
			return err
		}
		return p.loop(st)
	})
	if err != nil {
		return nil, err
	}
	return st.values, nil
}

// arrayState is the edit state of one ArrayInput run. values and raws always
// have the same length.
type arrayState[T any] struct {
	pt        *painter
	parse     ParseFunc[T]
	validator Validator[[]T]
	tracef    func(format string, args ...any)

	values  []T
	raws    []string
	current []rune
	// hidden means current was kept after a parse failure but its text was
	// erased to make room for the error message.
	hidden bool
}

func (s *arrayState[T]) handle(ev terminal.KeyEvent) (bool, error) {
	switch ev.Code {
	case terminal.KeyChar:
		if err := s.resume(); err != nil {
			return false, err
		}
		s.current = append(s.current, ev.Rune)
		return false, s.pt.write(string(ev.Rune))

	case terminal.KeyBackspace:
		if len(s.current) > 0 {
			if err := s.resume(); err != nil {
				return false, err
			}
			last := s.current[len(s.current)-1]
			s.current = s.current[:len(s.current)-1]
			return false, s.pt.eraseBackward(runewidth.RuneWidth(last))
		}
		if len(s.values) > 0 {
			return false, s.undo()
		}
		return false, nil

	case terminal.KeyEnter:
		if len(s.current) > 0 {
			if err := s.resume(); err != nil {
				return false, err
			}
			return false, s.confirm()
		}
		return s.terminate()
	}
	return false, nil
}

// resume clears a shown error and redraws text kept from a parse failure.
func (s *arrayState[T]) resume() error {
	if err := s.pt.dismissError(); err != nil {
		return err
	}
	if !s.hidden {
		return nil
	}
	s.hidden = false
	return s.pt.write(string(s.current))
}

// undo removes the last confirmed element and its trailing separator.
func (s *arrayState[T]) undo() error {
	if err := s.pt.dismissError(); err != nil {
		return err
	}
	last := len(s.values) - 1
	raw := s.raws[last]
	s.values = s.values[:last]
	s.raws = s.raws[:last]
	s.tracef("undo element %q", raw)
	return s.pt.eraseBackward(width(separator) + width(raw))
}

// confirm parses the current element and appends it.
func (s *arrayState[T]) confirm() error {
	raw := string(s.current)
	value, err := s.parse(raw)
	if err != nil {
		s.tracef("parse %q: %v", raw, err)
		if err := s.pt.eraseBackward(width(raw)); err != nil {
			return err
		}
		s.hidden = true
		return s.pt.showError(invalidInput(raw))
	}

	s.values = append(s.values, value)
	s.raws = append(s.raws, raw)
	s.current = s.current[:0]
	return s.pt.write(separator)
}

// terminate closes the bracket and validates the whole sequence.
func (s *arrayState[T]) terminate() (bool, error) {
	if err := s.pt.dismissError(); err != nil {
		return false, err
	}
	if len(s.raws) > 0 {
		if err := s.pt.eraseBackward(width(separator)); err != nil {
			return false, err
		}
	}
	if err := s.pt.write("]"); err != nil {
		return false, err
	}

	verr := validate(s.validator, s.values)
	if verr == nil {
		return true, nil
	}
	s.tracef("rejected %d elements: %v", len(s.values), verr)
	if err := s.pt.eraseBackward(s.drawnWidth()); err != nil {
		return false, err
	}
	s.values = []T{}
	s.raws = nil
	s.current = s.current[:0]
	return false, s.pt.showError(verr.Error())
}

// drawnWidth is the width of the closed array after "[": every element, the
// separators between them and the closing bracket.
func (s *arrayState[T]) drawnWidth() int {
	n := 1
	for _, raw := range s.raws {
		n += width(raw)
	}
	if len(s.raws) > 1 {
		n += width(separator) * (len(s.raws) - 1)
	}
	return n
}
