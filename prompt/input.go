package prompt

import (
	"github.com/mattn/go-runewidth"

	"github.com/moasq/painless/terminal"
)

// ScalarInput reads one value of type T on a single edit line.
type ScalarInput[T any] struct {
	Prompt string
	// Parse converts the typed text. Nil means ParseText[T].
	Parse ParseFunc[T]
	// Validator may reject a parsed value. Nil accepts everything.
	Validator Validator[T]
}

// Input reads a value of type T after printing prompt.
func Input[T any](p *Prompter, prompt string) (T, error) {
	return ScalarInput[T]{Prompt: prompt}.Run(p)
}

// InputWithValidation reads a value of type T that v accepts.
func InputWithValidation[T any](p *Prompter, prompt string, v Validator[T]) (T, error) {
	return ScalarInput[T]{Prompt: prompt, Validator: v}.Run(p)
}

// Run draws the prompt and edits until a value parses and validates.
func (in ScalarInput[T]) Run(p *Prompter) (T, error) {
	var zero T
	parse := in.Parse
	if parse == nil {
		var err error
		if parse, err = parserFor[T](); err != nil {
			return zero, err
		}
	}

	st := &scalarState[T]{
		pt:        p.painter(),
		parse:     parse,
		validator: in.Validator,
		tracef:    p.tracef,
	}
	err := p.session(func() error {
		if err := st.pt.write(in.Prompt); err != nil {
			return err
		}
		return p.loop(st)
	})
	if err != nil {
		return zero, err
	}
	return st.value, nil
}

// scalarState is the edit state of one ScalarInput run.
type scalarState[T any] struct {
	pt        *painter
	parse     ParseFunc[T]
	validator Validator[T]
	tracef    func(format string, args ...any)

	buf []rune
	// hidden means buf was kept after a parse failure but its text was
	// erased to make room for the error message.
	hidden bool
	value  T
}

func (s *scalarState[T]) handle(ev terminal.KeyEvent) (bool, error) {
	switch ev.Code {
	case terminal.KeyChar:
		if err := s.resume(); err != nil {
			return false, err
		}
		s.buf = append(s.buf, ev.Rune)
		return false, s.pt.write(string(ev.Rune))

	case terminal.KeyBackspace:
		if len(s.buf) == 0 {
			return false, nil
		}
		if err := s.resume(); err != nil {
			return false, err
		}
		last := s.buf[len(s.buf)-1]
		s.buf = s.buf[:len(s.buf)-1]
		return false, s.pt.eraseBackward(runewidth.RuneWidth(last))

	case terminal.KeyEnter:
		if err := s.resume(); err != nil {
			return false, err
		}
		return s.submit()
	}
	return false, nil
}

// resume clears a shown error and redraws text kept from a parse failure.
func (s *scalarState[T]) resume() error {
	if err := s.pt.dismissError(); err != nil {
		return err
	}
	if !s.hidden {
		return nil
	}
	s.hidden = false
	return s.pt.write(string(s.buf))
}

func (s *scalarState[T]) submit() (bool, error) {
	raw := string(s.buf)
	value, err := s.parse(raw)
	if err != nil {
		s.tracef("parse %q: %v", raw, err)
		if err := s.pt.eraseBackward(width(raw)); err != nil {
			return false, err
		}
		s.hidden = true
		return false, s.pt.showError(invalidInput(raw))
	}

	if verr := validate(s.validator, value); verr != nil {
		s.tracef("rejected %q: %v", raw, verr)
		if err := s.pt.eraseBackward(width(raw)); err != nil {
			return false, err
		}
		s.buf = s.buf[:0]
		return false, s.pt.showError(verr.Error())
	}

	s.value = value
	return true, nil
}
