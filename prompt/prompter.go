// Package prompt implements interactive, in-place terminal prompts: typed
// single values, typed arrays, a one-of-N selector and a checkbox list.
//
// Each engine owns the terminal from the moment it draws its prompt until the
// user confirms. Parse failures and validation rejections are shown inline and
// never returned; the only errors returned are terminal failures.
package prompt

import (
	"fmt"
	"log"

	"github.com/hashicorp/go-multierror"

	"github.com/moasq/painless/terminal"
)

// Prompter runs prompt engines against one terminal.
type Prompter struct {
	term  terminal.Terminal
	theme Theme
	trace *log.Logger
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithTheme replaces the default glyphs and styling.
func WithTheme(t Theme) Option {
	return func(p *Prompter) {
		p.theme = t
	}
}

// WithTrace logs every key event and engine transition to l.
func WithTrace(l *log.Logger) Option {
	return func(p *Prompter) {
		p.trace = l
	}
}

// New returns a Prompter drawing on t.
func New(t terminal.Terminal, opts ...Option) *Prompter {
	p := &Prompter{term: t, theme: DefaultTheme()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Theme returns the theme in use.
func (p *Prompter) Theme() Theme {
	return p.theme
}

func (p *Prompter) painter() *painter {
	return &painter{term: p.term, theme: p.theme}
}

func (p *Prompter) tracef(format string, args ...any) {
	if p.trace != nil {
		p.trace.Printf(format, args...)
	}
}

// session runs fn with the terminal in raw mode and restores the previous
// mode on every return path.
func (p *Prompter) session(fn func() error) (err error) {
	if err := p.term.EnterRawMode(); err != nil {
		return err
	}
	defer func() {
		if rerr := p.term.ExitRawMode(); rerr != nil {
			err = multierror.Append(err, rerr).ErrorOrNil()
		}
	}()
	return fn()
}

// withHiddenCursor runs fn with the text cursor hidden.
func (p *Prompter) withHiddenCursor(fn func() error) (err error) {
	if err := p.term.HideCursor(); err != nil {
		return err
	}
	defer func() {
		if serr := p.term.ShowCursor(); serr != nil {
			err = multierror.Append(err, serr).ErrorOrNil()
		}
	}()
	return fn()
}

// readPress blocks until a key press, skipping repeats and releases.
func (p *Prompter) readPress() (terminal.KeyEvent, error) {
	for {
		ev, err := p.term.ReadKey()
		if err != nil {
			return ev, fmt.Errorf("read key: %w", err)
		}
		if !ev.Pressed() {
			p.tracef("skip %s", ev)
			continue
		}
		p.tracef("key %s", ev)
		return ev, nil
	}
}

// handler consumes one key press and reports whether the engine is done.
type handler interface {
	handle(ev terminal.KeyEvent) (done bool, err error)
}

// loop feeds key presses to h until it is done.
func (p *Prompter) loop(h handler) error {
	for {
		ev, err := p.readPress()
		if err != nil {
			return err
		}
		done, err := h.handle(ev)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}
