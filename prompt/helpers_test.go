package prompt

import (
	"github.com/moasq/painless/terminal"
	"github.com/moasq/painless/terminal/terminaltest"
)

func noTrace(string, ...any) {}

func newTestPainter(vt *terminaltest.VirtualTerminal) *painter {
	return &painter{term: vt, theme: DefaultTheme()}
}

// feed sends every event to h, stopping at the first error or completion.
func feed(h handler, events ...terminal.KeyEvent) (done bool, err error) {
	for _, ev := range events {
		done, err = h.handle(ev)
		if err != nil || done {
			return done, err
		}
	}
	return done, nil
}

func chars(s string) []terminal.KeyEvent {
	var events []terminal.KeyEvent
	for _, r := range s {
		events = append(events, terminal.Char(r))
	}
	return events
}

func keys(codes ...terminal.KeyCode) []terminal.KeyEvent {
	events := make([]terminal.KeyEvent, len(codes))
	for i, c := range codes {
		events[i] = terminal.Key(c)
	}
	return events
}

func seq(groups ...[]terminal.KeyEvent) []terminal.KeyEvent {
	var events []terminal.KeyEvent
	for _, g := range groups {
		events = append(events, g...)
	}
	return events
}
