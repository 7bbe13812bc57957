package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moasq/painless/terminal"
	"github.com/moasq/painless/terminal/terminaltest"
)

type fruit int

func (f fruit) String() string {
	return [...]string{"apple", "banana", "kiwi"}[f]
}

func TestSelectReturnsCursor(t *testing.T) {
	vt := terminaltest.New().Press(terminal.KeyDown, terminal.KeyDown, terminal.KeyEnter)
	options := []string{"Option 1", "Option 2", "Option 3", "Option 4"}

	got, err := Select(New(vt), "Select an option: ", options)

	require.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.Equal(t, "Select an option: [Option 3]⭥", vt.Line(0))
	assert.False(t, vt.CursorHidden())
	assert.False(t, vt.RawModeActive())
}

func TestSelectClampsCursor(t *testing.T) {
	cases := []struct {
		name   string
		keys   []terminal.KeyCode
		expect int
	}{
		{name: "enter immediately", keys: nil, expect: 0},
		{name: "up at top", keys: []terminal.KeyCode{terminal.KeyUp, terminal.KeyUp, terminal.KeyUp}, expect: 0},
		{name: "down past bottom", keys: repeatKey(terminal.KeyDown, 20), expect: 2},
		{name: "down then up", keys: []terminal.KeyCode{terminal.KeyDown, terminal.KeyDown, terminal.KeyUp}, expect: 1},
		{name: "bottom then back to top", keys: append(repeatKey(terminal.KeyDown, 5), repeatKey(terminal.KeyUp, 5)...), expect: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vt := terminaltest.New().Press(tc.keys...).Press(terminal.KeyEnter)

			got, err := Select(New(vt), "> ", []string{"a", "b", "c"})

			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestSelectShorterOptionLeavesNoResidue(t *testing.T) {
	vt := terminaltest.New().Press(terminal.KeyDown, terminal.KeyEnter)

	got, err := Select(New(vt), "> ", []string{"a much longer option", "x"})

	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Equal(t, "> [x]⭥", vt.Line(0))
}

func TestSelectUsesStringer(t *testing.T) {
	vt := terminaltest.New().Press(terminal.KeyDown, terminal.KeyEnter)

	got, err := Select(New(vt), "Fruit: ", []fruit{0, 1, 2})

	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Equal(t, "Fruit: [banana]⭥", vt.Line(0))
}

func TestSelectHidesCursorWhileActive(t *testing.T) {
	vt := terminaltest.New().Press(terminal.KeyDown)

	_, err := Select(New(vt), "> ", []string{"a", "b"})

	require.Error(t, err)
	assert.False(t, vt.CursorHidden(), "cursor must be restored on error paths")
	assert.Contains(t, vt.Output(), "\x1b[?25l")
}

func TestSelectNoOptions(t *testing.T) {
	vt := terminaltest.New().Press(terminal.KeyEnter)

	_, err := Select(New(vt), "> ", []string{})

	assert.ErrorIs(t, err, ErrNoOptions)
	assert.Empty(t, vt.Output())
}

func TestSelectIgnoresReleaseEvents(t *testing.T) {
	vt := terminaltest.New(
		terminal.KeyEvent{Kind: terminal.KeyRelease, Code: terminal.KeyDown},
		terminal.Key(terminal.KeyDown),
		terminal.KeyEvent{Kind: terminal.KeyRelease, Code: terminal.KeyDown},
		terminal.KeyEvent{Kind: terminal.KeyRelease, Code: terminal.KeyEnter},
		terminal.Key(terminal.KeyEnter),
	)

	got, err := Select(New(vt), "> ", []string{"a", "b", "c"})

	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestSelectCustomIndicator(t *testing.T) {
	theme := DefaultTheme()
	theme.SelectIndicator = " <>"
	vt := terminaltest.New().Press(terminal.KeyEnter)

	_, err := Select(New(vt, WithTheme(theme)), "> ", []string{"a"})

	require.NoError(t, err)
	assert.Equal(t, "> [a] <>", vt.Line(0))
}

func repeatKey(code terminal.KeyCode, n int) []terminal.KeyCode {
	out := make([]terminal.KeyCode, n)
	for i := range out {
		out[i] = code
	}
	return out
}
