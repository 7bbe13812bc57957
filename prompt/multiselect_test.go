package prompt

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moasq/painless/terminal"
	"github.com/moasq/painless/terminal/terminaltest"
)

func newMultiSelect(vt *terminaltest.VirtualTerminal, options ...string) *multiSelectState {
	return &multiSelectState{
		pt:       newTestPainter(vt),
		options:  options,
		submit:   "Done",
		selected: make([]bool, len(options)),
		tracef:   noTrace,
	}
}

func TestMultiSelectReturnsToggled(t *testing.T) {
	vt := terminaltest.New().Press(
		terminal.KeyEnter,
		terminal.KeyDown, terminal.KeyDown,
		terminal.KeyEnter,
		terminal.KeyDown,
		terminal.KeyEnter,
	)

	got, err := New(vt).MultiSelect("Select an option: ", "Done", []string{"a", "b", "c"})

	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, got)
	assert.Equal(t, []string{
		"Select an option:",
		"☑ a",
		"☐ b",
		"☑ c",
		"✓ Done",
	}, vt.Lines())
	assert.False(t, vt.CursorHidden())
	assert.False(t, vt.RawModeActive())
}

func TestMultiSelectFirstRender(t *testing.T) {
	vt := terminaltest.New()
	st := newMultiSelect(vt, "one", "two")

	require.NoError(t, st.render())

	assert.Equal(t, []string{"☐ one", "☐ two", "✓ Done"}, vt.Lines())
	row, col := vt.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
	assert.Contains(t, vt.Output(), "\x1b[4m☐ one\x1b[0m")
	assert.Contains(t, vt.Output(), "\x1b[1m✓ Done\x1b[0m")
}

func TestMultiSelectUpWrapsToSubmit(t *testing.T) {
	vt := terminaltest.New()
	st := newMultiSelect(vt, "a", "b", "c")
	require.NoError(t, st.render())

	_, err := feed(st, keys(terminal.KeyUp)...)

	require.NoError(t, err)
	assert.Equal(t, 3, st.cursor)
	row, _ := vt.Cursor()
	assert.Equal(t, 3, row)
	assert.Contains(t, vt.Output(), "\x1b[1;4m✓ Done\x1b[0m")

	_, err = feed(st, keys(terminal.KeyUp)...)
	require.NoError(t, err)
	assert.Equal(t, 2, st.cursor)
}

func TestMultiSelectDownWrapsToFirst(t *testing.T) {
	vt := terminaltest.New()
	st := newMultiSelect(vt, "a", "b")
	require.NoError(t, st.render())

	_, err := feed(st, keys(terminal.KeyDown, terminal.KeyDown)...)
	require.NoError(t, err)
	assert.Equal(t, 2, st.cursor)

	_, err = feed(st, keys(terminal.KeyDown)...)
	require.NoError(t, err)
	assert.Equal(t, 0, st.cursor)
	row, _ := vt.Cursor()
	assert.Equal(t, 0, row)
}

func TestMultiSelectToggleTwiceRestores(t *testing.T) {
	vt := terminaltest.New()
	st := newMultiSelect(vt, "a", "b")
	require.NoError(t, st.render())

	done, err := feed(st, keys(terminal.KeyDown, terminal.KeyEnter)...)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, []bool{false, true}, st.selected)
	assert.Equal(t, "☑ b", vt.Line(1))

	_, err = feed(st, keys(terminal.KeyEnter)...)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false}, st.selected)
	assert.Equal(t, "☐ b", vt.Line(1))
}

func TestMultiSelectRepaintKeepsLinesInPlace(t *testing.T) {
	vt := terminaltest.New()
	st := newMultiSelect(vt, "a", "b", "c")
	require.NoError(t, st.render())

	_, err := feed(st, keys(
		terminal.KeyDown, terminal.KeyDown, terminal.KeyEnter,
		terminal.KeyUp, terminal.KeyUp, terminal.KeyUp, terminal.KeyEnter,
	)...)

	require.NoError(t, err)
	assert.Equal(t, 3, st.cursor)
	assert.Equal(t, []string{"☐ a", "☐ b", "☑ c", "✓ Done"}, vt.Lines())
}

func TestMultiSelectNoOptions(t *testing.T) {
	vt := terminaltest.New().Press(terminal.KeyDown, terminal.KeyUp, terminal.KeyEnter)

	got, err := New(vt).MultiSelect("Pick", "Go", nil)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, []string{"Pick", "✓ Go"}, vt.Lines())
}

func TestMultiSelectActsOnlyOnPress(t *testing.T) {
	vt := terminaltest.New(
		terminal.KeyEvent{Kind: terminal.KeyRelease, Code: terminal.KeyEnter},
		terminal.Key(terminal.KeyEnter),
		terminal.KeyEvent{Kind: terminal.KeyRelease, Code: terminal.KeyEnter},
		terminal.KeyEvent{Kind: terminal.KeyRepeat, Code: terminal.KeyDown},
		terminal.Key(terminal.KeyUp),
		terminal.Key(terminal.KeyEnter),
	)

	got, err := New(vt).MultiSelect("Pick", "Go", []string{"a", "b"})

	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, got)
}

func TestMultiSelectPlainThemeUnderlinesActiveLine(t *testing.T) {
	theme := DefaultTheme()
	theme.Plain = true
	vt := terminaltest.New().Press(terminal.KeyDown, terminal.KeyDown, terminal.KeyEnter)

	_, err := New(vt, WithTheme(theme)).MultiSelect("Pick", "Done", []string{"a", "b", "c"})

	require.ErrorIs(t, err, io.EOF)
	out := vt.Output()
	last := out[strings.LastIndex(out, "\x1b[2A"):]
	assert.Contains(t, last, "\r☐ a\x1b[1B")
	assert.Contains(t, last, "\r☐ b\x1b[1B")
	assert.Contains(t, last, "\r\x1b[4m☑ c\x1b[0m")
	assert.NotContains(t, out, "\x1b[41")
}
