package terminaltest

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moasq/painless/terminal"
)

func TestVirtualTerminalScreen(t *testing.T) {
	vt := New()

	require.NoError(t, vt.Write("hello\x1b[1mworld\x1b[0m"))
	require.NoError(t, vt.MoveLeft(5))
	require.NoError(t, vt.Write("WO"))
	require.NoError(t, vt.Write("\r\nnext"))
	require.NoError(t, vt.MoveUp(1))
	require.NoError(t, vt.Write("\rH"))

	assert.Equal(t, []string{"HelloWOrld", "next"}, vt.Lines())
	row, col := vt.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 1, col)
}

func TestVirtualTerminalClampsMoves(t *testing.T) {
	vt := New()

	require.NoError(t, vt.Write("ab"))
	require.NoError(t, vt.MoveLeft(10))
	require.NoError(t, vt.MoveUp(3))

	row, col := vt.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
}

func TestVirtualTerminalZeroMoveWritesNothing(t *testing.T) {
	vt := New()

	require.NoError(t, vt.MoveLeft(0))
	require.NoError(t, vt.MoveDown(0))

	assert.Empty(t, vt.Output())
}

func TestVirtualTerminalCursorVisibility(t *testing.T) {
	vt := New()

	require.NoError(t, vt.HideCursor())
	assert.True(t, vt.CursorHidden())

	require.NoError(t, vt.ShowCursor())
	assert.False(t, vt.CursorHidden())
}

func TestVirtualTerminalScript(t *testing.T) {
	vt := New(terminal.Key(terminal.KeyUp)).Type("hi").Press(terminal.KeyEnter)
	assert.Equal(t, 4, vt.Pending())

	var got []terminal.KeyEvent
	for {
		ev, err := vt.ReadKey()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, ev)
	}

	assert.Equal(t, []terminal.KeyEvent{
		terminal.Key(terminal.KeyUp),
		terminal.Char('h'),
		terminal.Char('i'),
		terminal.Key(terminal.KeyEnter),
	}, got)

	vt.ReadErr = terminal.ErrInterrupted
	_, err := vt.ReadKey()
	assert.ErrorIs(t, err, terminal.ErrInterrupted)
}

func TestVirtualTerminalRawModeNests(t *testing.T) {
	vt := New()

	require.NoError(t, vt.EnterRawMode())
	require.NoError(t, vt.EnterRawMode())
	require.NoError(t, vt.ExitRawMode())
	assert.True(t, vt.RawModeActive())

	require.NoError(t, vt.ExitRawMode())
	assert.False(t, vt.RawModeActive())
}
