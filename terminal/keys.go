package terminal

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxSequenceLen bounds how many bytes of a CSI sequence are consumed before
// it is given up on as garbage.
const maxSequenceLen = 32

// Decoder turns a raw-mode byte stream into key events.
//
// It understands plain bytes (printable UTF-8, CR/LF, DEL/BS, Tab, Ctrl+C,
// Ctrl+D), CSI and SS3 arrow sequences, and the kitty keyboard protocol's
// "CSI code;mods:event u" form, which is where release and repeat events come
// from.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// ReadKey blocks until one key event is decoded. Ctrl+C yields
// ErrInterrupted, Ctrl+D yields io.EOF.
func (d *Decoder) ReadKey() (KeyEvent, error) {
	for {
		r, size, err := d.r.ReadRune()
		if err != nil {
			return KeyEvent{}, err
		}
		if r == utf8.RuneError && size == 1 {
			continue
		}

		switch r {
		case '\r':
			// Cooked input and some pastes send CRLF for one Enter.
			if d.r.Buffered() > 0 {
				if b, err := d.r.Peek(1); err == nil && b[0] == '\n' {
					d.r.ReadByte()
				}
			}
			return Key(KeyEnter), nil
		case '\n':
			return Key(KeyEnter), nil
		case 0x7f, 0x08:
			return Key(KeyBackspace), nil
		case '\t':
			return Key(KeyTab), nil
		case 0x03:
			return KeyEvent{}, ErrInterrupted
		case 0x04:
			return KeyEvent{}, io.EOF
		case 0x1b:
			return d.readEscape()
		}

		if r < 0x20 {
			return Key(KeyUnknown), nil
		}
		return Char(r), nil
	}
}

func (d *Decoder) readEscape() (KeyEvent, error) {
	// A lone ESC arrives on its own; sequences arrive in one read.
	if d.r.Buffered() == 0 {
		return Key(KeyEsc), nil
	}
	next, err := d.r.Peek(1)
	if err != nil {
		return Key(KeyEsc), nil
	}

	switch next[0] {
	case '[':
		d.r.ReadByte()
		return d.readCSI()
	case 'O':
		d.r.ReadByte()
		final, err := d.r.ReadByte()
		if err != nil {
			return KeyEvent{}, err
		}
		return KeyEvent{Kind: KeyPress, Code: arrowCode(final)}, nil
	}

	// Alt+key: report the escape, the key itself is decoded next.
	return Key(KeyEsc), nil
}

func (d *Decoder) readCSI() (KeyEvent, error) {
	var params strings.Builder
	for i := 0; i < maxSequenceLen; i++ {
		b, err := d.r.ReadByte()
		if err != nil {
			return KeyEvent{}, err
		}
		if b >= 0x40 && b <= 0x7e {
			return decodeCSI(params.String(), b)
		}
		params.WriteByte(b)
	}
	return Key(KeyUnknown), nil
}

// decodeCSI maps the parameter bytes and final byte of a CSI sequence to an
// event.
func decodeCSI(params string, final byte) (KeyEvent, error) {
	fields := strings.Split(params, ";")
	kind := eventKind(fields)

	switch final {
	case 'A', 'B', 'C', 'D':
		return KeyEvent{Kind: kind, Code: arrowCode(final)}, nil
	case 'u':
		return decodeKitty(fields, kind)
	}
	return KeyEvent{Kind: kind, Code: KeyUnknown}, nil
}

// eventKind reads the ":event" suffix of the modifier field.
func eventKind(fields []string) KeyKind {
	if len(fields) < 2 {
		return KeyPress
	}
	_, event, ok := strings.Cut(fields[1], ":")
	if !ok {
		return KeyPress
	}
	switch event {
	case "2":
		return KeyRepeat
	case "3":
		return KeyRelease
	}
	return KeyPress
}

func decodeKitty(fields []string, kind KeyKind) (KeyEvent, error) {
	codeField, _, _ := strings.Cut(fields[0], ":")
	code, err := strconv.Atoi(codeField)
	if err != nil {
		return KeyEvent{Kind: kind, Code: KeyUnknown}, nil
	}

	mods := 0
	if len(fields) > 1 {
		modField, _, _ := strings.Cut(fields[1], ":")
		if m, err := strconv.Atoi(modField); err == nil && m > 0 {
			mods = m - 1
		}
	}
	const ctrl = 4

	switch {
	case code == 13:
		return KeyEvent{Kind: kind, Code: KeyEnter}, nil
	case code == 127 || code == 8:
		return KeyEvent{Kind: kind, Code: KeyBackspace}, nil
	case code == 9:
		return KeyEvent{Kind: kind, Code: KeyTab}, nil
	case code == 27:
		return KeyEvent{Kind: kind, Code: KeyEsc}, nil
	case code == 'c' && mods&ctrl != 0:
		if kind == KeyPress {
			return KeyEvent{}, ErrInterrupted
		}
		return KeyEvent{Kind: kind, Code: KeyUnknown}, nil
	case code >= kittyFunctionalFirst && code <= kittyFunctionalLast:
		return decodeKittyFunctional(code, kind), nil
	case code >= 0x20 && mods&ctrl == 0:
		// The optional third field carries the text the key produces,
		// which differs from the key code when Shift is held.
		if len(fields) > 2 {
			text, _, _ := strings.Cut(fields[2], ":")
			if cp, err := strconv.Atoi(text); err == nil && cp >= 0x20 {
				code = cp
			}
		}
		return KeyEvent{Kind: kind, Code: KeyChar, Rune: rune(code)}, nil
	}
	return KeyEvent{Kind: kind, Code: KeyUnknown}, nil
}

// Kitty reports keys with no legacy encoding as private use code points.
const (
	kittyFunctionalFirst = 57344
	kittyFunctionalLast  = 63743

	kittyKP0     = 57399
	kittyKP9     = 57408
	kittyKPEnter = 57414
)

var kittyKeypadText = map[int]rune{
	57409: '.',
	57410: '/',
	57411: '*',
	57412: '-',
	57413: '+',
	57415: '=',
	57416: ',',
}

var kittyKeypadArrows = map[int]KeyCode{
	57417: KeyLeft,
	57418: KeyRight,
	57419: KeyUp,
	57420: KeyDown,
}

// decodeKittyFunctional maps keypad keys to what they type and reports
// every other functional key (modifiers, media, F13 and up) as unknown.
func decodeKittyFunctional(code int, kind KeyKind) KeyEvent {
	switch {
	case code >= kittyKP0 && code <= kittyKP9:
		return KeyEvent{Kind: kind, Code: KeyChar, Rune: rune('0' + code - kittyKP0)}
	case code == kittyKPEnter:
		return KeyEvent{Kind: kind, Code: KeyEnter}
	}
	if r, ok := kittyKeypadText[code]; ok {
		return KeyEvent{Kind: kind, Code: KeyChar, Rune: r}
	}
	if c, ok := kittyKeypadArrows[code]; ok {
		return KeyEvent{Kind: kind, Code: c}
	}
	return KeyEvent{Kind: kind, Code: KeyUnknown}
}

func arrowCode(final byte) KeyCode {
	switch final {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	}
	return KeyUnknown
}
