package prompt

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// Theme holds the glyphs the engines draw and whether styling is applied.
type Theme struct {
	// SelectIndicator follows the bracketed option of Select.
	SelectIndicator string `yaml:"select_indicator"`
	// Checked and Unchecked are the multi-select checkbox glyphs. They must
	// have the same display width.
	Checked   string `yaml:"checked"`
	Unchecked string `yaml:"unchecked"`
	// SubmitMark precedes the submit label of MultiSelect.
	SubmitMark string `yaml:"submit_mark"`
	// Plain drops colour. Bold and underline stay since they mark the
	// active line and the error text.
	Plain bool `yaml:"plain"`
}

// DefaultTheme returns the stock glyphs with styling enabled.
func DefaultTheme() Theme {
	return Theme{
		SelectIndicator: "⭥",
		Checked:         "☑",
		Unchecked:       "☐",
		SubmitMark:      "✓",
	}
}

// Validate checks the invariants the repaint logic depends on.
func (t Theme) Validate() error {
	if cw, uw := runewidth.StringWidth(t.Checked), runewidth.StringWidth(t.Unchecked); cw != uw {
		return fmt.Errorf("checked glyph %q is %d columns wide but unchecked glyph %q is %d", t.Checked, cw, t.Unchecked, uw)
	}
	return nil
}

func (t Theme) bold(s string) string {
	return termenv.ANSI.String(s).Bold().String()
}

func (t Theme) underline(s string) string {
	return termenv.ANSI.String(s).Underline().String()
}

func (t Theme) boldUnderline(s string) string {
	return termenv.ANSI.String(s).Bold().Underline().String()
}

// errorText renders s as red on red, underlined. A plain theme keeps only
// the underline.
func (t Theme) errorText(s string) string {
	style := termenv.ANSI.String(s)
	if !t.Plain {
		style = style.Background(termenv.ANSIRed).Foreground(termenv.ANSIRed)
	}
	return style.Underline().String()
}
