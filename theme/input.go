package theme

import (
	"github.com/lixenwraith/promptstyle/style"
)

// InputConfig styles text inputs. All characters render with the Text
// sheet except the single character position under the cursor, which
// renders with the Cursor sheet.
type InputConfig struct {
	Text   style.Sheet
	Cursor style.Sheet
}

// EmptyInputConfig returns the config in which no colors or attributes
// are applied, cursor included
func EmptyInputConfig() InputConfig {
	return InputConfig{}
}

// DefaultInputConfig returns the curated config: unstyled text with the
// cursor inverted (black on grey) so it reads as a highlight
func DefaultInputConfig() InputConfig {
	return InputConfig{
		Text: style.EmptySheet(),
		Cursor: style.EmptySheet().
			WithBg(style.Grey).
			WithFg(style.Black),
	}
}

// WithText returns the config with the text sheet replaced
func (c InputConfig) WithText(text style.Sheet) InputConfig {
	c.Text = text
	return c
}

// WithCursor returns the config with the cursor sheet replaced
func (c InputConfig) WithCursor(cursor style.Sheet) InputConfig {
	c.Cursor = cursor
	return c
}
