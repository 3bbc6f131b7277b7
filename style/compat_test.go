package style

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestTcellColorNamed verifies each named color maps to the tcell constant
// occupying the same base palette slot
func TestTcellColorNamed(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected tcell.Color
	}{
		{name: "Black", color: Black, expected: tcell.ColorBlack},
		{name: "DarkRed", color: DarkRed, expected: tcell.ColorMaroon},
		{name: "DarkGreen", color: DarkGreen, expected: tcell.ColorGreen},
		{name: "DarkYellow", color: DarkYellow, expected: tcell.ColorOlive},
		{name: "DarkBlue", color: DarkBlue, expected: tcell.ColorNavy},
		{name: "DarkMagenta", color: DarkMagenta, expected: tcell.ColorPurple},
		{name: "DarkCyan", color: DarkCyan, expected: tcell.ColorTeal},
		{name: "Grey", color: Grey, expected: tcell.ColorSilver},
		{name: "DarkGrey", color: DarkGrey, expected: tcell.ColorGray},
		{name: "Red", color: Red, expected: tcell.ColorRed},
		{name: "Green", color: Green, expected: tcell.ColorLime},
		{name: "Yellow", color: Yellow, expected: tcell.ColorYellow},
		{name: "Blue", color: Blue, expected: tcell.ColorBlue},
		{name: "Magenta", color: Magenta, expected: tcell.ColorFuchsia},
		{name: "Cyan", color: Cyan, expected: tcell.ColorAqua},
		{name: "White", color: White, expected: tcell.ColorWhite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TcellColor(tt.color); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestTcellColorPassThrough verifies RGB channels and palette indices
// survive conversion unchanged
func TestTcellColorPassThrough(t *testing.T) {
	if got := TcellColor(RGB(10, 20, 30)); got != tcell.NewRGBColor(10, 20, 30) {
		t.Errorf("RGB channels should pass through, got %v", got)
	}
	if got := TcellColor(RGB(255, 0, 255)); got.Hex() != 0xff00ff {
		t.Errorf("expected hex ff00ff, got %06x", got.Hex())
	}
	if got := TcellColor(ANSI(137)); got != tcell.PaletteColor(137) {
		t.Errorf("palette index should pass through, got %v", got)
	}
	if got := TcellColor(ANSI(0)); got != tcell.PaletteColor(0) {
		t.Errorf("palette index 0 should pass through, got %v", got)
	}
}

// TestTcellColorUnset verifies the zero value maps to the terminal default
func TestTcellColorUnset(t *testing.T) {
	var c Color
	if got := TcellColor(c); got != tcell.ColorDefault {
		t.Errorf("unset color should map to ColorDefault, got %v", got)
	}
}

// TestTcellAttr verifies the bitmask translation bit by bit
func TestTcellAttr(t *testing.T) {
	tests := []struct {
		name     string
		attr     Attr
		expected tcell.AttrMask
	}{
		{name: "None", attr: AttrNone, expected: tcell.AttrNone},
		{name: "Bold", attr: AttrBold, expected: tcell.AttrBold},
		{name: "Dim", attr: AttrDim, expected: tcell.AttrDim},
		{name: "Italic", attr: AttrItalic, expected: tcell.AttrItalic},
		{name: "Underline", attr: AttrUnderline, expected: tcell.AttrUnderline},
		{name: "Blink", attr: AttrBlink, expected: tcell.AttrBlink},
		{name: "Reverse", attr: AttrReverse, expected: tcell.AttrReverse},
		{name: "StrikeThrough", attr: AttrStrikeThrough, expected: tcell.AttrStrikeThrough},
		{
			name:     "Combined",
			attr:     AttrBold | AttrUnderline,
			expected: tcell.AttrBold | tcell.AttrUnderline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TcellAttr(tt.attr); got != tt.expected {
				t.Errorf("expected %b, got %b", tt.expected, got)
			}
		})
	}
}

// TestTcellStyle verifies sheet conversion composes fg, bg, and attributes
func TestTcellStyle(t *testing.T) {
	sheet := EmptySheet().
		WithFg(Cyan).
		WithBg(RGB(20, 20, 30)).
		WithAttr(AttrBold)

	fg, bg, attrs := TcellStyle(sheet).Decompose()
	if fg != tcell.ColorAqua {
		t.Errorf("expected foreground ColorAqua, got %v", fg)
	}
	if bg != tcell.NewRGBColor(20, 20, 30) {
		t.Errorf("expected background rgb(20,20,30), got %v", bg)
	}
	if attrs != tcell.AttrBold {
		t.Errorf("expected bold attribute, got %b", attrs)
	}
}

// TestTcellStyleIdentity verifies the identity sheet converts to the
// default style
func TestTcellStyleIdentity(t *testing.T) {
	fg, bg, attrs := TcellStyle(EmptySheet()).Decompose()
	if fg != tcell.ColorDefault || bg != tcell.ColorDefault {
		t.Errorf("identity sheet should keep default colors, got fg=%v bg=%v", fg, bg)
	}
	if attrs != tcell.AttrNone {
		t.Errorf("identity sheet should carry no attributes, got %b", attrs)
	}
}
