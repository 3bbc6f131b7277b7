package style

import (
	"github.com/gdamore/tcell/v2"
)

// namedTcell maps the 16 base palette slots to tcell's constants.
// tcell names every slot by its W3C name, so the dim half reads
// Maroon/Olive/Navy rather than DarkRed/DarkYellow/DarkBlue; the palette
// slot each constant occupies is identical.
var namedTcell = [16]tcell.Color{
	tcell.ColorBlack,   // Black
	tcell.ColorMaroon,  // DarkRed
	tcell.ColorGreen,   // DarkGreen
	tcell.ColorOlive,   // DarkYellow
	tcell.ColorNavy,    // DarkBlue
	tcell.ColorPurple,  // DarkMagenta
	tcell.ColorTeal,    // DarkCyan
	tcell.ColorSilver,  // Grey
	tcell.ColorGray,    // DarkGrey
	tcell.ColorRed,     // Red
	tcell.ColorLime,    // Green
	tcell.ColorYellow,  // Yellow
	tcell.ColorBlue,    // Blue
	tcell.ColorFuchsia, // Magenta
	tcell.ColorAqua,    // Cyan
	tcell.ColorWhite,   // White
}

// TcellColor converts a Color to its tcell representation.
// Total over every variant: RGB channels and palette indices pass through
// unchanged, the zero value maps to the terminal default.
func TcellColor(c Color) tcell.Color {
	switch c.kind {
	case colorNamed:
		return namedTcell[c.idx]
	case colorANSI:
		return tcell.PaletteColor(int(c.idx))
	case colorRGB:
		return tcell.NewRGBColor(int32(c.r), int32(c.g), int32(c.b))
	default:
		return tcell.ColorDefault
	}
}

// TcellAttr converts an Attr bitmask to tcell's AttrMask
func TcellAttr(a Attr) tcell.AttrMask {
	var mask tcell.AttrMask
	if a&AttrBold != 0 {
		mask |= tcell.AttrBold
	}
	if a&AttrDim != 0 {
		mask |= tcell.AttrDim
	}
	if a&AttrItalic != 0 {
		mask |= tcell.AttrItalic
	}
	if a&AttrUnderline != 0 {
		mask |= tcell.AttrUnderline
	}
	if a&AttrBlink != 0 {
		mask |= tcell.AttrBlink
	}
	if a&AttrReverse != 0 {
		mask |= tcell.AttrReverse
	}
	if a&AttrStrikeThrough != 0 {
		mask |= tcell.AttrStrikeThrough
	}
	return mask
}

// TcellStyle converts a Sheet to a tcell.Style ready to be applied to
// screen cells. The identity sheet converts to tcell.StyleDefault.
func TcellStyle(s Sheet) tcell.Style {
	return tcell.StyleDefault.
		Foreground(TcellColor(s.Fg)).
		Background(TcellColor(s.Bg)).
		Attributes(TcellAttr(s.Attrs))
}
