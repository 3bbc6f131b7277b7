package style

// colorKind discriminates the Color variants
type colorKind uint8

const (
	colorUnset colorKind = iota
	colorNamed           // one of the 16 base palette slots, in idx
	colorANSI            // 8-bit palette index, in idx
	colorRGB             // 24-bit color, in r/g/b
)

// Color represents a color to be used for text styling purposes.
//
// The 16 named colors are supported by almost all terminals; the RGB and
// ANSI variants require more modern ones. The zero value means "unset":
// the terminal's own default color applies.
type Color struct {
	kind    colorKind
	idx     uint8
	r, g, b uint8
}

// Named colors, identified by their base 16-color palette slot.
// Slots 0-7 are the dim half, 8-15 the bright half.
var (
	Black       = Color{kind: colorNamed, idx: 0}
	DarkRed     = Color{kind: colorNamed, idx: 1}
	DarkGreen   = Color{kind: colorNamed, idx: 2}
	DarkYellow  = Color{kind: colorNamed, idx: 3}
	DarkBlue    = Color{kind: colorNamed, idx: 4}
	DarkMagenta = Color{kind: colorNamed, idx: 5}
	DarkCyan    = Color{kind: colorNamed, idx: 6}
	Grey        = Color{kind: colorNamed, idx: 7}
	DarkGrey    = Color{kind: colorNamed, idx: 8}
	Red         = Color{kind: colorNamed, idx: 9}
	Green       = Color{kind: colorNamed, idx: 10}
	Yellow      = Color{kind: colorNamed, idx: 11}
	Blue        = Color{kind: colorNamed, idx: 12}
	Magenta     = Color{kind: colorNamed, idx: 13}
	Cyan        = Color{kind: colorNamed, idx: 14}
	White       = Color{kind: colorNamed, idx: 15}
)

// RGB returns a 24-bit color
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// ANSI returns an 8-bit xterm-256 palette color
func ANSI(index uint8) Color {
	return Color{kind: colorANSI, idx: index}
}

// IsSet returns true if the color holds a variant, false for the zero value
func (c Color) IsSet() bool {
	return c.kind != colorUnset
}
