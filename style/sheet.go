package style

// Sheet bundles foreground, background, and attributes independent of any
// particular text. The zero value is the identity sheet: applying it
// changes nothing, letting the terminal defaults through.
type Sheet struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// EmptySheet returns the identity sheet, with no colors or attributes set
func EmptySheet() Sheet {
	return Sheet{}
}

// IsZero returns true if the sheet has no colors or attributes set
func (s Sheet) IsZero() bool {
	return s == Sheet{}
}

// WithFg returns the sheet with the foreground color replaced
func (s Sheet) WithFg(c Color) Sheet {
	s.Fg = c
	return s
}

// WithBg returns the sheet with the background color replaced
func (s Sheet) WithBg(c Color) Sheet {
	s.Bg = c
	return s
}

// WithAttr returns the sheet with attr added to the attribute set.
// Attributes already present stay set, so repeated application is a no-op.
func (s Sheet) WithAttr(attr Attr) Sheet {
	s.Attrs |= attr
	return s
}
