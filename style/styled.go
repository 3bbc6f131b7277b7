package style

// Styled pairs a fixed label with its own foreground and background,
// independent of the Sheet-governed roles around it. Used for the short
// glyphs of a prompt (prefix, error prefix) rather than runtime text.
type Styled[T any] struct {
	Content T
	Fg      Color
	Bg      Color
}

// NewStyled returns content with no colors set
func NewStyled[T any](content T) Styled[T] {
	return Styled[T]{Content: content}
}

// WithFg returns the label with the foreground color replaced
func (s Styled[T]) WithFg(c Color) Styled[T] {
	s.Fg = c
	return s
}

// WithBg returns the label with the background color replaced
func (s Styled[T]) WithBg(c Color) Styled[T] {
	s.Bg = c
	return s
}
