package theme

import (
	"github.com/lixenwraith/promptstyle/style"
)

// ErrorMessageConfig styles error messages: a fixed prefix glyph, the
// separator between prefix and message, and the message body.
//
// The separator is a single space character. Styling it is still useful
// when the message carries a background color and the band should run
// unbroken from prefix to message.
type ErrorMessageConfig struct {
	Prefix    style.Styled[string]
	Separator style.Sheet
	Message   style.Sheet
}

// EmptyErrorMessageConfig returns the config in which no colors or
// attributes are applied
func EmptyErrorMessageConfig() ErrorMessageConfig {
	return ErrorMessageConfig{
		Prefix: style.NewStyled("#"),
	}
}

// DefaultErrorMessageConfig returns the curated config: red prefix glyph,
// red message body, unstyled separator
func DefaultErrorMessageConfig() ErrorMessageConfig {
	return ErrorMessageConfig{
		Prefix:    style.NewStyled("#").WithFg(style.Red),
		Separator: style.EmptySheet(),
		Message:   style.EmptySheet().WithFg(style.Red),
	}
}

// WithPrefix returns the config with the prefix label replaced
func (c ErrorMessageConfig) WithPrefix(prefix style.Styled[string]) ErrorMessageConfig {
	c.Prefix = prefix
	return c
}

// WithSeparator returns the config with the separator sheet replaced
func (c ErrorMessageConfig) WithSeparator(separator style.Sheet) ErrorMessageConfig {
	c.Separator = separator
	return c
}

// WithMessage returns the config with the message sheet replaced
func (c ErrorMessageConfig) WithMessage(message style.Sheet) ErrorMessageConfig {
	c.Message = message
	return c
}
