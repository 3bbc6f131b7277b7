package theme

import (
	"sync"

	"github.com/lixenwraith/promptstyle/style"
)

// RenderConfig is the full theme for a prompt interaction: one styling
// entry per semantic role. A rendering engine reads the entry for each
// role it draws; nothing here performs terminal output itself.
type RenderConfig struct {
	// PromptPrefix is the glyph rendered before the prompt message.
	// A space character separates it from the message.
	PromptPrefix style.Styled[string]

	// Prompt styles the prompt message, for all prompt types.
	Prompt style.Sheet

	// DefaultValue styles the default value display. Default values are
	// rendered wrapped in parenthesis, e.g. (yes), with unstyled space
	// separators on both sides.
	DefaultValue style.Sheet

	// TextInput styles text the user is typing, cursor included.
	// An unstyled space separates it from the prompt message.
	TextInput InputConfig

	// Answer styles the final submitted answer.
	// An unstyled space separates it from the prompt message.
	Answer style.Sheet

	// ErrorMessage styles validation error messages.
	ErrorMessage ErrorMessageConfig
}

// Empty returns the config in which no colors or attributes are applied
// anywhere. A renderer holding it emits no styling at all, which suits
// non-terminal output.
func Empty() RenderConfig {
	return RenderConfig{
		PromptPrefix: style.NewStyled("?"),
		Prompt:       style.EmptySheet(),
		DefaultValue: style.EmptySheet(),
		TextInput:    EmptyInputConfig(),
		Answer:       style.EmptySheet(),
		ErrorMessage: EmptyErrorMessageConfig(),
	}
}

// Default returns the curated theme: green prompt prefix, cyan answer,
// inverted input cursor, red error prefix and message
func Default() RenderConfig {
	return RenderConfig{
		PromptPrefix: style.NewStyled("?").WithFg(style.Green),
		Prompt:       style.EmptySheet(),
		DefaultValue: style.EmptySheet(),
		TextInput:    DefaultInputConfig(),
		Answer:       style.EmptySheet().WithFg(style.Cyan),
		ErrorMessage: DefaultErrorMessageConfig(),
	}
}

var sharedDefault = sync.OnceValue(func() *RenderConfig {
	cfg := Default()
	return &cfg
})

var sharedEmpty = sync.OnceValue(func() *RenderConfig {
	cfg := Empty()
	return &cfg
})

// SharedDefault returns the process-wide Default instance, constructed on
// first call and shared by reference thereafter. Callers must not mutate
// it; custom themes are built by value from Default().
func SharedDefault() *RenderConfig {
	return sharedDefault()
}

// SharedEmpty returns the process-wide Empty instance, constructed on
// first call and shared by reference thereafter. Callers must not mutate
// it; custom themes are built by value from Empty().
func SharedEmpty() *RenderConfig {
	return sharedEmpty()
}

// WithPromptPrefix returns the config with the prompt prefix replaced
func (c RenderConfig) WithPromptPrefix(prefix style.Styled[string]) RenderConfig {
	c.PromptPrefix = prefix
	return c
}

// WithPrompt returns the config with the prompt message sheet replaced
func (c RenderConfig) WithPrompt(prompt style.Sheet) RenderConfig {
	c.Prompt = prompt
	return c
}

// WithDefaultValue returns the config with the default value sheet replaced
func (c RenderConfig) WithDefaultValue(defaultValue style.Sheet) RenderConfig {
	c.DefaultValue = defaultValue
	return c
}

// WithTextInput returns the config with the text input config replaced
func (c RenderConfig) WithTextInput(textInput InputConfig) RenderConfig {
	c.TextInput = textInput
	return c
}

// WithAnswer returns the config with the answer sheet replaced
func (c RenderConfig) WithAnswer(answer style.Sheet) RenderConfig {
	c.Answer = answer
	return c
}

// WithErrorMessage returns the config with the error message config replaced
func (c RenderConfig) WithErrorMessage(errorMessage ErrorMessageConfig) RenderConfig {
	c.ErrorMessage = errorMessage
	return c
}
