// Package theme defines the render configuration tree for interactive
// prompts: one styling entry per semantic role (prompt prefix, message,
// default value display, text input, answer, error message).
//
// A rendering engine holds one RenderConfig and reads the sheet or label
// for each role it is about to draw. Two canonical configurations exist:
//   - Default: curated colors (green prefix, cyan answer, inverted cursor)
//   - Empty: every role is the identity sheet, no styling is ever applied
//
// SharedDefault and SharedEmpty expose both as process-wide singletons so
// renderers that need no custom theme avoid rebuilding one per prompt.
// Custom themes are built by value: start from Default() or Empty() and
// chain the With* builders; the shared instances are never mutated.
package theme
