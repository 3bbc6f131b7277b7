// Package style provides the low-level styling vocabulary for prompt themes.
//
// Features:
//   - Color: 16 named terminal colors, 24-bit RGB, 8-bit ANSI palette
//   - Attr: bitmask of independent text attributes (bold, italic, ...)
//   - Sheet: reusable fg/bg/attribute bundle, zero value is the identity
//   - Styled: a fixed label carrying its own fg/bg, independent of any Sheet
//   - One-way, total conversions into tcell's Color/AttrMask/Style
//
// Every type is a small comparable value, immutable after its builder chain
// completes. Builders take a value receiver and return the updated copy, so
// a chain reads as a left-to-right sequence of overrides.
package style
