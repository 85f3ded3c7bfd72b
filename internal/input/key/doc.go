// Package key parses and formats key specifications in helix notation.
//
// A specification is an optional list of modifiers followed by a key:
//
//	"a"      plain character
//	"A-a"    Alt+a
//	"A-I"    Alt+Shift+i, written with the shifted character
//	"C-S-p"  Ctrl+Shift+p
//	"tab"    named key
//
// Modifiers are C (Ctrl), A (Alt), S (Shift) and M (Meta). Named keys use
// helix's lowercase names ("ret", "esc", "backspace", "space", "minus"...).
package key
