// Package cursor provides directional ranges and multi-range selections.
//
// The cursor package handles:
//
//   - Directional ranges with the anchor/head model via Range
//   - Ordered multi-range selections with a primary range via Selection
//   - Range transformation after text edits
//
// Range Model:
//
// Ranges use an anchor/head model where:
//   - Anchor: The position where the range started
//   - Head: The moving end, where the cursor is drawn
//
// When Anchor == Head, the range is a cursor with no selected text. A range
// extends forward (head > anchor) or backward (head < anchor), and commands
// that replace a range with new spans keep its direction.
//
// Multi-Range Support:
//
// Selection holds one or more ranges and the index of the primary range.
// It never becomes empty; constructing one from no ranges yields a cursor
// at offset 0.
//
// Basic usage:
//
//	// A forward range over bytes [4, 9) and a backward cursor-sized one
//	a := cursor.NewRange(4, 9)
//	b := cursor.FromExtent(buffer.NewRange(12, 13), cursor.Backward)
//
//	sel := cursor.NewSelection([]cursor.Range{a, b}, 0)
//
//	// Map through an edit
//	sel = cursor.TransformSelection(sel, []buffer.Edit{buffer.NewInsert(0, "  ")})
//
// Thread Safety:
//
// Range and Selection are immutable value types and safe for concurrent use.
package cursor
