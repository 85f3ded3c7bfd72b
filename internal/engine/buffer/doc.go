// Package buffer provides the immutable text snapshot and the position types
// shared by the cursor, syntax and structure packages.
//
// All positions are byte offsets, the same coordinate space tree-sitter
// reports node spans in. Line/column conversion goes through a line-start
// index built once per snapshot.
//
// Basic usage:
//
//	text := buffer.NewText("fn main() {\n}\n")
//
//	// Convert between offsets and points
//	pt := text.OffsetToPoint(11)      // (0:11)
//	off := text.PointToOffset(pt)     // 11
//
//	// Step over one user-perceived character
//	next := text.NextGraphemeOffset(0)
//
//	// Edits produce a new snapshot; the old one is unchanged
//	edited, err := text.Apply(buffer.NewInsert(12, "    "))
//
// Position Types:
//
//   - ByteOffset: Raw byte position in the text
//   - Point: Line and column position (0-indexed, column in bytes)
//   - Range: Half-open byte extent [Start, End)
//
// Thread Safety:
//
// Text is never mutated after construction and may be shared freely
// between goroutines.
package buffer
