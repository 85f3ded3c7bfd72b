package cursor

import (
	"sort"

	"github.com/dshills/treenav/internal/engine/buffer"
)

// Edit is an alias for buffer.Edit for convenience.
type Edit = buffer.Edit

// TransformOffset updates an offset after an edit.
// Returns the new offset position.
//
// Transformation rules:
//   - If edit is entirely before offset: adjust offset by the edit's delta
//   - If edit starts at or after offset: offset unchanged
//   - If edit spans offset: move offset to end of new text
func TransformOffset(offset ByteOffset, edit Edit) ByteOffset {
	if edit.Range.End <= offset {
		return offset + edit.Delta()
	}

	if edit.Range.Start >= offset {
		return offset
	}

	return edit.Range.Start + ByteOffset(len(edit.NewText))
}

// TransformRange updates a range after an edit.
// Both anchor and head are transformed independently, so insertions at a
// cursor push it forward.
func TransformRange(r Range, edit Edit) Range {
	return Range{
		Anchor: TransformOffset(r.Anchor, edit),
		Head:   TransformOffset(r.Head, edit),
	}
}

// TransformSelection maps every range of a selection through edits.
// Edits must be in reverse order (descending start) as applied by
// buffer.Text.Apply; each edit is then valid in the coordinates of the
// original text, and they are mapped from last to first position.
func TransformSelection(sel Selection, edits []Edit) Selection {
	return sel.Map(func(_ int, r Range) Range {
		for _, e := range edits {
			r = TransformRange(r, e)
		}
		return r
	})
}

// SortEditsReverse sorts edits in descending order by start position.
// This mutates the input slice.
func SortEditsReverse(edits []Edit) {
	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].Range.Start > edits[j].Range.Start
	})
}
