// Package history provides undo/redo for documents.
//
// Text and selections are immutable snapshots, so an undo entry is simply
// the State a document had before a change. Undo swaps the current state
// with the top of the undo stack and Redo does the reverse:
//
//	h := history.New(100)
//	h.Push(before, "indent")
//	prev, err := h.Undo(current)
//
// Pushing a new entry clears the redo stack.
package history
