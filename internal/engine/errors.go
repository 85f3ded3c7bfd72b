package engine

import (
	"errors"

	"github.com/dshills/treenav/internal/engine/buffer"
	"github.com/dshills/treenav/internal/engine/history"
)

// Errors returned by document operations.
var (
	// ErrOffsetOutOfRange indicates an offset is outside the text.
	ErrOffsetOutOfRange = buffer.ErrOffsetOutOfRange

	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = buffer.ErrRangeInvalid

	// ErrEditsOverlap indicates edits overlap.
	ErrEditsOverlap = buffer.ErrEditsOverlap

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = history.ErrNothingToRedo

	// ErrReadOnly indicates an edit was attempted on a read-only document.
	ErrReadOnly = errors.New("document is read-only")

	// ErrNoSyntaxTree indicates the document has neither a parser nor a
	// tree for its current text.
	ErrNoSyntaxTree = errors.New("no syntax tree for document")
)
