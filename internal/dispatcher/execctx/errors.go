package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingEngine indicates the engine is required but not set.
	ErrMissingEngine = errors.New("execution context: engine is required")

	// ErrMissingCursors indicates cursors are required but not set.
	ErrMissingCursors = errors.New("execution context: cursors are required")

	// ErrMissingSyntax indicates a syntax tree source is required but not set.
	ErrMissingSyntax = errors.New("execution context: syntax is required")

	// ErrReadOnly indicates the buffer is read-only.
	ErrReadOnly = errors.New("execution context: buffer is read-only")
)
