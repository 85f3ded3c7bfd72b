// Package execctx provides the execution context for action handlers.
package execctx

import (
	"context"

	"github.com/dshills/treenav/internal/engine/buffer"
	"github.com/dshills/treenav/internal/engine/cursor"
	"github.com/dshills/treenav/internal/engine/syntax"
)

// EngineInterface abstracts the text of a document for handlers.
type EngineInterface interface {
	// Text returns the current immutable text snapshot.
	Text() *buffer.Text

	// Apply applies edits as one undo step, remapping the selection.
	Apply(description string, edits ...buffer.Edit) error

	// Undo and Redo step through the edit history.
	Undo() error
	Redo() error

	IsReadOnly() bool
}

// CursorManagerInterface abstracts selection state for handlers.
type CursorManagerInterface interface {
	Selection() cursor.Selection
	SetSelection(sel cursor.Selection)
}

// SyntaxInterface provides a syntax tree matching the current text.
type SyntaxInterface interface {
	Tree(ctx context.Context) (*syntax.Tree, error)
}

// ExecutionContext provides handlers with access to editor state.
type ExecutionContext struct {
	// Ctx carries cancellation for blocking work such as parsing.
	Ctx context.Context

	// Engine provides text access.
	Engine EngineInterface

	// Cursors manages the selection.
	Cursors CursorManagerInterface

	// Syntax provides the syntax tree.
	Syntax SyntaxInterface

	// Count is the repeat count (1 if not specified).
	Count int

	// DryRun indicates the action should not modify state.
	DryRun bool

	// Data holds handler-specific data passed between handlers.
	Data map[string]interface{}
}

// New creates a new execution context with defaults.
func New() *ExecutionContext {
	return &ExecutionContext{
		Ctx:   context.Background(),
		Count: 1,
		Data:  make(map[string]interface{}),
	}
}

// WithContext returns the context with ctx set.
func (ctx *ExecutionContext) WithContext(c context.Context) *ExecutionContext {
	if c != nil {
		ctx.Ctx = c
	}
	return ctx
}

// WithEngine returns the context with engine set.
func (ctx *ExecutionContext) WithEngine(engine EngineInterface) *ExecutionContext {
	ctx.Engine = engine
	return ctx
}

// WithCursors returns the context with cursors set.
func (ctx *ExecutionContext) WithCursors(cursors CursorManagerInterface) *ExecutionContext {
	ctx.Cursors = cursors
	return ctx
}

// WithSyntax returns the context with the syntax source set.
func (ctx *ExecutionContext) WithSyntax(s SyntaxInterface) *ExecutionContext {
	ctx.Syntax = s
	return ctx
}

// WithCount returns the context with repeat count set.
func (ctx *ExecutionContext) WithCount(count int) *ExecutionContext {
	if count > 0 {
		ctx.Count = count
	}
	return ctx
}

// WithDryRun returns the context with dry run mode enabled.
func (ctx *ExecutionContext) WithDryRun(dryRun bool) *ExecutionContext {
	ctx.DryRun = dryRun
	return ctx
}

// GetCount returns the repeat count, defaulting to 1.
func (ctx *ExecutionContext) GetCount() int {
	if ctx.Count <= 0 {
		return 1
	}
	return ctx.Count
}

// Context returns Ctx, or context.Background when unset.
func (ctx *ExecutionContext) Context() context.Context {
	if ctx.Ctx == nil {
		return context.Background()
	}
	return ctx.Ctx
}

// IsReadOnly returns true if the buffer is read-only.
func (ctx *ExecutionContext) IsReadOnly() bool {
	return ctx.Engine != nil && ctx.Engine.IsReadOnly()
}

// SetData sets a context data value.
func (ctx *ExecutionContext) SetData(key string, value interface{}) {
	if ctx.Data == nil {
		ctx.Data = make(map[string]interface{})
	}
	ctx.Data[key] = value
}

// GetData retrieves a context data value.
func (ctx *ExecutionContext) GetData(key string) (interface{}, bool) {
	if ctx.Data == nil {
		return nil, false
	}
	v, ok := ctx.Data[key]
	return v, ok
}

// Validate checks that the context has a text engine.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Engine == nil {
		return ErrMissingEngine
	}
	return nil
}

// ValidateForSelection checks that the context can run a structural
// selection command.
func (ctx *ExecutionContext) ValidateForSelection() error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if ctx.Cursors == nil {
		return ErrMissingCursors
	}
	if ctx.Syntax == nil {
		return ErrMissingSyntax
	}
	return nil
}

// ValidateForEdit checks that the context is valid for editing operations.
func (ctx *ExecutionContext) ValidateForEdit() error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if ctx.Cursors == nil {
		return ErrMissingCursors
	}
	if ctx.IsReadOnly() {
		return ErrReadOnly
	}
	return nil
}
