package editor

import (
	"strings"

	"github.com/dshills/treenav/internal/dispatcher/execctx"
	"github.com/dshills/treenav/internal/dispatcher/handler"
	"github.com/dshills/treenav/internal/engine/buffer"
	"github.com/dshills/treenav/internal/engine/cursor"
	"github.com/dshills/treenav/internal/input"
)

// Action names.
const (
	ActionInsertIndent = "editor.insertIndent"
	ActionUndo         = "editor.undo"
	ActionRedo         = "editor.redo"
)

// ArgCursors is the ActionArgs key holding the selection indices to indent.
const ArgCursors = "cursors"

// Default indentation settings.
const (
	DefaultUseTabs    = false
	DefaultIndentSize = 4
)

// Handler handles the editor namespace.
type Handler struct {
	useTabs    bool
	indentSize int
}

// NewHandler creates an editor handler with default settings.
func NewHandler() *Handler {
	return NewHandlerWithConfig(DefaultIndentSize, DefaultUseTabs)
}

// NewHandlerWithConfig creates an editor handler with custom indentation.
// A non-positive size falls back to the default.
func NewHandlerWithConfig(indentSize int, useTabs bool) *Handler {
	if indentSize <= 0 {
		indentSize = DefaultIndentSize
	}
	return &Handler{
		useTabs:    useTabs,
		indentSize: indentSize,
	}
}

// Namespace returns the editor namespace.
func (h *Handler) Namespace() string {
	return "editor"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionInsertIndent, ActionUndo, ActionRedo:
		return true
	}
	return false
}

// HandleAction processes an editor action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateForEdit(); err != nil {
		return handler.Error(err)
	}

	count := ctx.GetCount()

	switch action.Name {
	case ActionInsertIndent:
		return h.insertIndent(ctx, action.Args.GetInts(ArgCursors), count)
	case ActionUndo:
		return h.undo(ctx, count)
	case ActionRedo:
		return h.redo(ctx, count)
	default:
		return handler.Errorf("unknown editor action: %s", action.Name)
	}
}

// IndentString returns one indent unit.
func (h *Handler) IndentString() string {
	if h.useTabs {
		return "\t"
	}
	return strings.Repeat(" ", h.indentSize)
}

// insertIndent inserts indentation at the cursor of each selected range.
// A nil indices slice selects every range.
func (h *Handler) insertIndent(ctx *execctx.ExecutionContext, indices []int, count int) handler.Result {
	text := ctx.Engine.Text()
	sel := ctx.Cursors.Selection()

	if indices == nil {
		indices = make([]int, sel.Len())
		for i := range indices {
			indices[i] = i
		}
	}

	unit := strings.Repeat(h.IndentString(), count)
	seen := make(map[buffer.ByteOffset]bool)
	var edits []buffer.Edit
	for _, i := range indices {
		if i < 0 || i >= sel.Len() {
			return handler.Errorf("cursor index %d out of range", i)
		}
		pos := cursorOffset(text, sel.Range(i))
		if seen[pos] {
			continue
		}
		seen[pos] = true
		edits = append(edits, buffer.NewInsert(pos, unit))
	}

	return h.apply(ctx, "insert indent", edits)
}

func (h *Handler) apply(ctx *execctx.ExecutionContext, description string, edits []buffer.Edit) handler.Result {
	if len(edits) == 0 {
		return handler.NoOp()
	}
	if ctx.DryRun {
		return handler.Success().WithEdits(edits)
	}
	if err := ctx.Engine.Apply(description, edits...); err != nil {
		return handler.Error(err)
	}
	return handler.Success().WithEdits(edits)
}

// cursorOffset returns the start of the grapheme under a block cursor.
func cursorOffset(text *buffer.Text, r cursor.Range) buffer.ByteOffset {
	if !r.IsEmpty() && r.Direction() == cursor.Forward {
		return text.PrevGraphemeOffset(r.Head)
	}
	return r.Head
}
