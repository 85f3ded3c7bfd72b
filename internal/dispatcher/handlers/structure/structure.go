package structure

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/treenav/internal/dispatcher/execctx"
	"github.com/dshills/treenav/internal/dispatcher/handler"
	"github.com/dshills/treenav/internal/dispatcher/handlers/editor"
	"github.com/dshills/treenav/internal/engine/cursor"
	nav "github.com/dshills/treenav/internal/engine/structure"
	"github.com/dshills/treenav/internal/engine/syntax"
	"github.com/dshills/treenav/internal/input"
)

// Namespace is the dispatcher namespace of this package.
const Namespace = "structure"

// Action names.
const (
	ActionSelectAllSiblings     = "structure.selectAllSiblings"
	ActionSelectAllChildren     = "structure.selectAllChildren"
	ActionMoveParentNodeStart   = "structure.moveParentNodeStart"
	ActionExtendParentNodeStart = "structure.extendParentNodeStart"
	ActionMoveParentNodeEnd     = "structure.moveParentNodeEnd"
	ActionExtendParentNodeEnd   = "structure.extendParentNodeEnd"
	ActionSupertab              = "structure.supertab"
)

// Command names as used in key bindings and configuration.
const (
	CommandSelectAllSiblings     = "select_all_siblings"
	CommandSelectAllChildren     = "select_all_children"
	CommandMoveParentNodeStart   = "move_parent_node_start"
	CommandExtendParentNodeStart = "extend_parent_node_start"
	CommandMoveParentNodeEnd     = "move_parent_node_end"
	CommandExtendParentNodeEnd   = "extend_parent_node_end"
	CommandSupertab              = "supertab"
	CommandInsertTab             = "insert_tab"
	CommandUndo                  = "undo"
	CommandRedo                  = "redo"
)

// DataSelection is the result data key holding the resulting selection.
const DataSelection = "selection"

// Command describes one bindable command.
type Command struct {
	Name        string
	Action      string
	Description string
}

var commands = []Command{
	{CommandSelectAllSiblings, ActionSelectAllSiblings, "Select all siblings of the current node"},
	{CommandSelectAllChildren, ActionSelectAllChildren, "Select all children of the current node"},
	{CommandMoveParentNodeStart, ActionMoveParentNodeStart, "Move to beginning of the parent node"},
	{CommandExtendParentNodeStart, ActionExtendParentNodeStart, "Extend to beginning of the parent node"},
	{CommandMoveParentNodeEnd, ActionMoveParentNodeEnd, "Move to end of the parent node"},
	{CommandExtendParentNodeEnd, ActionExtendParentNodeEnd, "Extend to end of the parent node"},
	{CommandSupertab, ActionSupertab, "Goto end of the parent node or indent"},
	{CommandInsertTab, editor.ActionInsertIndent, "Insert indentation"},
	{CommandUndo, editor.ActionUndo, "Undo change"},
	{CommandRedo, editor.ActionRedo, "Redo change"},
}

// Commands returns the bindable commands, sorted by name.
func Commands() []Command {
	out := append([]Command(nil), commands...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ResolveCommand maps a command name to its action name.
// Action names are accepted unchanged.
func ResolveCommand(command string) (string, bool) {
	for _, c := range commands {
		if c.Name == command || c.Action == command {
			return c.Action, true
		}
	}
	return "", false
}

// parentCommands maps parent navigation commands to their boundary and
// movement.
var parentCommands = map[string]struct {
	boundary nav.Boundary
	movement nav.Movement
}{
	CommandMoveParentNodeStart:   {nav.BoundaryStart, nav.Move},
	CommandExtendParentNodeStart: {nav.BoundaryStart, nav.Extend},
	CommandMoveParentNodeEnd:     {nav.BoundaryEnd, nav.Move},
	CommandExtendParentNodeEnd:   {nav.BoundaryEnd, nav.Extend},
}

// SupertabOptions returns the supertab options navigating with the given
// parent navigation command.
func SupertabOptions(command string, policy nav.SupertabPolicy) (nav.SupertabOptions, error) {
	p, ok := parentCommands[command]
	if !ok {
		return nav.SupertabOptions{}, fmt.Errorf("%w: %q", ErrUnknownSupertabCommand, command)
	}
	return nav.SupertabOptions{Boundary: p.boundary, Movement: p.movement, Policy: policy}, nil
}

// ParsePolicy parses a supertab policy name ("per_cursor" or "unanimous").
func ParsePolicy(s string) (nav.SupertabPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", nav.PerCursor.String():
		return nav.PerCursor, nil
	case nav.Unanimous.String():
		return nav.Unanimous, nil
	}
	return nav.PerCursor, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Handler handles the structure namespace.
type Handler struct {
	*handler.BaseNamespaceHandler

	mu       sync.RWMutex
	supertab nav.SupertabOptions
	indenter handler.NamespaceHandler
}

// Option configures a Handler.
type Option func(*Handler)

// WithSupertabOptions sets the supertab navigation and policy.
func WithSupertabOptions(opts nav.SupertabOptions) Option {
	return func(h *Handler) {
		h.supertab = opts
	}
}

// WithIndenter sets the handler receiving editor.insertIndent for cursors
// supertab decides to indent.
func WithIndenter(indenter handler.NamespaceHandler) Option {
	return func(h *Handler) {
		h.indenter = indenter
	}
}

// NewHandler creates a structure handler.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		BaseNamespaceHandler: handler.NewBaseNamespaceHandler(Namespace),
		supertab:             nav.DefaultSupertabOptions(),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.Register(ActionSelectAllSiblings, h.selection(nav.SelectAllSiblings))
	h.Register(ActionSelectAllChildren, h.selection(nav.SelectAllChildren))
	h.Register(ActionMoveParentNodeStart, h.parent(nav.BoundaryStart, nav.Move))
	h.Register(ActionExtendParentNodeStart, h.parent(nav.BoundaryStart, nav.Extend))
	h.Register(ActionMoveParentNodeEnd, h.parent(nav.BoundaryEnd, nav.Move))
	h.Register(ActionExtendParentNodeEnd, h.parent(nav.BoundaryEnd, nav.Extend))
	h.Register(ActionSupertab, h.handleSupertab)
	return h
}

// SupertabOptions returns the supertab options.
func (h *Handler) SupertabOptions() nav.SupertabOptions {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.supertab
}

// ResolveCommand implements input.CommandResolver.
func (h *Handler) ResolveCommand(command string) (string, bool) {
	return ResolveCommand(command)
}

type selectionCommand func(tree *syntax.Tree, text nav.Text, sel cursor.Selection) cursor.Selection

func (h *Handler) selection(cmd selectionCommand) handler.Func {
	return func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		tree, err := treeFor(ctx)
		if err != nil {
			return handler.Error(err)
		}
		before := ctx.Cursors.Selection()
		return commit(ctx, before, cmd(tree, ctx.Engine.Text(), before))
	}
}

func (h *Handler) parent(boundary nav.Boundary, movement nav.Movement) handler.Func {
	return func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		tree, err := treeFor(ctx)
		if err != nil {
			return handler.Error(err)
		}
		text := ctx.Engine.Text()
		before := ctx.Cursors.Selection()

		sel := before
		for i := 0; i < ctx.GetCount(); i++ {
			next := nav.ParentNodeBoundary(tree, text, sel, boundary, movement)
			if next.Equals(sel) {
				break
			}
			sel = next
		}
		return commit(ctx, before, sel)
	}
}

func (h *Handler) handleSupertab(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	tree, err := treeFor(ctx)
	if err != nil {
		return handler.Error(err)
	}
	before := ctx.Cursors.Selection()
	res := nav.Supertab(tree, ctx.Engine.Text(), before, h.SupertabOptions())

	if !res.NeedsIndent() || h.indenter == nil || ctx.DryRun {
		return commit(ctx, before, nav.NormalizeSelection(res.Selection))
	}

	ctx.Cursors.SetSelection(res.Selection)
	indent := input.NewAction(editor.ActionInsertIndent).WithArg(editor.ArgCursors, res.Indent)
	result := h.indenter.HandleAction(indent, ctx)
	if result.IsError() {
		ctx.Cursors.SetSelection(before)
		return result
	}

	sel := nav.NormalizeSelection(ctx.Cursors.Selection())
	ctx.Cursors.SetSelection(sel)
	return handler.Success().
		WithEdits(result.Edits).
		WithData(DataSelection, sel)
}

// treeFor validates ctx and returns a tree matching its text.
func treeFor(ctx *execctx.ExecutionContext) (*syntax.Tree, error) {
	if err := ctx.ValidateForSelection(); err != nil {
		return nil, err
	}
	return ctx.Syntax.Tree(ctx.Context())
}

// commit stores sel unless the context is a dry run.
func commit(ctx *execctx.ExecutionContext, before, sel cursor.Selection) handler.Result {
	if sel.Equals(before) {
		return handler.NoOp().WithData(DataSelection, sel)
	}
	if !ctx.DryRun {
		ctx.Cursors.SetSelection(sel)
	}
	return handler.Success().WithData(DataSelection, sel)
}
