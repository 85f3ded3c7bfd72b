package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/dshills/treenav/internal/engine/buffer"
	"github.com/dshills/treenav/internal/engine/cursor"
	"github.com/dshills/treenav/internal/engine/history"
	"github.com/dshills/treenav/internal/engine/syntax"
)

// Re-export commonly used types for convenience.
type (
	// ByteOffset is a byte position in the text.
	ByteOffset = buffer.ByteOffset

	// Point represents a line/column position.
	Point = buffer.Point

	// Edit represents an edit operation.
	Edit = buffer.Edit

	// Selection is a set of directional ranges with a primary.
	Selection = cursor.Selection

	// RevisionID uniquely identifies a text revision.
	RevisionID = buffer.RevisionID
)

// Parser builds a syntax tree for source text.
// treesitter.Parser implements it.
type Parser interface {
	Parse(ctx context.Context, src []byte, language string) (*syntax.Tree, error)
}

// Document is the text, selection and syntax tree of one buffer.
//
// All operations are safe for concurrent use.
type Document struct {
	mu sync.RWMutex

	text    *buffer.Text
	sel     cursor.Selection
	history *history.History

	parser  Parser
	tree    *syntax.Tree
	treeRev buffer.RevisionID

	// Configuration
	language       string
	path           string
	tabWidth       int
	maxUndoEntries int
	readOnly       bool

	// Initialization
	initContent string
	initTree    *syntax.Tree
}

// New creates a Document with the given options.
// The selection defaults to a cursor at offset 0.
func New(opts ...Option) *Document {
	d := &Document{
		tabWidth:       DefaultTabWidth,
		maxUndoEntries: DefaultMaxUndoEntries,
	}

	for _, opt := range opts {
		opt(d)
	}

	d.text = buffer.NewText(d.initContent)
	d.sel = clampSelection(d.sel, d.text.Len())
	d.history = history.New(d.maxUndoEntries)
	if d.initTree != nil {
		d.tree = d.initTree
		d.treeRev = d.text.RevisionID()
	}

	return d
}

// Text returns the current text snapshot.
func (d *Document) Text() *buffer.Text {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text
}

// Content returns the current text as a string.
func (d *Document) Content() string {
	return d.Text().String()
}

// Selection returns the current selection.
func (d *Document) Selection() cursor.Selection {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sel
}

// Snapshot returns the text and selection as one consistent pair.
func (d *Document) Snapshot() (*buffer.Text, cursor.Selection) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text, d.sel
}

// SetSelection replaces the selection. Offsets are clamped to the text.
func (d *Document) SetSelection(sel cursor.Selection) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sel = clampSelection(sel, d.text.Len())
}

// Language returns the document language.
func (d *Document) Language() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.language
}

// Path returns the file path the document was loaded from, if any.
func (d *Document) Path() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}

// TabWidth returns the configured tab width.
func (d *Document) TabWidth() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.tabWidth
}

// IsReadOnly returns true if edits are rejected.
func (d *Document) IsReadOnly() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.readOnly
}

// SetTree installs a tree for the current text revision.
func (d *Document) SetTree(tree *syntax.Tree) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tree = tree
	d.treeRev = d.text.RevisionID()
}

// Tree returns a syntax tree matching the current text, parsing it if the
// cached tree belongs to an older revision.
func (d *Document) Tree(ctx context.Context) (*syntax.Tree, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	rev := d.text.RevisionID()
	if d.tree != nil && d.treeRev == rev {
		return d.tree, nil
	}
	if d.parser == nil {
		return nil, ErrNoSyntaxTree
	}

	tree, err := d.parser.Parse(ctx, []byte(d.text.String()), d.language)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", d.language, err)
	}
	d.tree = tree
	d.treeRev = rev
	return tree, nil
}

// Apply applies edits to the text as one undo step and maps the selection
// through them. Edits may be given in any order but must not overlap.
func (d *Document) Apply(description string, edits ...Edit) error {
	if len(edits) == 0 {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.readOnly {
		return ErrReadOnly
	}

	sorted := append([]Edit(nil), edits...)
	cursor.SortEditsReverse(sorted)

	next, err := d.text.Apply(sorted...)
	if err != nil {
		return err
	}

	d.history.Push(history.State{Text: d.text, Selection: d.sel}, description)
	d.text = next
	d.sel = clampSelection(cursor.TransformSelection(d.sel, sorted), next.Len())
	return nil
}

// Undo restores the state before the last edit.
func (d *Document) Undo() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	prev, err := d.history.Undo(history.State{Text: d.text, Selection: d.sel})
	if err != nil {
		return err
	}
	d.text, d.sel = prev.Text, prev.Selection
	return nil
}

// Redo reapplies the last undone edit.
func (d *Document) Redo() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	next, err := d.history.Redo(history.State{Text: d.text, Selection: d.sel})
	if err != nil {
		return err
	}
	d.text, d.sel = next.Text, next.Selection
	return nil
}

// CanUndo returns true if there is an edit to undo.
func (d *Document) CanUndo() bool {
	return d.history.CanUndo()
}

// CanRedo returns true if there is an edit to redo.
func (d *Document) CanRedo() bool {
	return d.history.CanRedo()
}

func clampSelection(sel cursor.Selection, max ByteOffset) cursor.Selection {
	return sel.Map(func(_ int, r cursor.Range) cursor.Range {
		return r.Clamp(max)
	})
}
