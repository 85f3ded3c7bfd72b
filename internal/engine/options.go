package engine

import (
	"github.com/dshills/treenav/internal/engine/cursor"
	"github.com/dshills/treenav/internal/engine/syntax"
)

// Default configuration values.
const (
	DefaultTabWidth       = 4
	DefaultMaxUndoEntries = 1000
)

// Option configures a Document during creation.
type Option func(*Document)

// WithContent sets the initial content of the document.
func WithContent(content string) Option {
	return func(d *Document) {
		d.initContent = content
	}
}

// WithLanguage sets the language passed to the parser.
func WithLanguage(language string) Option {
	return func(d *Document) {
		d.language = language
	}
}

// WithPath records the file the document was loaded from.
func WithPath(path string) Option {
	return func(d *Document) {
		d.path = path
	}
}

// WithParser sets the parser used to build syntax trees.
func WithParser(p Parser) Option {
	return func(d *Document) {
		d.parser = p
	}
}

// WithTree sets a fixed tree for the initial content.
func WithTree(tree *syntax.Tree) Option {
	return func(d *Document) {
		d.initTree = tree
	}
}

// WithSelection sets the initial selection.
func WithSelection(sel cursor.Selection) Option {
	return func(d *Document) {
		d.sel = sel
	}
}

// WithTabWidth sets the tab width for the document.
func WithTabWidth(width int) Option {
	return func(d *Document) {
		if width > 0 {
			d.tabWidth = width
		}
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(d *Document) {
		if max > 0 {
			d.maxUndoEntries = max
		}
	}
}

// WithReadOnly creates a read-only document.
// Edits will return ErrReadOnly.
func WithReadOnly() Option {
	return func(d *Document) {
		d.readOnly = true
	}
}
