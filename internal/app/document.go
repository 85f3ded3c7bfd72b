package app

import (
	"os"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/dshills/treenav/internal/engine"
	"github.com/dshills/treenav/internal/engine/syntax/treesitter"
)

// DocumentManager tracks open documents by path and the active one.
type DocumentManager struct {
	mu sync.RWMutex

	documents map[string]*engine.Document
	active    *engine.Document

	parser    engine.Parser
	tabWidth  int
	undoLimit int
}

// NewDocumentManager creates a manager whose documents parse with parser
// and keep up to undoLimit undo steps.
func NewDocumentManager(parser engine.Parser, tabWidth, undoLimit int) *DocumentManager {
	return &DocumentManager{
		documents: make(map[string]*engine.Document),
		parser:    parser,
		tabWidth:  tabWidth,
		undoLimit: undoLimit,
	}
}

// Open reads the file at path and opens it. An empty language is detected
// from the file extension. The opened document becomes active.
func (dm *DocumentManager) Open(path, language string) (*engine.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return dm.OpenContent(path, string(content), language)
}

// OpenContent opens content under path, replacing a document already open
// there. The opened document becomes active.
func (dm *DocumentManager) OpenContent(path, content, language string, opts ...engine.Option) (*engine.Document, error) {
	if language == "" {
		lang, ok := treesitter.LanguageForPath(path)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownLanguage, "%s", path)
		}
		language = lang
	}

	base := []engine.Option{
		engine.WithPath(path),
		engine.WithContent(content),
		engine.WithLanguage(language),
		engine.WithParser(dm.parser),
		engine.WithTabWidth(dm.tabWidth),
		engine.WithMaxUndoEntries(dm.undoLimit),
	}
	doc := engine.New(append(base, opts...)...)

	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.documents[path] = doc
	dm.active = doc
	return doc, nil
}

// Close closes the document at path. Closing the active document leaves no
// document active.
func (dm *DocumentManager) Close(path string) error {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, ok := dm.documents[path]
	if !ok {
		return errors.Wrapf(ErrDocumentNotFound, "%s", path)
	}
	delete(dm.documents, path)
	if dm.active == doc {
		dm.active = nil
	}
	return nil
}

// Active returns the active document, or nil.
func (dm *DocumentManager) Active() *engine.Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return dm.active
}

// SetActiveByPath makes the document at path active.
func (dm *DocumentManager) SetActiveByPath(path string) error {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, ok := dm.documents[path]
	if !ok {
		return errors.Wrapf(ErrDocumentNotFound, "%s", path)
	}
	dm.active = doc
	return nil
}

// Get returns the document open at path.
func (dm *DocumentManager) Get(path string) (*engine.Document, bool) {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	doc, ok := dm.documents[path]
	return doc, ok
}

// Paths returns the paths of all open documents, sorted.
func (dm *DocumentManager) Paths() []string {
	dm.mu.RLock()
	defer dm.mu.RUnlock()

	paths := make([]string, 0, len(dm.documents))
	for p := range dm.documents {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Count returns the number of open documents.
func (dm *DocumentManager) Count() int {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return len(dm.documents)
}
