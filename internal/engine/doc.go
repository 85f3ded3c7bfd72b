// Package engine provides the document model the command layer works on.
//
// A Document holds the current text snapshot, the selection and a syntax
// tree for the text. The engine is built on several sub-packages:
//
//   - buffer: immutable text snapshots with line and grapheme lookups
//   - cursor: directional ranges and multi-range selections
//   - syntax: arena syntax trees and descent queries
//   - structure: the structural selection commands
//   - history: snapshot-based undo/redo
//
// # Thread Safety
//
// All Document operations are safe for concurrent use. Reads take a shared
// lock; edits and selection changes take an exclusive one.
//
// # Basic Usage
//
//	doc := engine.New(
//	    engine.WithContent(src),
//	    engine.WithLanguage("rust"),
//	    engine.WithParser(treesitter.NewParser()),
//	)
//
//	tree, err := doc.Tree(ctx)
//	if err != nil {
//	    return err
//	}
//	doc.SetSelection(structure.SelectAllSiblings(tree, doc.Text(), doc.Selection()))
//
// # Syntax Trees
//
// The tree is parsed lazily and cached per text revision, so a caller
// always sees a tree that matches the text it reads. Documents without a
// parser can be given a fixed tree with WithTree or SetTree; such a tree is
// only valid until the next edit.
package engine
