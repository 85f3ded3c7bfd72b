// Package editor provides the editor namespace handler.
//
// Actions:
//   - editor.insertIndent: insert one indent unit at each cursor
//   - editor.undo: revert the last edit, count times
//   - editor.redo: reapply the last undone edit, count times
//
// editor.insertIndent is the indentation collaborator of supertab. By
// default it indents every cursor; the "cursors" argument restricts it to
// the listed selection indices. All its edits are one undo step.
//
//	h := editor.NewHandlerWithConfig(indentSize, useTabs)
//	dispatcher.RegisterNamespace("editor", h)
package editor
