// Package structure provides the dispatcher handlers for syntax-aware
// selection commands.
//
// The Handler type serves the "structure" namespace:
//   - structure.selectAllSiblings (A-a): select every sibling of each selection
//   - structure.selectAllChildren (A-I): select every child of each selection
//   - structure.moveParentNodeStart (A-b): move to the start of the parent node
//   - structure.extendParentNodeStart: extend to the start of the parent node
//   - structure.moveParentNodeEnd (A-e): move to the end of the parent node
//   - structure.extendParentNodeEnd: extend to the end of the parent node
//   - structure.supertab (tab): indent or jump to the parent node end
//
// Parent navigation repeats for the action count. Supertab hands cursors
// that only have whitespace before them to the indenter (usually the
// editor namespace handler) and normalizes the selection afterwards.
//
// Every result carries the new selection under DataSelection.
package structure
