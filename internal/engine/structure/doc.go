// Package structure implements syntax-aware selection commands: selecting
// all sibling or child nodes, moving or extending to the start or end of the
// enclosing node, and the supertab dispatcher that picks between indentation
// and structural navigation.
//
// Every command is a pure function of an immutable syntax tree, a text
// snapshot and a selection, and returns a new selection:
//
//	sel = structure.SelectAllSiblings(tree, text, sel)
//	sel = structure.MoveParentNodeEnd(tree, text, sel)
//
// Commands work in two phases. Each range is first mapped on its own to
// zero or more candidate ranges, then all candidates are merged by
// Normalize into a sorted selection in which no range contains another.
// Nothing is cached between calls, so commands may be re-run against a
// freshly parsed tree on every keystroke.
//
// Node Resolution:
//
// Resolve finds the smallest named node containing a range's extent. A
// zero-width range covers the grapheme that follows it, and at a boundary
// shared by two nodes the node starting there wins.
//
// Block Cursor:
//
// Parent navigation and supertab look at the grapheme under the cursor: the
// one ending at the head of a forward range, or starting at the head
// otherwise. Repeated navigation climbs one level per call because a node
// whose boundary the head already sits on is skipped.
//
// Errors:
//
// Commands never fail. A range outside the tree resolves to the root.
// Broken internal invariants panic with an *InvariantError.
package structure
