// Package syntax provides an immutable, arena-backed view of a concrete
// syntax tree.
//
// Nodes live in a flat slice owned by the Tree and refer to their parent and
// children by index, so a Tree holds no pointers between nodes and a Node is
// a small comparable handle. Trees come from a parser adapter (see the
// treesitter subpackage) or from test fixtures (see syntaxtest), both of
// which go through Builder.
//
// Node spans are byte offsets into the text the tree was parsed from.
package syntax
