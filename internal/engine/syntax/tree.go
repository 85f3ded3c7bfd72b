package syntax

import (
	"strings"

	"github.com/dshills/treenav/internal/engine/buffer"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// NodeID indexes a node in its tree's arena.
type NodeID uint32

// NoNode is the parent of the root.
const NoNode NodeID = ^NodeID(0)

type nodeData struct {
	kind     string
	start    ByteOffset
	end      ByteOffset
	named    bool
	parent   NodeID
	children []NodeID
}

// Tree is an immutable syntax tree stored as an arena.
// The root is always node 0. Trees are built with a Builder and are safe
// for concurrent reads.
type Tree struct {
	nodes    []nodeData
	language string
}

// Root returns the root node.
func (t *Tree) Root() Node {
	return Node{tree: t, id: 0}
}

// Node returns the node with the given id.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if int(id) >= len(t.nodes) {
		return Node{}, false
	}
	return Node{tree: t, id: id}, true
}

// Len returns the number of bytes the root spans.
func (t *Tree) Len() ByteOffset {
	return t.nodes[0].end
}

// Language returns the language the tree was parsed as, if known.
func (t *Tree) Language() string {
	return t.language
}

// DescendantForRange returns the smallest node that contains [start, end).
//
// The descent follows tree-sitter: a child qualifies when it starts at or
// before start, ends at or after end, and ends strictly after start. The
// first qualifying child wins, so at a boundary shared by two siblings the
// one starting there is chosen.
func (t *Tree) DescendantForRange(start, end ByteOffset) Node {
	n, _ := t.descend(start, end)
	return n
}

// NamedDescendantForRange returns the smallest named node that contains
// [start, end). The root is returned when no named node qualifies.
func (t *Tree) NamedDescendantForRange(start, end ByteOffset) Node {
	_, n := t.descend(start, end)
	return n
}

func (t *Tree) descend(start, end ByteOffset) (deepest, named Node) {
	id := NodeID(0)
	namedID := NodeID(0)

	for {
		next := NoNode
		for _, c := range t.nodes[id].children {
			child := &t.nodes[c]
			if child.end < end || child.end <= start {
				continue
			}
			if start < child.start {
				break
			}
			next = c
			break
		}
		if next == NoNode {
			break
		}
		id = next
		if t.nodes[id].named {
			namedID = id
		}
	}

	return Node{tree: t, id: id}, Node{tree: t, id: namedID}
}

// String returns an S-expression of the named nodes, the format tree-sitter
// prints trees in.
func (t *Tree) String() string {
	var sb strings.Builder
	t.writeSexp(&sb, 0)
	return sb.String()
}

func (t *Tree) writeSexp(sb *strings.Builder, id NodeID) {
	sb.WriteByte('(')
	sb.WriteString(t.nodes[id].kind)
	for _, c := range t.visibleChildren(id, nil) {
		sb.WriteByte(' ')
		t.writeSexp(sb, c)
	}
	sb.WriteByte(')')
}

// visibleChildren appends the named nodes directly below id, looking
// through anonymous nodes.
func (t *Tree) visibleChildren(id NodeID, out []NodeID) []NodeID {
	for _, c := range t.nodes[id].children {
		if t.nodes[c].named {
			out = append(out, c)
		} else {
			out = t.visibleChildren(c, out)
		}
	}
	return out
}

// Node is a handle to a node in a Tree.
// Node is a comparable value; two handles are the same node iff they are ==.
// The zero Node is invalid.
type Node struct {
	tree *Tree
	id   NodeID
}

func (n Node) data() *nodeData {
	return &n.tree.nodes[n.id]
}

// IsValid returns true if the handle refers to a node.
func (n Node) IsValid() bool {
	return n.tree != nil && int(n.id) < len(n.tree.nodes)
}

// ID returns the arena index of the node.
func (n Node) ID() NodeID {
	return n.id
}

// Tree returns the tree the node belongs to.
func (n Node) Tree() *Tree {
	return n.tree
}

// Kind returns the grammar kind of the node.
func (n Node) Kind() string {
	return n.data().kind
}

// Start returns the byte offset the node starts at.
func (n Node) Start() ByteOffset {
	return n.data().start
}

// End returns the byte offset just past the node.
func (n Node) End() ByteOffset {
	return n.data().end
}

// Span returns the node's byte extent.
func (n Node) Span() buffer.Range {
	d := n.data()
	return buffer.Range{Start: d.start, End: d.end}
}

// IsNamed returns true for named grammar nodes; anonymous tokens return false.
func (n Node) IsNamed() bool {
	return n.data().named
}

// IsRoot returns true for the root node.
func (n Node) IsRoot() bool {
	return n.id == 0
}

// Parent returns the parent node. The root has no parent.
func (n Node) Parent() (Node, bool) {
	p := n.data().parent
	if p == NoNode {
		return Node{}, false
	}
	return Node{tree: n.tree, id: p}, true
}

// ChildCount returns the number of children, named or not.
func (n Node) ChildCount() int {
	return len(n.data().children)
}

// Children returns all children in source order.
func (n Node) Children() []Node {
	ids := n.data().children
	result := make([]Node, len(ids))
	for i, id := range ids {
		result[i] = Node{tree: n.tree, id: id}
	}
	return result
}

// NamedChildren returns the named children in source order.
func (n Node) NamedChildren() []Node {
	var result []Node
	for _, id := range n.data().children {
		if n.tree.nodes[id].named {
			result = append(result, Node{tree: n.tree, id: id})
		}
	}
	return result
}

// NamedChildCount returns the number of named children.
func (n Node) NamedChildCount() int {
	count := 0
	for _, id := range n.data().children {
		if n.tree.nodes[id].named {
			count++
		}
	}
	return count
}

// String returns the kind and span of the node.
func (n Node) String() string {
	if !n.IsValid() {
		return "<invalid>"
	}
	return n.Kind() + n.Span().String()
}
