package structure

import (
	"github.com/dshills/treenav/internal/engine/buffer"
	"github.com/dshills/treenav/internal/engine/cursor"
	"github.com/dshills/treenav/internal/engine/syntax"
)

// Boundary selects which end of a node navigation targets.
type Boundary uint8

const (
	BoundaryStart Boundary = iota
	BoundaryEnd
)

// String returns the boundary name.
func (b Boundary) String() string {
	if b == BoundaryEnd {
		return "end"
	}
	return "start"
}

// Movement selects whether navigation collapses or extends a range.
type Movement uint8

const (
	// Move collapses the range to a cursor at the destination.
	Move Movement = iota
	// Extend keeps the anchor and moves the head to the destination.
	Extend
)

// String returns the movement name.
func (m Movement) String() string {
	if m == Extend {
		return "extend"
	}
	return "move"
}

// MoveParentNodeStart moves every cursor to the start of its enclosing node.
func MoveParentNodeStart(tree *syntax.Tree, text Text, sel cursor.Selection) cursor.Selection {
	return ParentNodeBoundary(tree, text, sel, BoundaryStart, Move)
}

// ExtendParentNodeStart extends every range to the start of its enclosing node.
func ExtendParentNodeStart(tree *syntax.Tree, text Text, sel cursor.Selection) cursor.Selection {
	return ParentNodeBoundary(tree, text, sel, BoundaryStart, Extend)
}

// MoveParentNodeEnd moves every cursor to the end of its enclosing node.
func MoveParentNodeEnd(tree *syntax.Tree, text Text, sel cursor.Selection) cursor.Selection {
	return ParentNodeBoundary(tree, text, sel, BoundaryEnd, Move)
}

// ExtendParentNodeEnd extends every range to the end of its enclosing node.
func ExtendParentNodeEnd(tree *syntax.Tree, text Text, sel cursor.Selection) cursor.Selection {
	return ParentNodeBoundary(tree, text, sel, BoundaryEnd, Extend)
}

// ParentNodeBoundary moves or extends every range to the chosen boundary of
// the node enclosing its cursor, then normalizes. Cursors that land on the
// same position merge.
func ParentNodeBoundary(tree *syntax.Tree, text Text, sel cursor.Selection, boundary Boundary, movement Movement) cursor.Selection {
	ranges := sel.Ranges()
	cands := make([]Candidate, len(ranges))
	for i, r := range ranges {
		cands[i] = Candidate{
			Range:   parentBoundaryRange(tree, text, r, boundary, movement),
			Primary: i == sel.PrimaryIndex(),
		}
	}
	return Normalize(cands)
}

func parentBoundaryRange(tree *syntax.Tree, text Text, r cursor.Range, boundary Boundary, movement Movement) cursor.Range {
	dest := ParentBoundaryOffset(tree, text, r, boundary)
	if movement == Extend {
		return r.Extend(dest)
	}
	return r.MoveTo(dest)
}

// ParentBoundaryOffset returns where navigation from r lands: the boundary
// of the smallest named node holding the cursor grapheme, skipping nodes
// whose boundary the head is already on. At the root it returns the root's
// boundary, which may equal the head.
func ParentBoundaryOffset(tree *syntax.Tree, text Text, r cursor.Range, boundary Boundary) ByteOffset {
	ch := cursorGrapheme(text, r)
	n := tree.NamedDescendantForRange(ch.Start, ch.End)

	for boundaryOf(n, boundary) == r.Head {
		p, ok := n.Parent()
		if !ok {
			break
		}
		n = p
	}
	return boundaryOf(n, boundary)
}

func boundaryOf(n syntax.Node, b Boundary) ByteOffset {
	if b == BoundaryEnd {
		return n.End()
	}
	return n.Start()
}

// cursorGrapheme returns the grapheme drawn under a block cursor: the one
// ending at the head of a non-empty forward range, otherwise the one
// starting at the head. At the end of the text it is empty.
func cursorGrapheme(text Text, r cursor.Range) buffer.Range {
	if !r.IsEmpty() && r.Direction() == cursor.Forward {
		return buffer.Range{Start: text.PrevGraphemeOffset(r.Head), End: r.Head}
	}
	return buffer.Range{Start: r.Head, End: text.NextGraphemeOffset(r.Head)}
}
