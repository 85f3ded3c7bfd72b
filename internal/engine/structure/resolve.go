package structure

import (
	"fmt"

	"github.com/dshills/treenav/internal/engine/buffer"
	"github.com/dshills/treenav/internal/engine/cursor"
	"github.com/dshills/treenav/internal/engine/syntax"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// Text is the read access the commands need from a text snapshot.
// *buffer.Text implements it.
type Text interface {
	Len() ByteOffset
	TextRange(start, end ByteOffset) string
	OffsetToPoint(offset ByteOffset) buffer.Point
	LineStartOffset(line uint32) ByteOffset
	NextGraphemeOffset(offset ByteOffset) ByteOffset
	PrevGraphemeOffset(offset ByteOffset) ByteOffset
}

// InvariantError reports a broken internal invariant. It indicates a bug or
// a tree that does not belong to the text, never a user error.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("structure: %s: invariant violated: %s", e.Op, e.Msg)
}

func invariant(ok bool, op, format string, args ...any) {
	if !ok {
		panic(&InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)})
	}
}

// Resolution is the node a range maps to.
type Resolution struct {
	// Node is the smallest named node containing the range's extent.
	Node syntax.Node
	// Exact is true when the extent equals Node's span.
	Exact bool
	// Covered is the run of Node's named children whose union is exactly
	// the extent. It is nil when the extent is exact or cuts into a child.
	Covered []syntax.Node
}

// matchExtent returns the span used for node matching. A zero-width range
// covers the grapheme after it; at the end of the text it stays empty.
func matchExtent(text Text, r cursor.Range) buffer.Range {
	ext := r.Extent()
	if ext.IsEmpty() {
		ext.End = text.NextGraphemeOffset(ext.Start)
	}
	return ext
}

// Resolve maps a range onto the syntax tree.
func Resolve(tree *syntax.Tree, text Text, r cursor.Range) Resolution {
	ext := matchExtent(text, r)

	root := tree.Root()
	if ext.Start < 0 || ext.End > tree.Len() {
		return Resolution{Node: root, Exact: ext == root.Span()}
	}

	node := tree.NamedDescendantForRange(ext.Start, ext.End)
	invariant(node.IsRoot() || node.Span().ContainsRange(ext),
		"resolve", "%s does not contain %v", node, ext)

	res := Resolution{Node: node, Exact: node.Span() == ext}
	if !res.Exact {
		res.Covered = coveredRun(node, ext)
	}
	return res
}

// coveredRun returns the consecutive named children of n that start at
// ext.Start and end at ext.End, or nil.
func coveredRun(n syntax.Node, ext buffer.Range) []syntax.Node {
	children := n.NamedChildren()
	for i, c := range children {
		if c.Start() < ext.Start {
			continue
		}
		if c.Start() > ext.Start {
			return nil
		}
		for j := i; j < len(children); j++ {
			if children[j].End() == ext.End {
				return children[i : j+1]
			}
			if children[j].End() > ext.End {
				return nil
			}
		}
		return nil
	}
	return nil
}
