package syntax

import (
	"errors"
	"fmt"
)

// Errors returned by Builder.Build.
var (
	ErrEmptyTree         = errors.New("tree has no root")
	ErrBadParent         = errors.New("parent does not exist")
	ErrSpanInvalid       = errors.New("node span is invalid")
	ErrSpanOutsideParent = errors.New("node span is not inside its parent")
	ErrChildrenUnordered = errors.New("children overlap or are out of order")
)

// Builder assembles a Tree. Nodes are added parent first; the first node
// added is the root and every later node names an existing parent.
// Children are kept in the order they are added.
type Builder struct {
	nodes    []nodeData
	language string
	err      error
}

// NewBuilder creates a builder for a tree of the given language.
func NewBuilder(language string) *Builder {
	return &Builder{language: language}
}

// Root adds the root node and returns its id.
func (b *Builder) Root(kind string, start, end ByteOffset, named bool) NodeID {
	if len(b.nodes) > 0 {
		b.fail(fmt.Errorf("root %q: %w", kind, ErrBadParent))
		return 0
	}
	b.nodes = append(b.nodes, nodeData{
		kind:   kind,
		start:  start,
		end:    end,
		named:  named,
		parent: NoNode,
	})
	return 0
}

// Add adds a child of parent and returns its id.
func (b *Builder) Add(parent NodeID, kind string, start, end ByteOffset, named bool) NodeID {
	if int(parent) >= len(b.nodes) {
		b.fail(fmt.Errorf("node %q: %w", kind, ErrBadParent))
		return NoNode
	}
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, nodeData{
		kind:   kind,
		start:  start,
		end:    end,
		named:  named,
		parent: parent,
	})
	b.nodes[parent].children = append(b.nodes[parent].children, id)
	return id
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build validates the nodes and returns the tree.
// The builder must not be used afterwards.
func (b *Builder) Build() (*Tree, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.nodes) == 0 {
		return nil, ErrEmptyTree
	}

	for id := range b.nodes {
		if err := b.validate(NodeID(id)); err != nil {
			return nil, err
		}
	}

	t := &Tree{nodes: b.nodes, language: b.language}
	b.nodes = nil
	return t, nil
}

func (b *Builder) validate(id NodeID) error {
	d := &b.nodes[id]
	if d.start < 0 || d.start > d.end {
		return fmt.Errorf("%s [%d:%d): %w", d.kind, d.start, d.end, ErrSpanInvalid)
	}
	if d.parent != NoNode {
		p := &b.nodes[d.parent]
		if d.start < p.start || d.end > p.end {
			return fmt.Errorf("%s [%d:%d) in %s [%d:%d): %w",
				d.kind, d.start, d.end, p.kind, p.start, p.end, ErrSpanOutsideParent)
		}
	}
	for i := 1; i < len(d.children); i++ {
		prev, next := &b.nodes[d.children[i-1]], &b.nodes[d.children[i]]
		if next.start < prev.end {
			return fmt.Errorf("%s and %s in %s: %w", prev.kind, next.kind, d.kind, ErrChildrenUnordered)
		}
	}
	return nil
}
