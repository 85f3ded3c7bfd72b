package cursor

import (
	"fmt"

	"github.com/dshills/treenav/internal/engine/buffer"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// Extent is an alias for buffer.Range: an undirected [Start, End) span.
type Extent = buffer.Range

// Direction is the orientation of a range.
type Direction uint8

const (
	// Forward ranges have Anchor <= Head.
	Forward Direction = iota
	// Backward ranges have Head < Anchor.
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Range is one selected region.
// Anchor is where the range started; Head is the moving end.
// When Anchor == Head, the range is a cursor with no extent.
// Range is an immutable value type.
type Range struct {
	Anchor ByteOffset
	Head   ByteOffset
}

// NewRange creates a range from anchor to head.
func NewRange(anchor, head ByteOffset) Range {
	return Range{Anchor: anchor, Head: head}
}

// Point creates a zero-width range (cursor) at offset.
func Point(offset ByteOffset) Range {
	return Range{Anchor: offset, Head: offset}
}

// FromExtent creates a range covering ext with the given direction.
func FromExtent(ext Extent, dir Direction) Range {
	if dir == Backward {
		return Range{Anchor: ext.End, Head: ext.Start}
	}
	return Range{Anchor: ext.Start, Head: ext.End}
}

// IsEmpty returns true if the range has no extent.
func (r Range) IsEmpty() bool {
	return r.Anchor == r.Head
}

// Len returns the length of the range in bytes.
func (r Range) Len() ByteOffset {
	return r.To() - r.From()
}

// Direction returns Forward when Anchor <= Head, Backward otherwise.
func (r Range) Direction() Direction {
	if r.Head < r.Anchor {
		return Backward
	}
	return Forward
}

// From returns the lower bound of the range.
func (r Range) From() ByteOffset {
	if r.Anchor <= r.Head {
		return r.Anchor
	}
	return r.Head
}

// To returns the upper bound of the range.
func (r Range) To() ByteOffset {
	if r.Anchor >= r.Head {
		return r.Anchor
	}
	return r.Head
}

// Extent returns the undirected span of the range.
func (r Range) Extent() Extent {
	return Extent{Start: r.From(), End: r.To()}
}

// MoveTo returns a collapsed range at offset.
func (r Range) MoveTo(offset ByteOffset) Range {
	return Range{Anchor: offset, Head: offset}
}

// Extend returns a range with the anchor kept and the head at offset.
func (r Range) Extend(offset ByteOffset) Range {
	return Range{Anchor: r.Anchor, Head: offset}
}

// Clamp returns a range clamped to [0, maxOffset].
func (r Range) Clamp(maxOffset ByteOffset) Range {
	return Range{
		Anchor: clampOffset(r.Anchor, maxOffset),
		Head:   clampOffset(r.Head, maxOffset),
	}
}

func clampOffset(offset, maxOffset ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}

// String returns a string representation of the range.
func (r Range) String() string {
	if r.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", r.Head)
	}
	dir := "→"
	if r.Direction() == Backward {
		dir = "←"
	}
	return fmt.Sprintf("Range(%d%s%d)", r.Anchor, dir, r.Head)
}

// Equals returns true if two ranges have the same anchor and head.
func (r Range) Equals(other Range) bool {
	return r.Anchor == other.Anchor && r.Head == other.Head
}

// SameExtent returns true if two ranges cover the same span,
// regardless of direction.
func (r Range) SameExtent(other Range) bool {
	return r.From() == other.From() && r.To() == other.To()
}
