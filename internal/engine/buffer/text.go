package buffer

import (
	"errors"
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

// Errors returned by text operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrEditsOverlap     = errors.New("edits overlap or are not in reverse order")
)

// Text is an immutable snapshot of document content.
// It indexes line starts on construction so line lookups are O(log n).
// Text is safe for concurrent use; edits produce a new Text.
type Text struct {
	s          string
	lineStarts []ByteOffset
	revisionID RevisionID
}

// NewText creates a text snapshot from a string.
func NewText(s string) *Text {
	return &Text{
		s:          s,
		lineStarts: computeLineStarts(s),
		revisionID: NewRevisionID(),
	}
}

// computeLineStarts returns the byte offset of every line start.
// The first line always starts at 0; a trailing newline opens an empty line.
func computeLineStarts(s string) []ByteOffset {
	starts := make([]ByteOffset, 1, strings.Count(s, "\n")+1)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	return starts
}

// String returns the full content.
func (t *Text) String() string {
	return t.s
}

// Len returns the total byte length.
func (t *Text) Len() ByteOffset {
	return ByteOffset(len(t.s))
}

// IsEmpty returns true if the text has no content.
func (t *Text) IsEmpty() bool {
	return len(t.s) == 0
}

// RevisionID returns the revision of this snapshot.
func (t *Text) RevisionID() RevisionID {
	return t.revisionID
}

// clamp limits an offset to [0, Len()].
func (t *Text) clamp(offset ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset > t.Len() {
		return t.Len()
	}
	return offset
}

// TextRange returns text in the given byte range.
// Bounds are clamped to the text.
func (t *Text) TextRange(start, end ByteOffset) string {
	start, end = t.clamp(start), t.clamp(end)
	if start >= end {
		return ""
	}
	return t.s[start:end]
}

// LineCount returns the number of lines.
func (t *Text) LineCount() uint32 {
	return uint32(len(t.lineStarts))
}

// LineStartOffset returns the byte offset of the start of a line.
// Lines past the end map to the start of the last line.
func (t *Text) LineStartOffset(line uint32) ByteOffset {
	if int(line) >= len(t.lineStarts) {
		return t.lineStarts[len(t.lineStarts)-1]
	}
	return t.lineStarts[line]
}

// LineEndOffset returns the byte offset of the end of a line (before newline).
func (t *Text) LineEndOffset(line uint32) ByteOffset {
	if int(line)+1 >= len(t.lineStarts) {
		return t.Len()
	}
	end := t.lineStarts[line+1] - 1
	if end > t.LineStartOffset(line) && t.s[end-1] == '\r' {
		end--
	}
	return end
}

// LineText returns the text of a specific line (without line ending).
func (t *Text) LineText(line uint32) string {
	return t.s[t.LineStartOffset(line):t.LineEndOffset(line)]
}

// OffsetToPoint converts a byte offset to line/column.
func (t *Text) OffsetToPoint(offset ByteOffset) Point {
	offset = t.clamp(offset)
	// Index of the last line start <= offset.
	line := sort.Search(len(t.lineStarts), func(i int) bool {
		return t.lineStarts[i] > offset
	}) - 1
	return Point{
		Line:   uint32(line),
		Column: uint32(offset - t.lineStarts[line]),
	}
}

// PointToOffset converts line/column to byte offset.
// Columns past the end of the line clamp to the line end.
func (t *Text) PointToOffset(point Point) ByteOffset {
	start := t.LineStartOffset(point.Line)
	end := t.LineEndOffset(point.Line)
	offset := start + ByteOffset(point.Column)
	if offset > end {
		return end
	}
	return offset
}

// NextGraphemeOffset returns the offset just past the grapheme cluster
// starting at offset. At the end of the text it returns Len().
func (t *Text) NextGraphemeOffset(offset ByteOffset) ByteOffset {
	offset = t.clamp(offset)
	if offset >= t.Len() {
		return t.Len()
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(t.s[offset:], -1)
	return offset + ByteOffset(len(cluster))
}

// PrevGraphemeOffset returns the start of the grapheme cluster that ends at
// offset. At the start of the text it returns 0.
func (t *Text) PrevGraphemeOffset(offset ByteOffset) ByteOffset {
	offset = t.clamp(offset)
	if offset == 0 {
		return 0
	}

	// Clusters never span a line start, so scanning from the start of the
	// line holding the byte before offset is enough.
	pos := t.LineStartOffset(t.OffsetToPoint(offset - 1).Line)
	state := -1
	rest := t.s[pos:offset]
	prev := pos
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		prev = pos
		pos += ByteOffset(len(cluster))
	}
	return prev
}

// Apply returns a new Text with the edits applied.
// Edits must be sorted by descending start offset and must not overlap,
// which is the order multi-cursor edits are applied in.
func (t *Text) Apply(edits ...Edit) (*Text, error) {
	if len(edits) == 0 {
		return t, nil
	}

	s := t.s
	limit := t.Len()
	for _, e := range edits {
		if !e.Range.IsValid() {
			return nil, ErrRangeInvalid
		}
		if e.Range.Start < 0 || e.Range.End > t.Len() {
			return nil, ErrOffsetOutOfRange
		}
		if e.Range.End > limit {
			return nil, ErrEditsOverlap
		}
		s = s[:e.Range.Start] + e.NewText + s[e.Range.End:]
		limit = e.Range.Start
	}

	return NewText(s), nil
}

// Insert returns a new Text with s inserted at offset.
func (t *Text) Insert(offset ByteOffset, s string) (*Text, EditResult, error) {
	if offset < 0 || offset > t.Len() {
		return nil, EditResult{}, ErrOffsetOutOfRange
	}
	next, err := t.Apply(NewInsert(offset, s))
	if err != nil {
		return nil, EditResult{}, err
	}
	return next, EditResult{
		OldRange: Range{Start: offset, End: offset},
		NewRange: Range{Start: offset, End: offset + ByteOffset(len(s))},
		Delta:    int64(len(s)),
	}, nil
}
