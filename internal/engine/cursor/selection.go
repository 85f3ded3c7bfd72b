package cursor

import "strings"

// Selection is an ordered, non-empty list of ranges with one primary range.
// Selection is immutable: every operation returns a new value.
//
// Selection does not sort or merge its ranges; callers that need the
// sorted, non-nested form run the ranges through a normalizer.
type Selection struct {
	ranges  []Range
	primary int
}

// NewSelection creates a selection from ranges with the given primary index.
// An empty slice yields a single cursor at 0. The primary index is clamped
// into the valid range.
func NewSelection(ranges []Range, primary int) Selection {
	if len(ranges) == 0 {
		return Selection{ranges: []Range{Point(0)}}
	}
	cp := make([]Range, len(ranges))
	copy(cp, ranges)
	return Selection{ranges: cp, primary: clampIndex(primary, len(cp))}
}

// Single creates a selection holding exactly one range.
func Single(r Range) Selection {
	return Selection{ranges: []Range{r}}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// rangesOrDefault returns the ranges, treating the zero Selection as a
// cursor at 0.
func (s Selection) rangesOrDefault() []Range {
	if len(s.ranges) == 0 {
		return []Range{Point(0)}
	}
	return s.ranges
}

// Ranges returns a copy of all ranges in order.
func (s Selection) Ranges() []Range {
	rs := s.rangesOrDefault()
	result := make([]Range, len(rs))
	copy(result, rs)
	return result
}

// Len returns the number of ranges.
func (s Selection) Len() int {
	return len(s.rangesOrDefault())
}

// Range returns the range at index i.
// Out-of-range indices return the zero Range.
func (s Selection) Range(i int) Range {
	rs := s.rangesOrDefault()
	if i < 0 || i >= len(rs) {
		return Range{}
	}
	return rs[i]
}

// Primary returns the primary range.
func (s Selection) Primary() Range {
	return s.rangesOrDefault()[s.primary]
}

// PrimaryIndex returns the index of the primary range.
func (s Selection) PrimaryIndex() int {
	return s.primary
}

// WithPrimary returns a copy with the primary index set to i (clamped).
func (s Selection) WithPrimary(i int) Selection {
	return NewSelection(s.rangesOrDefault(), i)
}

// Map applies f to every range and returns the resulting selection.
// The primary index is unchanged.
func (s Selection) Map(f func(i int, r Range) Range) Selection {
	rs := s.rangesOrDefault()
	result := make([]Range, len(rs))
	for i, r := range rs {
		result[i] = f(i, r)
	}
	return Selection{ranges: result, primary: s.primary}
}

// Extents returns the undirected span of every range.
func (s Selection) Extents() []Extent {
	rs := s.rangesOrDefault()
	result := make([]Extent, len(rs))
	for i, r := range rs {
		result[i] = r.Extent()
	}
	return result
}

// Equals returns true if both selections hold the same ranges in the same
// order with the same primary index.
func (s Selection) Equals(other Selection) bool {
	a, b := s.rangesOrDefault(), other.rangesOrDefault()
	if len(a) != len(b) || s.primary != other.primary {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

// String returns a string representation of the selection.
// The primary range is marked with '*'.
func (s Selection) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, r := range s.rangesOrDefault() {
		if i > 0 {
			sb.WriteString(", ")
		}
		if i == s.primary {
			sb.WriteByte('*')
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
