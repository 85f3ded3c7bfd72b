package structure

import (
	"sort"

	"github.com/dshills/treenav/internal/engine/cursor"
)

// Candidate is a range produced for one input range, before merging.
type Candidate struct {
	Range   cursor.Range
	Primary bool
}

// Normalize merges candidates into a selection sorted by extent start in
// which no extent contains another.
//
// Extents are treated as closed intervals: a range is dropped when a kept
// range starts at or before it and ends at or after it, so a cursor at the
// edge of a selected range is absorbed by it. Of identical extents the first
// candidate is kept. Ranges that only partially overlap are both kept.
//
// The primary candidate stays primary. If it was dropped, the kept range
// that contains it becomes primary. An empty candidate list yields a cursor
// at offset 0.
func Normalize(cands []Candidate) cursor.Selection {
	if len(cands) == 0 {
		return cursor.Single(cursor.Point(0))
	}

	order := make([]int, len(cands))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ea, eb := cands[order[a]].Range.Extent(), cands[order[b]].Range.Extent()
		if ea.Start != eb.Start {
			return ea.Start < eb.Start
		}
		return ea.End > eb.End
	})

	kept := make([]cursor.Range, 0, len(cands))
	primary := -1
	for _, idx := range order {
		c := cands[idx]
		ext := c.Range.Extent()

		// Kept ends strictly increase, so the last kept range holds the
		// furthest end and starts no later than ext.
		if n := len(kept); n > 0 && ext.End <= kept[n-1].To() {
			if c.Primary && primary < 0 {
				primary = n - 1
			}
			continue
		}

		kept = append(kept, c.Range)
		if c.Primary && primary < 0 {
			primary = len(kept) - 1
		}
	}

	if primary < 0 {
		primary = 0
	}
	invariant(len(kept) > 0, "normalize", "no range survived")
	return cursor.NewSelection(kept, primary)
}

// NormalizeSelection normalizes the ranges of an existing selection,
// keeping track of its primary range.
func NormalizeSelection(sel cursor.Selection) cursor.Selection {
	ranges := sel.Ranges()
	cands := make([]Candidate, len(ranges))
	for i, r := range ranges {
		cands[i] = Candidate{Range: r, Primary: i == sel.PrimaryIndex()}
	}
	return Normalize(cands)
}

// IsNormalized reports whether sel is sorted by extent start with no extent
// containing another.
func IsNormalized(sel cursor.Selection) bool {
	ranges := sel.Ranges()
	for i := 1; i < len(ranges); i++ {
		prev, cur := ranges[i-1].Extent(), ranges[i].Extent()
		if cur.Start < prev.Start || cur.End <= prev.End {
			return false
		}
	}
	return true
}
