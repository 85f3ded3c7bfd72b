package structure

import (
	"strings"
	"unicode"

	"github.com/dshills/treenav/internal/engine/cursor"
	"github.com/dshills/treenav/internal/engine/syntax"
)

// SupertabPolicy decides how cursors choose between indenting and navigating.
type SupertabPolicy uint8

const (
	// PerCursor lets every cursor decide on its own.
	PerCursor SupertabPolicy = iota
	// Unanimous indents every cursor only when all of them are preceded by
	// whitespace; otherwise every cursor navigates.
	Unanimous
)

// String returns the policy name as used in configuration.
func (p SupertabPolicy) String() string {
	if p == Unanimous {
		return "unanimous"
	}
	return "per_cursor"
}

// SupertabOptions configures Supertab.
type SupertabOptions struct {
	// Boundary and Movement name the navigation used for cursors that are
	// not preceded by whitespace.
	Boundary Boundary
	Movement Movement
	Policy   SupertabPolicy
}

// DefaultSupertabOptions navigates with move_parent_node_end and lets each
// cursor decide.
func DefaultSupertabOptions() SupertabOptions {
	return SupertabOptions{
		Boundary: BoundaryEnd,
		Movement: Move,
		Policy:   PerCursor,
	}
}

// SupertabResult is the outcome of Supertab.
type SupertabResult struct {
	// Selection has one range per input range, in input order, with the
	// input's primary index. It is not normalized.
	Selection cursor.Selection
	// Indent lists, in ascending order, the indices of ranges that were
	// left unchanged for the indentation collaborator.
	Indent []int
}

// NeedsIndent reports whether any cursor should be indented.
func (r SupertabResult) NeedsIndent() bool {
	return len(r.Indent) > 0
}

// Supertab decides per cursor between indentation and structural
// navigation. A cursor whose line holds only whitespace before the cursor
// grapheme is reported in Indent and left in place; the others are
// navigated as configured by opts.
//
// Callers insert the indentation, map the selection through those edits and
// then normalize it with NormalizeSelection.
func Supertab(tree *syntax.Tree, text Text, sel cursor.Selection, opts SupertabOptions) SupertabResult {
	ranges := sel.Ranges()
	indent := make([]bool, len(ranges))
	all := true
	for i, r := range ranges {
		indent[i] = precededByWhitespace(text, r)
		all = all && indent[i]
	}
	if opts.Policy == Unanimous {
		for i := range indent {
			indent[i] = all
		}
	}

	var result SupertabResult
	result.Selection = sel.Map(func(i int, r cursor.Range) cursor.Range {
		if indent[i] {
			result.Indent = append(result.Indent, i)
			return r
		}
		return parentBoundaryRange(tree, text, r, opts.Boundary, opts.Movement)
	})
	return result
}

// precededByWhitespace reports whether the text between the start of the
// cursor grapheme's line and the grapheme is empty or whitespace.
func precededByWhitespace(text Text, r cursor.Range) bool {
	pos := cursorGrapheme(text, r).Start
	lineStart := text.LineStartOffset(text.OffsetToPoint(pos).Line)
	prefix := text.TextRange(lineStart, pos)
	return strings.IndexFunc(prefix, func(c rune) bool { return !unicode.IsSpace(c) }) < 0
}
