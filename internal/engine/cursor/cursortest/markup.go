// Package cursortest reads and writes selections embedded in text.
//
// The markup wraps each range in #[ ]# (primary) or #( )# (secondary) and
// marks the head with '|':
//
//	let foo = bar(#[a|]#, #(b|)#, c);   forward ranges over "a" and "b"
//	#(|"no")#                            backward range over "no" with quotes
//	x#[|]#y                              cursor between x and y
package cursortest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/treenav/internal/engine/cursor"
)

// Errors returned by Parse.
var (
	ErrUnclosedRange = errors.New("unclosed range")
	ErrMissingHead   = errors.New("range has no head marker")
	ErrHeadPosition  = errors.New("head marker must be at the start or end of a range")
	ErrNoPrimary     = errors.New("no primary range")
	ErrManyPrimaries = errors.New("more than one primary range")
)

type openRange struct {
	start   int
	head    int
	primary bool
}

// Parse strips the markup from s and returns the plain text and the
// selection it describes.
func Parse(s string) (string, cursor.Selection, error) {
	var (
		sb      strings.Builder
		ranges  []cursor.Range
		primary = -1
		cur     *openRange
	)

	for i := 0; i < len(s); {
		if cur == nil {
			if strings.HasPrefix(s[i:], "#[") || strings.HasPrefix(s[i:], "#(") {
				cur = &openRange{start: sb.Len(), head: -1, primary: s[i+1] == '['}
				i += 2
				continue
			}
			sb.WriteByte(s[i])
			i++
			continue
		}

		closer := ")#"
		if cur.primary {
			closer = "]#"
		}
		switch {
		case s[i] == '|' && cur.head < 0:
			cur.head = sb.Len()
			i++
		case strings.HasPrefix(s[i:], closer):
			r, err := closeRange(cur, sb.Len())
			if err != nil {
				return "", cursor.Selection{}, fmt.Errorf("range %d: %w", len(ranges), err)
			}
			if cur.primary {
				if primary >= 0 {
					return "", cursor.Selection{}, ErrManyPrimaries
				}
				primary = len(ranges)
			}
			ranges = append(ranges, r)
			cur = nil
			i += 2
		default:
			sb.WriteByte(s[i])
			i++
		}
	}

	if cur != nil {
		return "", cursor.Selection{}, ErrUnclosedRange
	}
	if primary < 0 {
		return "", cursor.Selection{}, ErrNoPrimary
	}
	return sb.String(), cursor.NewSelection(ranges, primary), nil
}

func closeRange(r *openRange, end int) (cursor.Range, error) {
	start := cursor.ByteOffset(r.start)
	stop := cursor.ByteOffset(end)
	switch r.head {
	case -1:
		return cursor.Range{}, ErrMissingHead
	case end:
		return cursor.NewRange(start, stop), nil
	case r.start:
		return cursor.NewRange(stop, start), nil
	default:
		return cursor.Range{}, ErrHeadPosition
	}
}

// MustParse is like Parse but panics on malformed markup.
func MustParse(s string) (string, cursor.Selection) {
	text, sel, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("cursortest: %q: %v", s, err))
	}
	return text, sel
}

// Format embeds sel into text using the markup Parse reads.
// Ranges must be sorted and must not overlap; otherwise the selection's
// String form is appended to the text instead.
func Format(text string, sel cursor.Selection) string {
	var sb strings.Builder
	pos := cursor.ByteOffset(0)

	for i, r := range sel.Ranges() {
		from, to := r.From(), r.To()
		if from < pos || to > cursor.ByteOffset(len(text)) {
			return text + " " + sel.String()
		}
		sb.WriteString(text[pos:from])

		open, closer := "#(", ")#"
		if i == sel.PrimaryIndex() {
			open, closer = "#[", "]#"
		}
		sb.WriteString(open)
		if r.Direction() == cursor.Backward || r.IsEmpty() {
			sb.WriteByte('|')
			sb.WriteString(text[from:to])
		} else {
			sb.WriteString(text[from:to])
			sb.WriteByte('|')
		}
		sb.WriteString(closer)
		pos = to
	}

	sb.WriteString(text[pos:])
	return sb.String()
}
