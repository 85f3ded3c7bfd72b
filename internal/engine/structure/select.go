package structure

import (
	"github.com/dshills/treenav/internal/engine/cursor"
	"github.com/dshills/treenav/internal/engine/syntax"
)

// SelectAllSiblings replaces every range with one range per named child of
// the parent of its resolved node. A range whose node is the root, or whose
// parent has a single named child, is left unchanged.
func SelectAllSiblings(tree *syntax.Tree, text Text, sel cursor.Selection) cursor.Selection {
	return expand(tree, text, sel, func(res Resolution) []syntax.Node {
		parent, ok := res.Node.Parent()
		if !ok {
			return nil
		}
		return parent.NamedChildren()
	})
}

// SelectAllChildren replaces every range with one range per named child of
// its resolved node. A range whose node has fewer than two named children
// is left unchanged.
func SelectAllChildren(tree *syntax.Tree, text Text, sel cursor.Selection) cursor.Selection {
	return expand(tree, text, sel, func(res Resolution) []syntax.Node {
		return res.Node.NamedChildren()
	})
}

// expand maps every range to the nodes chosen by targets and normalizes the
// result. Fewer than two targets leave the range unchanged.
func expand(tree *syntax.Tree, text Text, sel cursor.Selection, targets func(Resolution) []syntax.Node) cursor.Selection {
	var cands []Candidate
	for i, r := range sel.Ranges() {
		primary := i == sel.PrimaryIndex()
		res := Resolve(tree, text, r)

		nodes := targets(res)
		if len(nodes) < 2 {
			cands = append(cands, Candidate{Range: r, Primary: primary})
			continue
		}
		cands = append(cands, replacements(r, res.Node, nodes, primary)...)
	}
	return Normalize(cands)
}

// replacements builds one range per node in r's direction. When r is
// primary, the flag goes to the replacement matching r's extent, else the
// one matching d's span, else the first.
func replacements(r cursor.Range, d syntax.Node, nodes []syntax.Node, primary bool) []Candidate {
	dir := r.Direction()
	out := make([]Candidate, len(nodes))
	for i, n := range nodes {
		out[i] = Candidate{Range: cursor.FromExtent(n.Span(), dir)}
	}
	if !primary {
		return out
	}

	idx := 0
	if i := indexOfExtent(out, r.Extent()); i >= 0 {
		idx = i
	} else if i := indexOfExtent(out, d.Span()); i >= 0 {
		idx = i
	}
	out[idx].Primary = true
	return out
}

func indexOfExtent(cands []Candidate, ext cursor.Extent) int {
	for i, c := range cands {
		if c.Range.Extent() == ext {
			return i
		}
	}
	return -1
}
