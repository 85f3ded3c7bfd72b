// Package syntaxtest builds syntax trees from S-expression fixtures.
//
// A fixture names every node and spells out the source tokens as string
// literals, which are matched against the text in order (whitespace in the
// text is skipped):
//
//	text := `bar(a, b)`
//	tree := syntaxtest.MustParse(t, text,
//		`(source_file (call_expression (identifier "bar")
//			(arguments "(" (identifier "a") "," (identifier "b") ")")))`)
//
// A string literal becomes an anonymous token node. A node whose only item
// is one string literal is a named leaf spanning that token. Other nodes
// span from their first to their last child; the outermost node is the root
// and spans the whole text.
package syntaxtest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"unicode"

	"github.com/dshills/treenav/internal/engine/syntax"
)

// Errors returned by Parse.
var (
	ErrSyntax       = errors.New("malformed s-expression")
	ErrTextMismatch = errors.New("token does not match text")
	ErrTrailingText = errors.New("text not covered by tokens")
)

type fixtureNode struct {
	kind     string
	named    bool
	start    syntax.ByteOffset
	end      syntax.ByteOffset
	children []*fixtureNode
}

type parser struct {
	sexp string
	i    int
	text string
	pos  int
}

// Parse builds a tree for text from the S-expression sexp.
func Parse(text, sexp string) (*syntax.Tree, error) {
	p := &parser{sexp: sexp, text: text}

	p.skipSexpSpace()
	root, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	p.skipSexpSpace()
	if p.i != len(p.sexp) {
		return nil, fmt.Errorf("offset %d: unexpected %q: %w", p.i, p.sexp[p.i:], ErrSyntax)
	}
	p.skipTextSpace()
	if p.pos != len(p.text) {
		return nil, fmt.Errorf("offset %d: %q: %w", p.pos, p.text[p.pos:], ErrTrailingText)
	}

	root.start, root.end = 0, syntax.ByteOffset(len(text))

	b := syntax.NewBuilder("")
	id := b.Root(root.kind, root.start, root.end, root.named)
	addChildren(b, id, root)
	return b.Build()
}

// MustParse is like Parse but fails the test on error.
func MustParse(tb testing.TB, text, sexp string) *syntax.Tree {
	tb.Helper()
	tree, err := Parse(text, sexp)
	if err != nil {
		tb.Fatalf("syntaxtest: %v", err)
	}
	return tree
}

func addChildren(b *syntax.Builder, parent syntax.NodeID, n *fixtureNode) {
	for _, c := range n.children {
		id := b.Add(parent, c.kind, c.start, c.end, c.named)
		addChildren(b, id, c)
	}
}

func (p *parser) parseNode() (*fixtureNode, error) {
	if p.i >= len(p.sexp) || p.sexp[p.i] != '(' {
		return nil, fmt.Errorf("offset %d: expected '(': %w", p.i, ErrSyntax)
	}
	p.i++

	kind := p.readKind()
	if kind == "" {
		return nil, fmt.Errorf("offset %d: missing node kind: %w", p.i, ErrSyntax)
	}
	node := &fixtureNode{kind: kind, named: true}

	var tokens int
	for {
		p.skipSexpSpace()
		if p.i >= len(p.sexp) {
			return nil, fmt.Errorf("node %s: unclosed: %w", kind, ErrSyntax)
		}

		switch p.sexp[p.i] {
		case ')':
			p.i++
			return p.finish(node, tokens), nil
		case '(':
			child, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			node.children = append(node.children, child)
		case '"':
			tok, err := p.parseToken()
			if err != nil {
				return nil, err
			}
			tokens++
			node.children = append(node.children, tok)
		default:
			return nil, fmt.Errorf("offset %d: unexpected %q: %w", p.i, p.sexp[p.i], ErrSyntax)
		}
	}
}

func (p *parser) finish(node *fixtureNode, tokens int) *fixtureNode {
	switch {
	case len(node.children) == 1 && tokens == 1:
		// Named leaf: the token is the node itself.
		node.start, node.end = node.children[0].start, node.children[0].end
		node.children = nil
	case len(node.children) == 0:
		node.start = syntax.ByteOffset(p.pos)
		node.end = node.start
	default:
		node.start = node.children[0].start
		node.end = node.children[len(node.children)-1].end
	}
	return node
}

func (p *parser) readKind() string {
	start := p.i
	for p.i < len(p.sexp) {
		c := p.sexp[p.i]
		if c == '(' || c == ')' || c == '"' || unicode.IsSpace(rune(c)) {
			break
		}
		p.i++
	}
	return p.sexp[start:p.i]
}

func (p *parser) parseToken() (*fixtureNode, error) {
	start := p.i
	p.i++
	for p.i < len(p.sexp) && p.sexp[p.i] != '"' {
		if p.sexp[p.i] == '\\' {
			p.i++
		}
		p.i++
	}
	if p.i >= len(p.sexp) {
		return nil, fmt.Errorf("offset %d: unterminated string: %w", start, ErrSyntax)
	}
	p.i++

	lit, err := strconv.Unquote(p.sexp[start:p.i])
	if err != nil {
		return nil, fmt.Errorf("offset %d: %v: %w", start, err, ErrSyntax)
	}

	p.skipTextSpace()
	if !strings.HasPrefix(p.text[p.pos:], lit) {
		return nil, fmt.Errorf("text offset %d: want %q, have %q: %w",
			p.pos, lit, excerpt(p.text[p.pos:]), ErrTextMismatch)
	}
	tok := &fixtureNode{
		kind:  lit,
		start: syntax.ByteOffset(p.pos),
		end:   syntax.ByteOffset(p.pos + len(lit)),
	}
	p.pos += len(lit)
	return tok, nil
}

func (p *parser) skipSexpSpace() {
	for p.i < len(p.sexp) && unicode.IsSpace(rune(p.sexp[p.i])) {
		p.i++
	}
}

func (p *parser) skipTextSpace() {
	for p.pos < len(p.text) && unicode.IsSpace(rune(p.text[p.pos])) {
		p.pos++
	}
}

func excerpt(s string) string {
	if len(s) > 16 {
		return s[:16] + "..."
	}
	return s
}
