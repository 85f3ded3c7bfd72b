//go:build cgo

package treesitter

import (
	"context"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/dshills/treenav/internal/engine/syntax"
)

// Parser parses text with tree-sitter. One sitter.Parser is kept per
// language; parses are serialized because sitter parsers are not safe for
// concurrent use.
type Parser struct {
	mu      sync.Mutex
	parsers map[string]*sitter.Parser
}

// NewParser creates a parser.
func NewParser() *Parser {
	return &Parser{
		parsers: make(map[string]*sitter.Parser),
	}
}

func grammar(language string) *sitter.Language {
	switch language {
	case LangGo:
		return golang.GetLanguage()
	case LangPython:
		return python.GetLanguage()
	case LangTypeScript:
		return typescript.GetLanguage()
	case LangJavaScript:
		return javascript.GetLanguage()
	case LangJava:
		return java.GetLanguage()
	case LangRust:
		return rust.GetLanguage()
	default:
		return nil
	}
}

// getParser must be called with p.mu held.
func (p *Parser) getParser(language string) *sitter.Parser {
	if parser, ok := p.parsers[language]; ok {
		return parser
	}

	lang := grammar(language)
	if lang == nil {
		return nil
	}

	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	p.parsers[language] = parser
	return parser
}

// Parse parses src as language and returns the tree snapshot.
// The root is widened to span all of src.
func (p *Parser) Parse(ctx context.Context, src []byte, language string) (*syntax.Tree, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	parser := p.getParser(language)
	if parser == nil {
		return nil, fmt.Errorf("%s: %w", language, ErrUnsupported)
	}

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", language, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.IsNull() {
		return nil, ErrParseFailed
	}

	b := syntax.NewBuilder(language)
	id := b.Root(root.Type(), 0, syntax.ByteOffset(len(src)), root.IsNamed())
	convertChildren(b, id, root)
	return b.Build()
}

func convertChildren(b *syntax.Builder, parent syntax.NodeID, n *sitter.Node) {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		id := b.Add(parent, child.Type(),
			syntax.ByteOffset(child.StartByte()),
			syntax.ByteOffset(child.EndByte()),
			child.IsNamed())
		convertChildren(b, id, child)
	}
}

// SupportsLanguage returns true if a grammar is available for language.
func (p *Parser) SupportsLanguage(language string) bool {
	return grammar(language) != nil
}

// Close releases the cached tree-sitter parsers.
func (p *Parser) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for lang, parser := range p.parsers {
		parser.Close()
		delete(p.parsers, lang)
	}
}
