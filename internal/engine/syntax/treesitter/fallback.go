//go:build !cgo

package treesitter

import (
	"context"
	"fmt"

	"github.com/dshills/treenav/internal/engine/syntax"
)

// Parser is the cgo-less stand-in; it supports no languages.
type Parser struct{}

// NewParser creates a parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse always fails with ErrUnsupported.
func (p *Parser) Parse(ctx context.Context, src []byte, language string) (*syntax.Tree, error) {
	return nil, fmt.Errorf("%s (built without cgo): %w", language, ErrUnsupported)
}

// SupportsLanguage always returns false.
func (p *Parser) SupportsLanguage(language string) bool {
	return false
}

// Close is a no-op.
func (p *Parser) Close() {}
