//go:build cgo

package treesitter

import (
	"context"
	"errors"
	"testing"

	"github.com/dshills/treenav/internal/engine/buffer"
)

func TestParseGo(t *testing.T) {
	p := NewParser()
	defer p.Close()

	src := "package main\n\nfunc main() {}\n"
	tree, err := p.Parse(context.Background(), []byte(src), LangGo)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if tree.Language() != LangGo {
		t.Errorf("expected language go, got %q", tree.Language())
	}
	root := tree.Root()
	if root.Kind() != "source_file" {
		t.Errorf("expected source_file, got %s", root.Kind())
	}
	if root.Span() != buffer.NewRange(0, buffer.ByteOffset(len(src))) {
		t.Errorf("root should span the whole source, got %v", root.Span())
	}

	// "main" in "func main"
	ident := tree.NamedDescendantForRange(19, 23)
	if ident.Kind() != "identifier" {
		t.Errorf("expected identifier, got %s", ident)
	}
	parent, ok := ident.Parent()
	if !ok || parent.Kind() != "function_declaration" {
		t.Errorf("expected function_declaration parent, got %v", parent)
	}
}

func TestParseUnsupported(t *testing.T) {
	p := NewParser()
	defer p.Close()

	if p.SupportsLanguage("cobol") {
		t.Error("cobol should not be supported")
	}
	_, err := p.Parse(context.Background(), []byte("x"), "cobol")
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestSupportedLanguagesHaveGrammars(t *testing.T) {
	p := NewParser()
	defer p.Close()

	for _, lang := range SupportedLanguages {
		if !p.SupportsLanguage(lang) {
			t.Errorf("expected grammar for %s", lang)
		}
	}
}
