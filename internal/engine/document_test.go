package engine

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dshills/treenav/internal/engine/buffer"
	"github.com/dshills/treenav/internal/engine/cursor"
	"github.com/dshills/treenav/internal/engine/syntax"
	"github.com/dshills/treenav/internal/engine/syntax/syntaxtest"
)

// countingParser returns a root-only tree and counts parses.
type countingParser struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (p *countingParser) Parse(_ context.Context, src []byte, language string) (*syntax.Tree, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	b := syntax.NewBuilder(language)
	b.Root("source_file", 0, ByteOffset(len(src)), true)
	return b.Build()
}

func TestNewDefaults(t *testing.T) {
	d := New()

	if d.Content() != "" {
		t.Errorf("expected empty content, got %q", d.Content())
	}
	if !d.Selection().Primary().Equals(cursor.Point(0)) {
		t.Errorf("expected cursor at 0, got %v", d.Selection())
	}
	if d.TabWidth() != DefaultTabWidth {
		t.Errorf("expected tab width %d, got %d", DefaultTabWidth, d.TabWidth())
	}
	if d.IsReadOnly() {
		t.Error("expected writable document")
	}
}

func TestNewWithOptions(t *testing.T) {
	sel := cursor.NewSelection([]cursor.Range{cursor.NewRange(0, 3), cursor.NewRange(4, 99)}, 1)
	d := New(
		WithContent("abc def"),
		WithLanguage("rust"),
		WithPath("/tmp/a.rs"),
		WithSelection(sel),
		WithTabWidth(8),
	)

	if d.Language() != "rust" || d.Path() != "/tmp/a.rs" {
		t.Errorf("unexpected language %q path %q", d.Language(), d.Path())
	}
	if d.TabWidth() != 8 {
		t.Errorf("expected tab width 8, got %d", d.TabWidth())
	}
	want := cursor.NewSelection([]cursor.Range{cursor.NewRange(0, 3), cursor.NewRange(4, 7)}, 1)
	if !d.Selection().Equals(want) {
		t.Errorf("expected clamped %v, got %v", want, d.Selection())
	}
}

func TestTreeCachedPerRevision(t *testing.T) {
	p := &countingParser{}
	d := New(WithContent("fn main() {}"), WithLanguage("rust"), WithParser(p))
	ctx := context.Background()

	first, err := d.Tree(ctx)
	if err != nil {
		t.Fatalf("Tree failed: %v", err)
	}
	second, _ := d.Tree(ctx)
	if first != second || p.calls != 1 {
		t.Errorf("expected cached tree, got %d parses", p.calls)
	}

	if err := d.Apply("insert", buffer.NewInsert(0, "pub ")); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	third, err := d.Tree(ctx)
	if err != nil {
		t.Fatalf("Tree failed: %v", err)
	}
	if third == first || p.calls != 2 {
		t.Errorf("expected reparse after edit, got %d parses", p.calls)
	}
	if third.Len() != d.Text().Len() {
		t.Errorf("expected tree length %d, got %d", d.Text().Len(), third.Len())
	}
}

func TestTreeErrors(t *testing.T) {
	d := New(WithContent("x"))
	if _, err := d.Tree(context.Background()); !errors.Is(err, ErrNoSyntaxTree) {
		t.Errorf("expected ErrNoSyntaxTree, got %v", err)
	}

	boom := errors.New("boom")
	d = New(WithContent("x"), WithParser(&countingParser{err: boom}))
	if _, err := d.Tree(context.Background()); !errors.Is(err, boom) {
		t.Errorf("expected wrapped parser error, got %v", err)
	}
}

func TestFixedTree(t *testing.T) {
	const text = "bar(a, b)"
	tree := syntaxtest.MustParse(t, text,
		`(source_file (call_expression (identifier "bar")
			(arguments "(" (identifier "a") "," (identifier "b") ")")))`)

	d := New(WithContent(text), WithTree(tree))
	got, err := d.Tree(context.Background())
	if err != nil || got != tree {
		t.Fatalf("expected fixed tree, got %v, %v", got, err)
	}

	if err := d.Apply("edit", buffer.NewInsert(0, " ")); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Tree(context.Background()); !errors.Is(err, ErrNoSyntaxTree) {
		t.Errorf("expected stale fixed tree to be dropped, got %v", err)
	}

	d.SetTree(tree)
	if got, _ := d.Tree(context.Background()); got != tree {
		t.Error("expected SetTree to install the tree")
	}
}

func TestApplyMapsSelection(t *testing.T) {
	sel := cursor.NewSelection([]cursor.Range{cursor.Point(0), cursor.Point(4)}, 1)
	d := New(WithContent("abc\ndef"), WithSelection(sel))

	// Given in forward order; Apply sorts them.
	err := d.Apply("indent", buffer.NewInsert(0, "  "), buffer.NewInsert(4, "  "))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if d.Content() != "  abc\n  def" {
		t.Errorf("expected indented text, got %q", d.Content())
	}
	want := cursor.NewSelection([]cursor.Range{cursor.Point(2), cursor.Point(8)}, 1)
	if !d.Selection().Equals(want) {
		t.Errorf("expected %v, got %v", want, d.Selection())
	}
}

func TestApplyErrors(t *testing.T) {
	d := New(WithContent("abc"), WithReadOnly())
	if err := d.Apply("x", buffer.NewInsert(0, "x")); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}

	d = New(WithContent("abc"))
	if err := d.Apply("x", buffer.NewInsert(10, "x")); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
	if err := d.Apply("x", buffer.NewDelete(0, 2), buffer.NewDelete(1, 3)); !errors.Is(err, ErrEditsOverlap) {
		t.Errorf("expected ErrEditsOverlap, got %v", err)
	}
	if d.Content() != "abc" || d.CanUndo() {
		t.Error("failed edits must not change the document")
	}
	if err := d.Apply("none"); err != nil {
		t.Errorf("expected no-op for no edits, got %v", err)
	}
}

func TestUndoRedo(t *testing.T) {
	d := New(WithContent("abc"), WithSelection(cursor.Single(cursor.Point(1))))

	if err := d.Apply("insert", buffer.NewInsert(0, "xx")); err != nil {
		t.Fatal(err)
	}
	if err := d.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if d.Content() != "abc" || d.Selection().Primary().Head != 1 {
		t.Errorf("unexpected state after undo: %q %v", d.Content(), d.Selection())
	}
	if !d.CanRedo() {
		t.Fatal("expected redo available")
	}
	if err := d.Redo(); err != nil {
		t.Fatalf("Redo failed: %v", err)
	}
	if d.Content() != "xxabc" || d.Selection().Primary().Head != 3 {
		t.Errorf("unexpected state after redo: %q %v", d.Content(), d.Selection())
	}
	if err := d.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestConcurrentReads(t *testing.T) {
	d := New(WithContent("abc"), WithParser(&countingParser{}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			text, sel := d.Snapshot()
			if sel.Primary().Head > text.Len() {
				t.Errorf("selection outside text")
			}
			if _, err := d.Tree(context.Background()); err != nil {
				t.Errorf("Tree failed: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestUndoLimit(t *testing.T) {
	d := New(WithContent("abc"), WithMaxUndoEntries(1))

	for _, ins := range []string{"x", "y"} {
		if err := d.Apply("insert", buffer.NewInsert(0, ins)); err != nil {
			t.Fatal(err)
		}
	}
	if err := d.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if d.Content() != "xabc" {
		t.Errorf("expected %q, got %q", "xabc", d.Content())
	}
	if err := d.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo past the limit, got %v", err)
	}
}
