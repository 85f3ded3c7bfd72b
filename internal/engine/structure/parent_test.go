package structure

import (
	"testing"

	"github.com/dshills/treenav/internal/engine/cursor"
	"github.com/dshills/treenav/internal/engine/cursor/cursortest"
)

func TestMoveParentNodeStart(t *testing.T) {
	// Each step starts where the previous one ended.
	steps := []string{
		`fn foo() {
    let result = if true {
        "yes"
    } else {
        "no#[|]#"
    }
}
`,
		`fn foo() {
    let result = if true {
        "yes"
    } else {
        #[|]#"no"
    }
}
`,
		`fn foo() {
    let result = if true {
        "yes"
    } else #[|]#{
        "no"
    }
}
`,
		`fn foo() {
    let result = if true {
        "yes"
    } #[|]#else {
        "no"
    }
}
`,
		`fn foo() {
    let result = #[|]#if true {
        "yes"
    } else {
        "no"
    }
}
`,
	}

	for i := 1; i < len(steps); i++ {
		assertCommand(t, ifElseSexp, MoveParentNodeStart, steps[i-1], steps[i])
	}
}

func TestMoveParentNodeStartFromLineEnd(t *testing.T) {
	assertCommand(t, ifElseSexp, MoveParentNodeStart,
		`fn foo() {
    let result = if true {
        "yes"
    } else {
        "no"#[|]#
    }
}
`,
		`fn foo() {
    let result = if true {
        "yes"
    } else #[|]#{
        "no"
    }
}
`)
}

func TestExtendParentNodeStart(t *testing.T) {
	steps := []string{
		`fn foo() {
    let result = if true {
        "yes"
    } else {
        #["no"|]#
    }
}
`,
		`fn foo() {
    let result = if true {
        "yes"
    } else {
        #[|]#"no"
    }
}
`,
		`fn foo() {
    let result = if true {
        "yes"
    } else #[|{
        ]#"no"
    }
}
`,
		`fn foo() {
    let result = if true {
        "yes"
    } #[|else {
        ]#"no"
    }
}
`,
	}

	for i := 1; i < len(steps); i++ {
		assertCommand(t, ifElseSexp, ExtendParentNodeStart, steps[i-1], steps[i])
	}
}

func TestMoveParentNodeEnd(t *testing.T) {
	steps := []string{
		`fn foo() {
    let result = if true {
        "yes"
    } else {
        #[|]#"no"
    }
}
`,
		`fn foo() {
    let result = if true {
        "yes"
    } else {
        "no"#[|]#
    }
}
`,
		`fn foo() {
    let result = if true {
        "yes"
    } else {
        "no"
    }#[|]#
}
`,
	}

	for i := 1; i < len(steps); i++ {
		assertCommand(t, ifElseSexp, MoveParentNodeEnd, steps[i-1], steps[i])
	}
}

func TestExtendParentNodeEnd(t *testing.T) {
	assertCommand(t, ifElseSexp, ExtendParentNodeEnd,
		`fn foo() {
    let result = if true {
        "yes"
    } else {
        #["no"|]#
    }
}
`,
		`fn foo() {
    let result = if true {
        "yes"
    } else {
        #["no"
    }|]#
}
`)
}

func TestParentNodeMergesCursors(t *testing.T) {
	// Both cursors land on the opening quote and merge; the merged range is primary.
	assertCommand(t, ifElseSexp, MoveParentNodeStart,
		`fn foo() {
    let result = if true {
        "#(|)#yes#[|]#"
    } else {
        "no"
    }
}
`,
		`fn foo() {
    let result = if true {
        #[|]#"yes"
    } else {
        "no"
    }
}
`)
}

func TestParentNodeAscensionMonotonic(t *testing.T) {
	tests := []struct {
		name     string
		cmd      command
		boundary Boundary
	}{
		{"start", MoveParentNodeStart, BoundaryStart},
		{"end", MoveParentNodeEnd, BoundaryEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, text, sel := fixture(t, ifElseSexp, `fn foo() {
    let result = if true {
        "y#[|]#es"
    } else {
        "no"
    }
}
`)
			visited := map[cursor.ByteOffset]bool{}
			head := sel.Primary().Head
			for i := 0; i < 20; i++ {
				visited[head] = true
				sel = tt.cmd(tree, text, sel)
				next := sel.Primary().Head

				if next == head {
					root := tree.Root()
					if want := boundaryOf(root, tt.boundary); next != want {
						t.Fatalf("stopped at %d before the root boundary %d", next, want)
					}
					return
				}
				if tt.boundary == BoundaryStart && next > head || tt.boundary == BoundaryEnd && next < head {
					t.Fatalf("moved backwards from %d to %d", head, next)
				}
				if visited[next] {
					t.Fatalf("revisited %d", next)
				}
				head = next
			}
			t.Errorf("navigation did not reach the root: %s", cursortest.Format(text.String(), sel))
		})
	}
}

func TestParentBoundaryOffsetAtEndOfText(t *testing.T) {
	tree, text, _ := fixture(t, callSexp, callDoc+"#[|]#")
	end := text.Len()

	for _, b := range []Boundary{BoundaryStart, BoundaryEnd} {
		got := ParentBoundaryOffset(tree, text, cursor.Point(end), b)
		want := boundaryOf(tree.Root(), b)
		if got != want {
			t.Errorf("%v: expected %d, got %d", b, want, got)
		}
	}
}
