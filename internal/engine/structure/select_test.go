package structure

import (
	"testing"

	"github.com/dshills/treenav/internal/engine/cursor"
)

func TestSelectAllSiblings(t *testing.T) {
	tests := []struct {
		name  string
		sexp  string
		input string
		want  string
	}{
		{
			name:  "call arguments",
			sexp:  callSexp,
			input: "let foo = bar(#[a|]#, b, c);",
			want:  "let foo = bar(#[a|]#, #(b|)#, #(c|)#);",
		},
		{
			name: "list items",
			sexp: arraySexp,
			input: `let a = [
    #[1|]#,
    2,
    3,
    4,
    5,
];`,
			want: `let a = [
    #[1|]#,
    #(2|)#,
    #(3|)#,
    #(4|)#,
    #(5|)#,
];`,
		},
		{
			name: "direction is preserved",
			sexp: arraySexp,
			input: `let a = [
    #[|1]#,
    2,
    3,
    4,
    5,
];`,
			want: `let a = [
    #[|1]#,
    #(|2)#,
    #(|3)#,
    #(|4)#,
    #(|5)#,
];`,
		},
		{
			name: "primary follows the original range",
			sexp: arraySexp,
			input: `let a = [
    1,
    2,
    #[3|]#,
    4,
    5,
];`,
			want: `let a = [
    #(1|)#,
    #(2|)#,
    #[3|]#,
    #(4|)#,
    #(5|)#,
];`,
		},
		{
			name: "no more siblings",
			sexp: arraySexp,
			input: `let a = [
    #[1|]#,
    #(2|)#,
    #(3|)#,
    #(4|)#,
    #(5|)#,
];`,
			want: `let a = [
    #[1|]#,
    #(2|)#,
    #(3|)#,
    #(4|)#,
    #(5|)#,
];`,
		},
		{
			name: "cursors expand independently",
			sexp: twoArraysSexp,
			input: `let a = [
    #[1|]#,
    2,
    3,
    4,
    5,
];

let b = [
    #("one"|)#,
    "two",
    "three",
    "four",
    "five",
];`,
			want: `let a = [
    #[1|]#,
    #(2|)#,
    #(3|)#,
    #(4|)#,
    #(5|)#,
];

let b = [
    #("one"|)#,
    #("two"|)#,
    #("three"|)#,
    #("four"|)#,
    #("five"|)#,
];`,
		},
		{
			name: "conflicting expansions normalize to the ancestor",
			sexp: arraySexp,
			input: `let a = [
    #[1|]#,
    2,
    #(3,
    4|)#,
    5,
];`,
			want: `let #(a|)# = #[[
    1,
    2,
    3,
    4,
    5,
]|]#;`,
		},
		{
			name:  "zero-width cursor",
			sexp:  callSexp,
			input: "let foo = bar(a, #[|]#b, c);",
			want:  "let foo = bar(#(a|)#, #[b|]#, #(c|)#);",
		},
		{
			name:  "only child is a no-op",
			sexp:  callSexp,
			input: "#[let foo = bar(a, b, c);|]#",
			want:  "#[let foo = bar(a, b, c);|]#",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCommand(t, tt.sexp, SelectAllSiblings, tt.input, tt.want)
		})
	}
}

func TestSelectAllChildren(t *testing.T) {
	tests := []struct {
		name  string
		sexp  string
		input string
		want  string
	}{
		{
			name:  "call arguments",
			sexp:  callSexp,
			input: "let foo = bar#[(a, b, c)|]#;",
			want:  "let foo = bar(#[a|]#, #(b|)#, #(c|)#);",
		},
		{
			name: "list literal",
			sexp: arraySexp,
			input: `let a = #[[
    1,
    2,
    3,
    4,
    5,
]|]#;`,
			want: `let a = [
    #[1|]#,
    #(2|)#,
    #(3|)#,
    #(4|)#,
    #(5|)#,
];`,
		},
		{
			name: "direction is preserved",
			sexp: arraySexp,
			input: `let a = #[|[
    1,
    2,
    3,
    4,
    5,
]]#;`,
			want: `let a = [
    #[|1]#,
    #(|2)#,
    #(|3)#,
    #(|4)#,
    #(|5)#,
];`,
		},
		{
			name: "leaves have no children",
			sexp: arraySexp,
			input: `let a = [
    #[1|]#,
    #(2|)#,
    #(3|)#,
    #(4|)#,
    #(5|)#,
];`,
			want: `let a = [
    #[1|]#,
    #(2|)#,
    #(3|)#,
    #(4|)#,
    #(5|)#,
];`,
		},
		{
			name: "cursors expand independently",
			sexp: twoArraysSexp,
			input: `let a = #[|[
    1,
    2,
    3,
    4,
    5,
]]#;

let b = #([
    "one",
    "two",
    "three",
    "four",
    "five",
]|)#;`,
			want: `let a = [
    #[|1]#,
    #(|2)#,
    #(|3)#,
    #(|4)#,
    #(|5)#,
];

let b = [
    #("one"|)#,
    #("two"|)#,
    #("three"|)#,
    #("four"|)#,
    #("five"|)#,
];`,
		},
		{
			name: "single named child is a no-op",
			sexp: ifElseSexp,
			input: `fn foo() {
    let result = if true {
        "yes"
    } #[else {
        "no"
    }|]#
}
`,
			want: `fn foo() {
    let result = if true {
        "yes"
    } #[else {
        "no"
    }|]#
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCommand(t, tt.sexp, SelectAllChildren, tt.input, tt.want)
		})
	}
}

func TestSelectExhaustion(t *testing.T) {
	commands := map[string]command{
		"siblings": SelectAllSiblings,
		"children": SelectAllChildren,
	}

	for name, cmd := range commands {
		t.Run(name, func(t *testing.T) {
			tree, text, sel := fixture(t, arraySexp, `let a = #[[
    1,
    2,
    3,
    4,
    5,
]|]#;`)

			// Tree depth bounds the number of effective applications.
			for i := 0; i < 8; i++ {
				next := cmd(tree, text, sel)
				if next.Equals(sel) {
					return
				}
				sel = next
			}
			t.Errorf("no fixed point reached, last selection %v", sel)
		})
	}
}

func TestSelectDirectionPreservation(t *testing.T) {
	tree, text, _ := fixture(t, callSexp, "#[|]#"+callDoc)

	for _, dir := range []cursor.Direction{cursor.Forward, cursor.Backward} {
		// "b" and "(a, b, c)"
		inputs := []cursor.Range{
			cursor.FromExtent(cursor.Extent{Start: 17, End: 18}, dir),
			cursor.FromExtent(cursor.Extent{Start: 13, End: 22}, dir),
		}
		for _, r := range inputs {
			sel := cursor.Single(r)
			for _, cmd := range []command{SelectAllSiblings, SelectAllChildren} {
				for _, got := range cmd(tree, text, sel).Ranges() {
					if !got.IsEmpty() && got.Direction() != dir {
						t.Errorf("%v: expected %v replacement, got %v", r, dir, got)
					}
				}
			}
		}
	}
}
