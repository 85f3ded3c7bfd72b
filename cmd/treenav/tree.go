package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/treenav/internal/engine/syntax"
)

// nodeOutput is the JSON form of a named node.
type nodeOutput struct {
	Kind     string       `json:"kind"`
	Start    int64        `json:"start"`
	End      int64        `json:"end"`
	Children []nodeOutput `json:"children,omitempty"`
}

func treeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the named syntax tree of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			application, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer application.Close()

			lang, _ := cmd.Flags().GetString("lang")
			doc, err := application.Documents().Open(args[0], lang)
			if err != nil {
				return err
			}
			tree, err := doc.Tree(cmd.Context())
			if err != nil {
				return err
			}

			if sexp, _ := cmd.Flags().GetBool("sexp"); sexp {
				fprintf(cmd.OutOrStdout(), "%s\n", tree)
				return nil
			}
			if format == "json" {
				return writeJSON(cmd.OutOrStdout(), nodeToOutput(tree.Root()))
			}
			writeTree(cmd.OutOrStdout(), tree.Root(), 0)
			return nil
		},
	}

	cmd.Flags().String("lang", "", "language (default: detected from the file extension)")
	cmd.Flags().Bool("sexp", false, "print a single-line s-expression")
	return cmd
}

// writeTree prints named nodes indented by depth with their byte spans.
func writeTree(w io.Writer, n syntax.Node, depth int) {
	fprintf(w, "%s%s [%d, %d)\n", strings.Repeat("  ", depth), n.Kind(), n.Start(), n.End())
	for _, c := range n.NamedChildren() {
		writeTree(w, c, depth+1)
	}
}

func nodeToOutput(n syntax.Node) nodeOutput {
	o := nodeOutput{Kind: n.Kind(), Start: n.Start(), End: n.End()}
	for _, c := range n.NamedChildren() {
		o.Children = append(o.Children, nodeToOutput(c))
	}
	return o
}
