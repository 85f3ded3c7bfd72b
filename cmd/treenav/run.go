package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// runOutput is the JSON form of a run.
type runOutput struct {
	Command string        `json:"command"`
	Status  string        `json:"status"`
	Ranges  []rangeOutput `json:"ranges"`
	Edited  bool          `json:"edited"`
	Content string        `json:"content,omitempty"`
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <command> <file>",
		Short: "Apply a structural command to a file and print the selection",
		Long: `Parse the file, apply the command to the --select selection and print
the resulting ranges. When supertab inserts indentation the new buffer is
printed after the ranges, or written back with --write.

Offsets are zero-based byte offsets.`,
		Example: `  treenav run select_all_siblings main.rs --select 14:15
  treenav run move_parent_node_end main.go -s 120 --count 2 --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			command, file := args[0], args[1]

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			application, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer application.Close()

			doc, err := openFile(cmd, application, file)
			if err != nil {
				return err
			}

			count, _ := cmd.Flags().GetInt("count")
			result, err := application.Run(cmd.Context(), command, count)
			if err != nil {
				return err
			}

			edited := len(result.Edits) > 0
			if write, _ := cmd.Flags().GetBool("write"); write && edited {
				if err := os.WriteFile(file, []byte(doc.Content()), 0o644); err != nil {
					return errors.Wrapf(err, "write %s", file)
				}
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				o := runOutput{
					Command: command,
					Status:  result.Status.String(),
					Ranges:  rangesOutput(doc.Selection()),
					Edited:  edited,
				}
				if edited {
					o.Content = doc.Content()
				}
				return writeJSON(out, o)
			}

			writeSelection(out, doc.Selection())
			if edited {
				fprintf(out, "---\n%s", doc.Content())
			}
			return nil
		},
	}

	addDocumentFlags(cmd)
	cmd.Flags().IntP("count", "n", 1, "repeat count")
	cmd.Flags().BoolP("write", "w", false, "write the buffer back to the file when the command edits it")
	return cmd
}
