package main

import (
	"github.com/spf13/cobra"

	"github.com/dshills/treenav/internal/plugin"
	"github.com/dshills/treenav/internal/plugin/security"
)

// scriptOutput is the JSON form of a script run.
type scriptOutput struct {
	Results []any         `json:"results"`
	Ranges  []rangeOutput `json:"ranges"`
	Content string        `json:"content"`
}

func scriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script <script.lua> <file>",
		Short: "Run a Lua script against a file",
		Long: `Open the file with the --select selection and run a sandboxed Lua script.
The script reaches the structural commands through require("tn").structure
when it holds the editor.cursor capability (granted by default).

The script's return values and the final selection are printed.`,
		Example: `  -- siblings.lua
  local s = require("tn").structure
  return #s.select_all_siblings()

  treenav script siblings.lua main.rs --select 14:15`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, file := args[0], args[1]

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			names, _ := cmd.Flags().GetStringSlice("cap")
			caps, err := security.ParseCapabilities(names)
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

			host, err := plugin.NewHost(application, plugin.WithName(script), plugin.WithCapabilities(caps...))
			if err != nil {
				return err
			}
			defer host.Close()

			results, err := host.Run(cmd.Context(), script)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				return writeJSON(out, scriptOutput{
					Results: results,
					Ranges:  rangesOutput(doc.Selection()),
					Content: doc.Content(),
				})
			}
			for _, r := range results {
				fprintf(out, "%v\n", r)
			}
			writeSelection(out, doc.Selection())
			return nil
		},
	}

	addDocumentFlags(cmd)
	cmd.Flags().StringSlice("cap", []string{string(security.CapabilityCursor)}, "capabilities granted to the script")
	return cmd
}
