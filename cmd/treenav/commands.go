package main

import (
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	structurehandler "github.com/dshills/treenav/internal/dispatcher/handlers/structure"
	"github.com/dshills/treenav/internal/input/keymap"
)

// commandOutput is the JSON form of one command.
type commandOutput struct {
	Name        string              `json:"name"`
	Action      string              `json:"action"`
	Description string              `json:"description"`
	Keys        map[string][]string `json:"keys,omitempty"`
}

func commandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List commands and their key bindings",
		Long: `List every command with its action name and the keys bound to it in
each mode, after the configured [keys.bindings] overrides.`,
		Args: cobra.NoArgs,
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

			commands := listCommands(application.Keymaps())
			if format == "json" {
				return writeJSON(cmd.OutOrStdout(), commands)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fprintf(tw, "COMMAND\tKEYS\tDESCRIPTION\n")
			for _, c := range commands {
				fprintf(tw, "%s\t%s\t%s\n", c.Name, formatKeys(c.Keys), c.Description)
			}
			return tw.Flush()
		},
	}
}

func listCommands(keymaps *keymap.Registry) []commandOutput {
	var out []commandOutput
	for _, c := range structurehandler.Commands() {
		o := commandOutput{Name: c.Name, Action: c.Action, Description: c.Description}
		for _, mode := range keymap.Modes {
			if keys := keymaps.KeysFor(mode, c.Name); len(keys) > 0 {
				if o.Keys == nil {
					o.Keys = make(map[string][]string)
				}
				o.Keys[mode] = keys
			}
		}
		out = append(out, o)
	}
	return out
}

// formatKeys renders keys as "normal: A-a; select: A-a" in mode order.
func formatKeys(keys map[string][]string) string {
	var parts []string
	for _, mode := range keymap.Modes {
		if k, ok := keys[mode]; ok {
			parts = append(parts, mode+": "+strings.Join(k, " "))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "; ")
}
