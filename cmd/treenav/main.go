// Package main is the entry point for the treenav command line tool.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "treenav",
		Short: "Structural selection over tree-sitter syntax trees",
		Long: `treenav applies helix-style structural selection commands to a file:
select all siblings or children of the selected node, move or extend to
the start or end of the enclosing node, and supertab.

Run 'treenav commands' for the command list and default key bindings.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path (default: user config dir)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("format", "text", "output format (text, json)")

	rootCmd.AddCommand(
		runCmd(),
		treeCmd(),
		commandsCmd(),
		scriptCmd(),
		versionCmd(),
	)
	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fprintf(out, "treenav %s\n", version)
			fprintf(out, "  commit: %s\n", commit)
			fprintf(out, "  built:  %s\n", date)
		},
	}
}
