// Package main is the entry point for the Mindflow application.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand builds the command tree: the root command opens the
// graphical editor, the repl subcommand runs the terminal interface.
func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "mindflow",
		Short: "A keyboard-driven mind-mapping editor",
		Long: `Mindflow is a keyboard-driven mind-mapping editor. Starting from one
central topic, Tab adds a child of the active node, Enter adds a
sibling, the arrow keys move the active marker, and the canvas
re-lays-out automatically as the tree grows.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap(configPath, frontendCanvas)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to the configuration file")

	root.AddCommand(&cobra.Command{
		Use:          "repl",
		Short:        "Run the terminal interface instead of the graphical editor",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap(configPath, frontendREPL)
		},
	})

	return root
}
