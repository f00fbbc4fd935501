// Package cli wires the configuration, the event bus and the Bubble Tea
// program behind the folio command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folio/internal/ui/input/types"
)

// Version is set at build time with -ldflags "-X folio/internal/cli.Version=..."
var Version = "dev"

// NewRootCommand builds the folio command tree
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "folio",
		Short: "Page through a month calendar and a slide carousel",
		Long: `folio is a terminal viewer with two paged screens: a month calendar and an
image carousel. Both animate every page change and ignore requests that arrive
while a transition is still running.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, types.ScreenLanding, nil)
		},
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/folio/config.toml)")
	root.PersistentFlags().String("log", "", "Append logs to this file")
	root.PersistentFlags().Bool("print", false, "Render a single frame to stdout and exit")

	root.AddCommand(
		newCalendarCommand(),
		newCarouselCommand(),
		newConfigCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command and exits on error
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of folio",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "folio version %s\n", Version)
		},
	}
}
