package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/quant/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// newRootCmd builds the full command tree
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quant",
		Short: "A tiny command-driven time tracker",
		Long: `quant tracks what you are doing from a single command line.
Run it without arguments to open the widget, or pass a command directly:
start, stop, add, delete, export.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          withApp(runWidget),
	}

	// Keep everything in memory for this run
	rootCmd.PersistentFlags().Bool("ephemeral", false, "Use an in-memory log that is discarded on exit")

	rootCmd.AddCommand(newUICmd())
	rootCmd.AddCommand(newStartCmd())
	rootCmd.AddCommand(newStopCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newDoCmd())
	rootCmd.AddCommand(newHelpCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the tracking widget",
		Args:  cobra.NoArgs,
		RunE:  withApp(runWidget),
	}
}

// runWidget opens the interactive widget on top of the app's tracker
func runWidget(cmd *cobra.Command, args []string, a *app) error {
	return tui.RunWidgetTUI(a.tracker, a.widgetHook(cmd.Context()))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quant %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}
