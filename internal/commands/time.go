package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start <name>[, <sector>]",
		Short: "Start tracking a task",
		Long: `Start tracking time on a new task. Only one task can run at a time.

Examples:
  quant start Read, Study
  quant start "Deep work, Job"`,
		Args: cobra.MinimumNArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			res, err := a.run(cmd.Context(), "start "+strings.Join(args, " "))
			report(cmd.OutOrStdout(), res, err)
			return nil
		}),
	}
	// arguments are raw grammar, so "-5," is a timestamp and not a flag
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop tracking time",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			res, err := a.run(cmd.Context(), "stop")
			report(cmd.OutOrStdout(), res, err)
			return nil
		}),
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show current time tracking status",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			rec, ok := a.tracker.Active()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No active time tracking session")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "⏱️  Currently tracking: %s\n", describe(rec))
			fmt.Fprintf(out, "Started at: %s\n", rec.Begin.Format("15:04:05"))
			fmt.Fprintf(out, "Elapsed time: %s\n", formatDuration(rec.Elapsed(time.Now())))
			return nil
		}),
	}
}
