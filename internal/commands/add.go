package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>, <sector>, <begin>, <end>",
		Short: "Add a finished task retroactively",
		Long: `Add a task that already happened.

Begin and end accept:
  1700000000000         unix milliseconds
  2024-12-15T09:30:00Z  RFC3339
  15/12/2024 09:30      dd/mm/yyyy HH:MM (local time)
  15/12/2024            dd/mm/yyyy (local midnight)

Example:
  quant add "Read, Study, 15/12/2024 09:30, 15/12/2024 11:00"`,
		Args: cobra.MinimumNArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			res, err := a.run(cmd.Context(), "add "+strings.Join(args, " "))
			report(cmd.OutOrStdout(), res, err)
			return nil
		}),
	}
	// arguments are raw grammar, so "-5," is a timestamp and not a flag
	cmd.Flags().SetInterspersed(false)
	return cmd
}
