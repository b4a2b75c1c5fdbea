package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>[, <id>...] | all",
		Aliases: []string{"rm"},
		Short:   "Delete records by id, or all of them",
		Long: `Delete one or more records by id. 'quant delete all' empties the log.

Examples:
  quant delete AB12C
  quant delete AB12C, ZZ9QX
  quant delete all`,
		Args: cobra.MinimumNArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			res, err := a.run(cmd.Context(), "delete "+strings.Join(args, " "))
			report(cmd.OutOrStdout(), res, err)
			return nil
		}),
	}
	// arguments are raw grammar, so "-5," is a timestamp and not a flag
	cmd.Flags().SetInterspersed(false)
	return cmd
}
