package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <command line>",
		Short: "Run a raw widget command line",
		Long: `Run exactly what you would type into the widget.

Examples:
  quant do "start Read, Study"
  quant do "delete all"`,
		Args: cobra.MinimumNArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			res, err := a.run(cmd.Context(), strings.Join(args, " "))
			report(cmd.OutOrStdout(), res, err)
			return nil
		}),
	}
	// arguments are raw grammar, so "-5," is a timestamp and not a flag
	cmd.Flags().SetInterspersed(false)
	return cmd
}
