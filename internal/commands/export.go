package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/quant/internal/export"
)

func newExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole log as JSON",
		Long: `Write the log to qt-export-<DD-Mon-YYYY>.txt in the export directory
($QUANT_EXPORT_DIR, default ~/.quant/exports), or to stdout with --stdout.`,
		Args: cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			toStdout, _ := cmd.Flags().GetBool("stdout")
			if !toStdout {
				res, err := a.run(cmd.Context(), "export")
				report(cmd.OutOrStdout(), res, err)
				return nil
			}

			artifact, err := a.tracker.Export()
			if err == nil {
				_, err = export.WriterSink{W: cmd.OutOrStdout(), Name: "stdout"}.Deliver(artifact)
			}
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
			}
			return nil
		}),
	}

	exportCmd.Flags().Bool("stdout", false, "Print the export instead of writing a file")
	return exportCmd
}
