package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Show the command guide for quant",
		Long:  `Display the widget command grammar and every quant subcommand.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), guideText)
		},
	}
}

const guideText = `
quant - a tiny command-driven time tracker

WIDGET COMMANDS (type into the widget, or pass to 'quant do'):

  start <name>[, <sector>]            Start tracking (one task at a time)
  stop                                Stop the running task
  add <name>, <sector>, <begin>, <end>
                                      Add a finished task
                                      begin/end: unix ms, RFC3339,
                                      dd/mm/yyyy HH:MM or dd/mm/yyyy
  delete <id>[, <id>...]              Delete records by id
  delete all                          Delete every record
  export                              Write qt-export-<DD-Mon-YYYY>.txt

SUBCOMMANDS:

  quant                               Open the widget (also 'quant ui')
  quant start|stop|add|delete ...     Same as the widget commands
  quant export [--stdout]             Export to the export dir or stdout
  quant status                        Show the running task
  quant ls [--days N] [--json]        List records
  quant do "<line>"                   Run a raw widget line
  quant version                       Print version information

  --ephemeral                         Keep the log in memory for this run

ENVIRONMENT (also read from ./.env):

  QUANT_HOME        data directory (default ~/.quant)
  QUANT_DB_PATH     SQLite file (default $QUANT_HOME/quant.db)
  QUANT_NAMESPACE   storage key (default quantified-life)
  QUANT_EXPORT_DIR  export directory (default $QUANT_HOME/exports)
  QUANT_LOG_FILE    log file (default $QUANT_HOME/quant.log)
  QUANT_LOG_LEVEL   debug|info|warn|error (default info)

`
