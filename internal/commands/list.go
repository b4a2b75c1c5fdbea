package commands

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/quant/internal/models"
)

func newListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List records",
		Long:    "List records in log order, optionally only those that began within the last N days",
		Args:    cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			days, _ := cmd.Flags().GetInt("days")
			jsonOutput, _ := cmd.Flags().GetBool("json")

			records := a.tracker.Records()
			if days > 0 {
				records = slices.Collect(a.tracker.FilterSince(days))
			}

			if jsonOutput {
				return renderListJSON(cmd, records)
			}
			renderListTable(cmd, records)
			return nil
		}),
	}

	listCmd.Flags().IntP("days", "d", 0, "Only records that began within the last N days (0 = all)")
	listCmd.Flags().Bool("json", false, "JSON output")
	return listCmd
}

// renderListJSON outputs records in the export format
func renderListJSON(cmd *cobra.Command, records []models.Record) error {
	if records == nil {
		records = []models.Record{}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

// renderListTable outputs records as a plain table
func renderListTable(cmd *cobra.Command, records []models.Record) {
	out := cmd.OutOrStdout()

	if len(records) == 0 {
		fmt.Fprintln(out, "No records found. Use 'quant start \"task, sector\"' to track your first task.")
		return
	}

	// Print table header
	fmt.Fprintf(out, "%-6s %-8s %-30s %-15s %-17s %s\n", "ID", "STATUS", "TASK", "SECTOR", "BEGIN", "DURATION")
	fmt.Fprintln(out, strings.Repeat("-", 88))

	now := time.Now()
	for _, rec := range records {
		status := "done"
		if rec.Active() {
			status = "running"
		}

		fmt.Fprintf(out, "%-6s %-8s %-30s %-15s %-17s %s\n",
			rec.ID,
			status,
			truncate(rec.Name, 30),
			truncate(rec.Sector, 15),
			rec.Begin.Local().Format("02 Jan 2006 15:04"),
			formatDuration(rec.Elapsed(now)))
	}
}

// truncate shortens s to at most width runes
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
