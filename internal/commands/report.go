package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/balkashynov/quant/internal/models"
	"github.com/balkashynov/quant/internal/parser"
	"github.com/balkashynov/quant/internal/tracker"
)

// report prints what a command line did, or why it did nothing
func report(w io.Writer, res tracker.Result, err error) {
	switch {
	case errors.Is(err, tracker.ErrAlreadyActive):
		fmt.Fprintf(w, "Error: already tracking %s. Stop it first with 'quant stop'\n", describe(res.Record))
		return
	case errors.Is(err, tracker.ErrNotActive):
		fmt.Fprintln(w, "No active time tracking session")
		return
	case err != nil:
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	switch res.Kind {
	case parser.KindStart:
		fmt.Fprintf(w, "⏱️  Started tracking %s\n", describe(res.Record))
		fmt.Fprintf(w, "Started at: %s\n", res.Record.Begin.Format("15:04:05"))
	case parser.KindStop:
		fmt.Fprintf(w, "⏹️  Stopped tracking %s\n", describe(res.Record))
		fmt.Fprintf(w, "Session duration: %s\n", formatDuration(res.Record.Elapsed(time.Now())))
	case parser.KindAdd:
		fmt.Fprintf(w, "✅ Added %s\n", describe(res.Record))
		fmt.Fprintf(w, "%s → %s (%s)\n",
			res.Record.Begin.Format("02 Jan 15:04"),
			res.Record.End.Format("02 Jan 15:04"),
			formatDuration(res.Record.Elapsed(time.Now())))
	case parser.KindDelete, parser.KindDeleteAll:
		fmt.Fprintf(w, "🗑️  Deleted %d record(s)\n", res.Removed)
	case parser.KindExport:
		fmt.Fprintf(w, "📦 Exported log to %s\n", res.Location)
	}
}

// describe renders a record as [ID] name · sector
func describe(rec models.Record) string {
	if rec.Sector == "" {
		return fmt.Sprintf("[%s] %s", rec.ID, rec.Name)
	}
	return fmt.Sprintf("[%s] %s · %s", rec.ID, rec.Name, rec.Sector)
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}
