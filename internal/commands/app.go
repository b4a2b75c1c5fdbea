package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/quant/internal/config"
	"github.com/balkashynov/quant/internal/db"
	"github.com/balkashynov/quant/internal/export"
	"github.com/balkashynov/quant/internal/logging"
	"github.com/balkashynov/quant/internal/parser"
	"github.com/balkashynov/quant/internal/tracker"
	"github.com/balkashynov/quant/internal/tui"
)

// app is everything one command invocation needs
type app struct {
	cfg     *config.Config
	tel     *logging.Telemetry
	tracker *tracker.Tracker

	closeStore func() error
}

// openApp loads config, telemetry and storage, then builds the tracker
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	tel, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, tel: tel, closeStore: func() error { return nil }}

	var store db.Store
	ephemeral, _ := cmd.Flags().GetBool("ephemeral")
	if ephemeral {
		store = db.NewMemoryStore()
	} else {
		sqliteStore, err := db.Open(cfg.DBPath)
		if err != nil {
			a.Close()
			return nil, err
		}
		store = sqliteStore
		a.closeStore = sqliteStore.Close
	}

	a.tracker, err = tracker.New(store,
		tracker.WithNamespace(cfg.Namespace),
		tracker.WithLogger(tel.Logger),
		tracker.WithSink(export.DirSink{Dir: cfg.ExportDir}),
	)
	if err != nil {
		a.Close()
		return nil, err
	}

	tel.Logger.Debug("app opened", "command", cmd.Name(), "db", cfg.DBPath, "ephemeral", ephemeral)
	return a, nil
}

// Close releases storage and flushes telemetry
func (a *app) Close() error {
	storeErr := a.closeStore()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	telErr := a.tel.Shutdown(ctx)

	return errors.Join(storeErr, telErr)
}

// withApp wraps a command function to open the app first
func withApp(fn func(*cobra.Command, []string, *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return fmt.Errorf("failed to start quant: %w", err)
		}
		defer a.Close()

		return fn(cmd, args, a)
	}
}

// run feeds one command line to the tracker and records the outcome
func (a *app) run(ctx context.Context, line string) (tracker.Result, error) {
	res, err := a.tracker.Listen(line)
	a.record(ctx, line, res, err)
	return res, err
}

// record counts the command and logs rejected lines
func (a *app) record(ctx context.Context, line string, res tracker.Result, err error) {
	result := outcome(err)
	a.tel.CountCommand(ctx, res.Kind.String(), result)
	if result == "error" {
		a.tel.Logger.Error("command failed", "input", line, "error", err)
	}
}

// widgetHook reports widget input the same way as CLI commands
func (a *app) widgetHook(ctx context.Context) tui.CommandHook {
	if ctx == nil {
		ctx = context.Background()
	}
	return func(line string, res tracker.Result, err error) {
		a.record(ctx, line, res, err)
	}
}

// outcome classifies a command error for metrics
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, tracker.ErrAlreadyActive), errors.Is(err, tracker.ErrNotActive):
		return "noop"
	case errors.Is(err, parser.ErrUnknownCommand), errors.Is(err, parser.ErrMalformed):
		return "rejected"
	default:
		return "error"
	}
}
