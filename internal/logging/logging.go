package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const instrumentationName = "github.com/balkashynov/quant"

// Telemetry bundles the structured logger and the command counter
type Telemetry struct {
	Logger     *slog.Logger
	InstanceID string

	commands metric.Int64Counter
	logs     *sdklog.LoggerProvider
	meters   *sdkmetric.MeterProvider
	closer   io.Closer
}

// Setup opens (or creates) the log file at path and exports telemetry into it
func Setup(path string, level slog.Level) (*Telemetry, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	t, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, err
	}
	t.closer = f
	return t, nil
}

// New exports log records and metrics as JSON lines to w
func New(w io.Writer, level slog.Level) (*Telemetry, error) {
	logExporter, err := stdoutlog.New(stdoutlog.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("failed to create log exporter: %w", err)
	}
	logs := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewSimpleProcessor(logExporter)),
	)

	metricExporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}
	meters := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
	)

	commands, err := meters.Meter(instrumentationName).Int64Counter("quant.commands",
		metric.WithDescription("Commands handled, by command and outcome"),
		metric.WithUnit("{command}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create command counter: %w", err)
	}

	instanceID := uuid.New().String()
	bridge := otelslog.NewLogger(instrumentationName, otelslog.WithLoggerProvider(logs))
	logger := slog.New(&levelHandler{min: level, next: bridge.Handler()}).With("instance", instanceID)

	return &Telemetry{
		Logger:     logger,
		InstanceID: instanceID,
		commands:   commands,
		logs:       logs,
		meters:     meters,
	}, nil
}

// CountCommand records one handled command
func (t *Telemetry) CountCommand(ctx context.Context, command, outcome string) {
	t.commands.Add(ctx, 1, metric.WithAttributes(
		attribute.String("command", command),
		attribute.String("outcome", outcome),
	))
}

// Shutdown flushes pending telemetry and closes the log file
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if err := t.meters.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := t.logs.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if t.closer != nil {
		if err := t.closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// levelHandler drops records below min before they reach the bridge
type levelHandler struct {
	min  slog.Level
	next slog.Handler
}

func (h *levelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.min && h.next.Enabled(ctx, level)
}

func (h *levelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.next.Handle(ctx, r)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{min: h.min, next: h.next.WithAttrs(attrs)}
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{min: h.min, next: h.next.WithGroup(name)}
}
