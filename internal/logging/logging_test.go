package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_ExportsLogsAndMetrics(t *testing.T) {
	var buf bytes.Buffer

	tel, err := New(&buf, slog.LevelInfo)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tel.Logger.Info("task started", "id", "AB12C")
	tel.Logger.Debug("hidden detail")
	tel.CountCommand(context.Background(), "start", "ok")

	if err := tel.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "task started") {
		t.Errorf("expected log body in output, got %s", out)
	}
	if strings.Contains(out, "hidden detail") {
		t.Error("debug record should be filtered at info level")
	}
	if !strings.Contains(out, tel.InstanceID) {
		t.Error("expected instance id on log records")
	}
	if !strings.Contains(out, "quant.commands") {
		t.Errorf("expected command counter in output, got %s", out)
	}
}

func TestSetup_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quant.log")

	tel, err := Setup(path, slog.LevelDebug)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	tel.Logger.Debug("log loaded", "records", 3)
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "log loaded") {
		t.Errorf("expected record in log file, got %s", data)
	}
}

func TestLevelHandler(t *testing.T) {
	h := &levelHandler{min: slog.LevelWarn, next: slog.DiscardHandler}

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be below warn")
	}
	// DiscardHandler is never enabled, so nothing passes through
	if h.Enabled(context.Background(), slog.LevelError) {
		t.Error("inner handler should still be consulted")
	}
}
