package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/balkashynov/quant/internal/models"
	"github.com/balkashynov/quant/internal/parser"
	"github.com/balkashynov/quant/internal/tracker"
)

// setupHome points every quant path at a fresh temp directory
func setupHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("QUANT_HOME", home)
	t.Setenv("QUANT_DB_PATH", "")
	t.Setenv("QUANT_NAMESPACE", "")
	t.Setenv("QUANT_EXPORT_DIR", "")
	t.Setenv("QUANT_LOG_FILE", "")
	t.Setenv("QUANT_LOG_LEVEL", "debug")
	return home
}

// execute runs quant with args and returns its combined output
func execute(t *testing.T, args ...string) string {
	t.Helper()

	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("quant %s failed: %v\n%s", strings.Join(args, " "), err, buf.String())
	}
	return buf.String()
}

func listJSON(t *testing.T, args ...string) []models.Record {
	t.Helper()

	out := execute(t, append([]string{"ls", "--json"}, args...)...)
	var records []models.Record
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("ls --json output is not JSON: %v\n%s", err, out)
	}
	return records
}

func TestCommands_StartStatusStop(t *testing.T) {
	setupHome(t)

	out := execute(t, "start", "Read,", "Study")
	if !strings.Contains(out, "Started tracking") || !strings.Contains(out, "Read · Study") {
		t.Errorf("unexpected start output: %s", out)
	}

	out = execute(t, "start", "Write")
	if !strings.Contains(out, "already tracking") {
		t.Errorf("second start should be refused: %s", out)
	}

	out = execute(t, "status")
	if !strings.Contains(out, "Currently tracking") {
		t.Errorf("unexpected status output: %s", out)
	}

	out = execute(t, "stop")
	if !strings.Contains(out, "Stopped tracking") {
		t.Errorf("unexpected stop output: %s", out)
	}

	out = execute(t, "stop")
	if !strings.Contains(out, "No active time tracking session") {
		t.Errorf("idle stop should say so: %s", out)
	}

	records := listJSON(t)
	if len(records) != 1 || !records[0].Done || records[0].Name != "Read" {
		t.Errorf("expected one done Read record, got %+v", records)
	}
}

func TestCommands_AddDelete(t *testing.T) {
	setupHome(t)

	execute(t, "add", "Read, Study, 1000, 5000")
	execute(t, "add", "Gym, Health, 1000, 2000")
	execute(t, "add", "Cook, Home, 1000, 3000")

	records := listJSON(t)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Duration != 4000 {
		t.Errorf("expected duration 4000, got %d", records[0].Duration)
	}

	out := execute(t, "delete", records[1].ID)
	if !strings.Contains(out, "Deleted 1 record(s)") {
		t.Errorf("unexpected delete output: %s", out)
	}

	remaining := listJSON(t)
	if len(remaining) != 2 || remaining[0].ID != records[0].ID || remaining[1].ID != records[2].ID {
		t.Errorf("unexpected remaining records %+v", remaining)
	}

	execute(t, "delete", "all")
	if got := listJSON(t); len(got) != 0 {
		t.Errorf("expected empty log after delete all, got %d", len(got))
	}
}

func TestCommands_NegativeTimestampIsNotAFlag(t *testing.T) {
	setupHome(t)

	execute(t, "add", "Read,", "Study,", "-5,", "1000")
	execute(t, "do", "add", "Gym,", "Health,", "-10,", "0")
	execute(t, "--ephemeral", "add", "Cook,", "Home,", "-1,", "1")

	records := listJSON(t)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %+v", records)
	}
	if records[0].Name != "Read" || records[0].Duration != 1005 {
		t.Errorf("unexpected first record %+v", records[0])
	}
	if records[1].Name != "Gym" || records[1].Duration != 10 {
		t.Errorf("unexpected second record %+v", records[1])
	}
}

func TestCommands_ListDaysFilter(t *testing.T) {
	setupHome(t)

	execute(t, "add", "Ancient, Past, 1000, 5000")
	execute(t, "start", "Now, Present")

	recent := listJSON(t, "--days", "1")
	if len(recent) != 1 || recent[0].Name != "Now" {
		t.Errorf("expected only the running record, got %+v", recent)
	}

	out := execute(t, "ls")
	if !strings.Contains(out, "running") || !strings.Contains(out, "Ancient") {
		t.Errorf("unexpected table output: %s", out)
	}
}

func TestCommands_DoRejectsUnknown(t *testing.T) {
	setupHome(t)

	out := execute(t, "do", "dance")
	if !strings.Contains(out, "Error: unknown command") {
		t.Errorf("unexpected output: %s", out)
	}

	out = execute(t, "do", "add Read, Study")
	if !strings.Contains(out, "Error: add:") {
		t.Errorf("unexpected output: %s", out)
	}

	if got := listJSON(t); len(got) != 0 {
		t.Errorf("rejected lines must not create records, got %d", len(got))
	}
}

func TestCommands_Export(t *testing.T) {
	home := setupHome(t)

	execute(t, "do", "add Read, Study, 1000, 5000")

	out := execute(t, "export")
	if !strings.Contains(out, "Exported log to") {
		t.Fatalf("unexpected export output: %s", out)
	}

	matches, err := filepath.Glob(filepath.Join(home, "exports", "qt-export-*.txt"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one export file, got %v (err=%v)", matches, err)
	}
	data, _ := os.ReadFile(matches[0])
	if !strings.Contains(string(data), `"taskname":"Read"`) {
		t.Errorf("unexpected export content %s", data)
	}

	out = execute(t, "export", "--stdout")
	if !strings.HasPrefix(out, "[{") {
		t.Errorf("expected raw JSON on stdout, got %s", out)
	}
}

func TestCommands_Ephemeral(t *testing.T) {
	setupHome(t)

	execute(t, "--ephemeral", "start", "Read, Study")
	if got := listJSON(t); len(got) != 0 {
		t.Errorf("ephemeral run must not persist, got %d records", len(got))
	}
}

func TestCommands_WritesLogFile(t *testing.T) {
	home := setupHome(t)

	execute(t, "start", "Read, Study")

	data, err := os.ReadFile(filepath.Join(home, "quant.log"))
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(data), "task started") {
		t.Errorf("expected start to be logged, got %s", data)
	}
}

func TestCommands_VersionAndGuide(t *testing.T) {
	SetVersion("1.2.3", "abc", "today")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	if out := execute(t, "version"); !strings.Contains(out, "quant 1.2.3") {
		t.Errorf("unexpected version output: %s", out)
	}
	if out := execute(t, "guide"); !strings.Contains(out, "delete all") {
		t.Errorf("unexpected guide output: %s", out)
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{tracker.ErrAlreadyActive, "noop"},
		{tracker.ErrNotActive, "noop"},
		{fmt.Errorf("%w: %q", parser.ErrUnknownCommand, "dance"), "rejected"},
		{&parser.SyntaxError{Keyword: "add", Reason: "missing task name"}, "rejected"},
		{errors.New("disk full"), "error"},
	}

	for _, tt := range tests {
		if got := outcome(tt.err); got != tt.want {
			t.Errorf("outcome(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
