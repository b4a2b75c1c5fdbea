package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFilename(t *testing.T) {
	got := Filename(time.Date(2024, time.March, 5, 18, 0, 0, 0, time.Local))
	if got != "qt-export-05-Mar-2024.txt" {
		t.Errorf("unexpected filename %q", got)
	}

	got = Filename(time.Date(2026, time.October, 17, 0, 0, 0, 0, time.Local))
	if got != "qt-export-17-Oct-2026.txt" {
		t.Errorf("unexpected filename %q", got)
	}
}

func TestDirSink_Deliver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sink := DirSink{Dir: dir}

	path, err := sink.Deliver(Artifact{Filename: "qt-export-x.txt", ContentType: ContentType, Data: []byte("[]")})
	if err != nil {
		t.Fatalf("Deliver failed: %v", err)
	}
	if path != filepath.Join(dir, "qt-export-x.txt") {
		t.Errorf("unexpected path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestWriterSink_Deliver(t *testing.T) {
	var buf bytes.Buffer
	sink := WriterSink{W: &buf}

	location, err := sink.Deliver(Artifact{Data: []byte(`[{"id":"A"}]`)})
	if err != nil {
		t.Fatalf("Deliver failed: %v", err)
	}
	if buf.String() != `[{"id":"A"}]` {
		t.Errorf("unexpected output %q", buf.String())
	}
	if location != "writer" {
		t.Errorf("unnamed sink should report writer, got %q", location)
	}
}

func TestWriterSink_DeliverNamed(t *testing.T) {
	var buf bytes.Buffer
	sink := WriterSink{W: &buf, Name: "report.json"}

	location, err := sink.Deliver(Artifact{Data: []byte(`[]`)})
	if err != nil {
		t.Fatalf("Deliver failed: %v", err)
	}
	if location != "report.json" {
		t.Errorf("expected sink name as location, got %q", location)
	}
}
