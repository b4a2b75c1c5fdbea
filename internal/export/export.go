package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ContentType of every exported log
const ContentType = "text/json"

// Artifact is a serialized log ready to be handed to the user
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Filename returns the suggested export name for t, e.g. qt-export-05-Mar-2024.txt
func Filename(t time.Time) string {
	return fmt.Sprintf("qt-export-%s.txt", t.Format("02-Jan-2006"))
}

// Sink delivers an artifact somewhere the user can pick it up
type Sink interface {
	// Deliver hands the artifact over and returns a human-readable location
	Deliver(a Artifact) (string, error)
}

// DirSink writes artifacts as files into Dir
type DirSink struct {
	Dir string
}

// Deliver writes the artifact to Dir/Filename, creating Dir if needed
func (s DirSink) Deliver(a Artifact) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(s.Dir, a.Filename)
	if err := os.WriteFile(path, a.Data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

// WriterSink streams the artifact bytes to W. Name is reported as the
// delivery location, "writer" when empty.
type WriterSink struct {
	W    io.Writer
	Name string
}

// Deliver writes the raw artifact data to the writer
func (s WriterSink) Deliver(a Artifact) (string, error) {
	if _, err := s.W.Write(a.Data); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	if s.Name == "" {
		return "writer", nil
	}
	return s.Name, nil
}
