package db

import (
	"path/filepath"
	"testing"
)

// Both backends must satisfy Store
var (
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

func TestSQLiteStore_GetMissing(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "quant.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	value, ok, err := store.Get("quantified-life")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Errorf("expected missing key, got %q", value)
	}
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "nested", "quant.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if err := store.Set("k", "first"); err != nil {
		t.Fatalf("first Set failed: %v", err)
	}
	if err := store.Set("k", "second"); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	value, ok, err := store.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if value != "second" {
		t.Errorf("expected 'second', got %q", value)
	}
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quant.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Set("k", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	value, ok, _ := reopened.Get("k")
	if !ok || value != "[]" {
		t.Errorf("expected persisted '[]', got %q (ok=%v)", value, ok)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	if _, ok, _ := store.Get("k"); ok {
		t.Error("new store should be empty")
	}

	store.Set("k", "v")
	if value, ok, _ := store.Get("k"); !ok || value != "v" {
		t.Errorf("expected 'v', got %q (ok=%v)", value, ok)
	}
}
