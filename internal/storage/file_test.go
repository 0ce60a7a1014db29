package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, ok, err := store.Get(KeySessions); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}

	if err := store.Set(KeySessions, `[{"id":"session-1"}]`); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.Get(KeySessions)
	if err != nil || !ok {
		t.Fatalf("expected value, ok=%v err=%v", ok, err)
	}
	if got != `[{"id":"session-1"}]` {
		t.Errorf("got %q", got)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Set(KeySelectedSession, "session-1"); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(KeySelectedSession, "session-2"); err != nil {
		t.Fatal(err)
	}

	got, _, _ := store.Get(KeySelectedSession)
	if got != "session-2" {
		t.Errorf("got %q, want session-2", got)
	}
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Set(KeySelectedSession, "session-1"); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(KeySelectedSession); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get(KeySelectedSession); ok {
		t.Error("expected key gone after delete")
	}

	// Deleting a missing key is not an error.
	if err := store.Delete("never-set"); err != nil {
		t.Errorf("delete of missing key: %v", err)
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Set(KeySessions, "persisted"); err != nil {
		t.Fatal(err)
	}

	second, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	got, ok, err := second.Get(KeySessions)
	if err != nil || !ok || got != "persisted" {
		t.Fatalf("got %q ok=%v err=%v", got, ok, err)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set(KeySessions, "value"); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}
