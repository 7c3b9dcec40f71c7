package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestUpMigrations_SortedUpFilesOnly(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_meetings.up.sql", "001_init.up.sql", dropAllFile, consolidatedFile, "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "003_dir.up.sql"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := upMigrations(dir)
	if err != nil {
		t.Fatalf("upMigrations: %v", err)
	}
	if want := []string{"001_init", "002_meetings"}; !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestUpMigrations_MissingDir(t *testing.T) {
	if _, err := upMigrations(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestPendingAndStatus(t *testing.T) {
	names := []string{"001_init", "002_meetings", "003_users"}
	applied := map[string]bool{"001_init": true, "003_users": true}

	if got := pending(names, applied); !slices.Equal(got, []string{"002_meetings"}) {
		t.Errorf("unexpected pending %v", got)
	}

	var buf bytes.Buffer
	writeStatus(&buf, names, applied)
	want := "applied  001_init\npending  002_meetings\napplied  003_users\n"
	if buf.String() != want {
		t.Errorf("unexpected status output:\n%s", buf.String())
	}
}

func TestMigrator_ReadSQLMissingFile(t *testing.T) {
	m := &migrator{dir: t.TempDir()}
	if _, err := m.readSQL(dropAllFile); err == nil {
		t.Error("expected an error for a missing file")
	}
}
