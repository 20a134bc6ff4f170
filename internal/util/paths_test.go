package util

import (
	"path/filepath"
	"testing"
)

func TestDataDirUsesXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	if got := DataDir("takvim"); got != filepath.Join(base, "takvim") {
		t.Fatalf("DataDir() = %q", got)
	}
}

func TestDataDirFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", home)
	if got, want := DataDir("takvim"), filepath.Join(home, ".local", "share", "takvim"); got != want {
		t.Fatalf("DataDir() = %q, want %q", got, want)
	}
}

func TestReportsDirDefaultsUnderDataDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	t.Setenv("XDG_DOCUMENTS_DIR", "")
	if got, want := ReportsDir("takvim"), filepath.Join(base, "takvim", "reports"); got != want {
		t.Fatalf("ReportsDir() = %q, want %q", got, want)
	}
}

func TestReportsDirUsesDocumentsWhenSet(t *testing.T) {
	docs := t.TempDir()
	t.Setenv("XDG_DOCUMENTS_DIR", docs)
	if got, want := ReportsDir("Takvim"), filepath.Join(docs, "takvim", "takvimet"); got != want {
		t.Fatalf("ReportsDir() = %q, want %q", got, want)
	}
}
