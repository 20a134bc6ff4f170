package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir is where the kiosk keeps its log file and sqlite settings database:
// $XDG_DATA_HOME/<app>, else ~/.local/share/<app>, else ./<app>.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ReportsDir holds exported monthly timetables. A kiosk usually has no desktop
// session, so it sits next to the data unless XDG_DOCUMENTS_DIR names a folder.
func ReportsDir(app string) string {
	if docs := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); docs != "" {
		return filepath.Join(docs, strings.ToLower(app), "takvimet")
	}
	return filepath.Join(DataDir(app), "reports")
}
