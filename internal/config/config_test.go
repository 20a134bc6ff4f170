package config

import (
	"testing"
	"time"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.WallpaperRotation != 12*time.Hour {
		t.Fatalf("WallpaperRotation = %s", cfg.WallpaperRotation)
	}
	if cfg.ContentRotation != 55*time.Second {
		t.Fatalf("ContentRotation = %s", cfg.ContentRotation)
	}
	if cfg.ClockUpdate != time.Second {
		t.Fatalf("ClockUpdate = %s", cfg.ClockUpdate)
	}
	if cfg.PrayerTimesURL != "/prayer_times.csv" || cfg.QuotesURL != "/quotes.csv" {
		t.Fatalf("unexpected resource defaults: %q %q", cfg.PrayerTimesURL, cfg.QuotesURL)
	}
	if cfg.DebugLogging {
		t.Fatalf("debug logging should default to off")
	}
	if cfg.Location == nil || cfg.Location.String() != "Europe/Paris" {
		t.Fatalf("Location = %v, want Europe/Paris", cfg.Location)
	}
	if cfg.ProfileBackend != BackendSQLite {
		t.Fatalf("ProfileBackend = %q", cfg.ProfileBackend)
	}
	if cfg.DBPath == "" {
		t.Fatalf("DBPath should have a default")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"KIOSK_WALLPAPER_ROTATION_INTERVAL": "43200000",
		"KIOSK_QUOTE_ROTATION_INTERVAL":     "15s",
		"KIOSK_CLOCK_UPDATE_INTERVAL":       "500",
		"KIOSK_ENABLE_DEBUG_LOGGING":        "true",
		"KIOSK_PRAYER_TIMES_CSV_URL":        "https://example.org/times.csv",
		"KIOSK_TIMEZONE":                    "Europe/Tirane",
		"KIOSK_COUNTDOWN_STYLE":             "hms",
		"KIOSK_PROFILE_BACKEND":             "redis",
	}))
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.WallpaperRotation != 12*time.Hour {
		t.Fatalf("WallpaperRotation = %s, want 12h from milliseconds", cfg.WallpaperRotation)
	}
	if cfg.ContentRotation != 15*time.Second {
		t.Fatalf("ContentRotation = %s", cfg.ContentRotation)
	}
	if cfg.ClockUpdate != 500*time.Millisecond {
		t.Fatalf("ClockUpdate = %s", cfg.ClockUpdate)
	}
	if !cfg.DebugLogging {
		t.Fatalf("expected debug logging on")
	}
	if cfg.PrayerTimesURL != "https://example.org/times.csv" {
		t.Fatalf("PrayerTimesURL = %q", cfg.PrayerTimesURL)
	}
	if cfg.Location.String() != "Europe/Tirane" {
		t.Fatalf("Location = %v", cfg.Location)
	}
	if cfg.CountdownStyle != CountdownHMS || cfg.ProfileBackend != BackendRedis {
		t.Fatalf("unexpected style/backend: %q %q", cfg.CountdownStyle, cfg.ProfileBackend)
	}
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"bad interval", "KIOSK_QUOTE_ROTATION_INTERVAL", "soon"},
		{"zero interval", "KIOSK_CLOCK_UPDATE_INTERVAL", "0"},
		{"negative interval", "KIOSK_WALLPAPER_ROTATION_INTERVAL", "-5s"},
		{"bad timezone", "KIOSK_TIMEZONE", "Mars/Olympus"},
		{"bad style", "KIOSK_COUNTDOWN_STYLE", "days"},
		{"bad backend", "KIOSK_PROFILE_BACKEND", "etcd"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromEnv(envMap(map[string]string{tc.key: tc.val})); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.val)
			}
		})
	}
}
