package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/akyairhashvil/takvim/internal/util"
	"github.com/joho/godotenv"
)

// Config holds environment-based settings.
type Config struct {
	WallpaperRotation time.Duration
	ContentRotation   time.Duration
	ClockUpdate       time.Duration
	DebugLogging      bool

	PrayerTimesURL string
	QuotesURL      string
	ResourceDir    string

	Timezone       string
	Location       *time.Location
	CountdownStyle string
	QuoteOrder     string

	ProfileBackend string
	DBPath         string
	RedisAddress   string
	RedisUsername  string
	RedisPassword  string

	SettingsPINHash string
}

// Load reads configuration from environment variables, after merging a .env file
// from the working directory when one exists. Variables already set win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		PrayerTimesURL:  get("KIOSK_PRAYER_TIMES_CSV_URL", DefaultPrayerTimesURL),
		QuotesURL:       get("KIOSK_QUOTES_CSV_URL", DefaultQuotesURL),
		ResourceDir:     get("KIOSK_RESOURCE_DIR", DefaultResourceDir),
		Timezone:        get("KIOSK_TIMEZONE", DefaultTimezone),
		CountdownStyle:  get("KIOSK_COUNTDOWN_STYLE", CountdownHM),
		QuoteOrder:      get("KIOSK_QUOTE_ORDER", "sequential"),
		ProfileBackend:  get("KIOSK_PROFILE_BACKEND", BackendSQLite),
		DBPath:          get("KIOSK_DB_PATH", filepath.Join(util.DataDir(AppName), DBFileName)),
		RedisAddress:    get("KIOSK_REDIS_ADDRESS", DefaultRedisAddr),
		RedisUsername:   get("KIOSK_REDIS_USERNAME", ""),
		RedisPassword:   get("KIOSK_REDIS_PASSWORD", ""),
		SettingsPINHash: get("KIOSK_SETTINGS_PIN_HASH", ""),
		DebugLogging:    get("KIOSK_ENABLE_DEBUG_LOGGING", "false") == "true",
	}

	var err error
	if cfg.WallpaperRotation, err = parseInterval(get("KIOSK_WALLPAPER_ROTATION_INTERVAL", ""), DefaultWallpaperRotation); err != nil {
		return nil, fmt.Errorf("KIOSK_WALLPAPER_ROTATION_INTERVAL: %w", err)
	}
	if cfg.ContentRotation, err = parseInterval(get("KIOSK_QUOTE_ROTATION_INTERVAL", ""), DefaultContentRotation); err != nil {
		return nil, fmt.Errorf("KIOSK_QUOTE_ROTATION_INTERVAL: %w", err)
	}
	if cfg.ClockUpdate, err = parseInterval(get("KIOSK_CLOCK_UPDATE_INTERVAL", ""), DefaultClockUpdate); err != nil {
		return nil, fmt.Errorf("KIOSK_CLOCK_UPDATE_INTERVAL: %w", err)
	}

	if cfg.Location, err = time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("KIOSK_TIMEZONE: %w", err)
	}

	switch cfg.CountdownStyle {
	case CountdownMinutes, CountdownHM, CountdownHMS:
	default:
		return nil, fmt.Errorf("KIOSK_COUNTDOWN_STYLE: unknown style %q", cfg.CountdownStyle)
	}
	switch cfg.ProfileBackend {
	case BackendSQLite, BackendRedis:
	default:
		return nil, fmt.Errorf("KIOSK_PROFILE_BACKEND: unknown backend %q", cfg.ProfileBackend)
	}
	return cfg, nil
}

// parseInterval accepts a Go duration ("55s") or a bare number of milliseconds.
func parseInterval(raw string, def time.Duration) (time.Duration, error) {
	if raw == "" {
		return def, nil
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if ms <= 0 {
			return 0, fmt.Errorf("interval must be positive, got %d", ms)
		}
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("interval must be positive, got %s", d)
	}
	return d, nil
}
