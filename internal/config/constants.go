package config

import "time"

// Timer defaults.
const (
	DefaultWallpaperRotation = 12 * time.Hour
	DefaultContentRotation   = 55 * time.Second
	DefaultClockUpdate       = time.Second
)

// Resource defaults. Paths without a scheme are read from the resource directory.
const (
	DefaultPrayerTimesURL = "/prayer_times.csv"
	DefaultQuotesURL      = "/quotes.csv"
	DefaultResourceDir    = "./public"
	DefaultTimezone       = "Europe/Paris"
	FetchTimeout          = 10 * time.Second
)

// Countdown display styles.
const (
	CountdownMinutes = "minutes"
	CountdownHM      = "hm"
	CountdownHMS     = "hms"
)

// Profile storage backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Database/application settings.
const (
	AppName          = "takvim"
	DBFileName       = "takvim.db"
	LogFileName      = "takvim.log"
	ProfileKey       = "mosqueFormData"
	DefaultRedisAddr = "localhost:6379"
	MaxPINAttempts   = 5
)
