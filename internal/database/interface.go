package database

import "context"

// SettingsRepository is the key/value surface shared by every profile backend.
//
//go:generate mockgen -source=interface.go -destination=../tui/mock_settings_test.go -package=tui
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

var _ SettingsRepository = (*Database)(nil)
