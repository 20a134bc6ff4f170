// Package profile persists the mosque profile as one JSON blob under a fixed key.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akyairhashvil/takvim/internal/config"
	"github.com/akyairhashvil/takvim/internal/database"
	"github.com/akyairhashvil/takvim/internal/models"
	"github.com/rs/zerolog/log"
)

// ErrCorrupt marks a stored blob that is not valid profile JSON.
var ErrCorrupt = errors.New("stored profile is corrupt")

// Decode parses a stored blob.
func Decode(blob string) (models.MosqueProfile, error) {
	var p models.MosqueProfile
	if err := json.Unmarshal([]byte(blob), &p); err != nil {
		return models.MosqueProfile{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return p, nil
}

// Encode serialises the whole profile.
func Encode(p models.MosqueProfile) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Load reads the profile. Absent, unreadable or corrupt data all yield empty
// defaults; found is true only when a valid profile was stored.
func Load(ctx context.Context, repo database.SettingsRepository) (p models.MosqueProfile, found bool) {
	blob, ok, err := repo.GetSetting(ctx, config.ProfileKey)
	if err != nil {
		log.Error().Err(err).Msg("[profile] read failed, using defaults")
		return models.MosqueProfile{}, false
	}
	if !ok {
		log.Debug().Msg("[profile] no stored profile")
		return models.MosqueProfile{}, false
	}
	p, err = Decode(blob)
	if err != nil {
		log.Error().Err(err).Msg("[profile] corrupt data, using defaults")
		return models.MosqueProfile{}, false
	}
	return p, true
}

// Save overwrites the stored profile wholesale.
func Save(ctx context.Context, repo database.SettingsRepository, p models.MosqueProfile) error {
	blob, err := Encode(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := repo.SetSetting(ctx, config.ProfileKey, blob); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// Delete removes the stored profile.
func Delete(ctx context.Context, repo database.SettingsRepository) error {
	if err := repo.DeleteSetting(ctx, config.ProfileKey); err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	return nil
}
