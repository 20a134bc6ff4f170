package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/takvim/internal/config"
	"github.com/akyairhashvil/takvim/internal/database"
	"github.com/akyairhashvil/takvim/internal/loader"
	"github.com/akyairhashvil/takvim/internal/redisstore"
	"github.com/akyairhashvil/takvim/internal/tui"
	"github.com/akyairhashvil/takvim/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logPath := filepath.Join(util.DataDir(config.AppName), config.LogFileName)
	logFile, err := util.SetupLogging(logPath, cfg.DebugLogging)
	if err != nil {
		return err
	}
	defer logFile.Close()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("takvim needs an interactive terminal")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	log.Info().
		Str("backend", cfg.ProfileBackend).
		Str("timezone", cfg.Timezone).
		Str("prayer_times", cfg.PrayerTimesURL).
		Msg("[main] starting")

	model := tui.NewModel(ctx, tui.Options{
		Config:     cfg,
		Loader:     loader.New(cfg),
		Store:      store,
		ReportsDir: util.ReportsDir(config.AppName),
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running display: %w", err)
	}
	return nil
}

// openStore opens the configured profile backend. An unreachable Redis server
// falls back to the local sqlite file so the display still starts.
func openStore(ctx context.Context, cfg *config.Config) (database.SettingsRepository, func(), error) {
	if cfg.ProfileBackend == config.BackendRedis {
		rs := redisstore.New(redisstore.Options{
			Address:     cfg.RedisAddress,
			Username:    cfg.RedisUsername,
			Password:    cfg.RedisPassword,
			DialTimeout: 2 * time.Second,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := rs.Ping(pingCtx)
		cancel()
		if err == nil {
			return rs, func() { util.LogError("[main] closing redis", rs.Close()) }, nil
		}
		log.Error().Err(err).Msg("[main] redis unavailable, using sqlite profile store")
		util.LogError("[main] closing redis", rs.Close())
	}

	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { util.LogError("[main] closing database", db.Close()) }, nil
}
