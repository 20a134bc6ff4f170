package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/takvim/internal/config"
	"github.com/akyairhashvil/takvim/internal/database"
)

func TestOpenStoreSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "takvim.db")
	cfg := &config.Config{ProfileBackend: config.BackendSQLite, DBPath: dbPath}

	store, closeStore, err := openStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("openStore failed: %v", err)
	}
	defer closeStore()
	if _, ok := store.(*database.Database); !ok {
		t.Fatalf("expected sqlite store, got %T", store)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected database file: %v", err)
	}
}

func TestOpenStoreRedisFallsBackToSQLite(t *testing.T) {
	cfg := &config.Config{
		ProfileBackend: config.BackendRedis,
		RedisAddress:   "127.0.0.1:1",
		DBPath:         filepath.Join(t.TempDir(), "takvim.db"),
	}
	store, closeStore, err := openStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("openStore failed: %v", err)
	}
	defer closeStore()
	if _, ok := store.(*database.Database); !ok {
		t.Fatalf("expected sqlite fallback, got %T", store)
	}
}
