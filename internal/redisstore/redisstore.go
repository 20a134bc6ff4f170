// Package redisstore keeps profile settings in Redis so several kiosks can
// share one mosque profile.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/takvim/internal/database"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "takvim:"

// Store is a database.SettingsRepository backed by a Redis client.
type Store struct {
	rdb *redis.Client
}

var _ database.SettingsRepository = (*Store)(nil)

// Options configure the client connection.
type Options struct {
	Address     string
	Username    string
	Password    string
	DialTimeout time.Duration
}

// New creates a client for opts. It does not contact the server.
func New(opts Options) *Store {
	return &Store{rdb: redis.NewClient(&redis.Options{
		Addr:        opts.Address,
		Username:    opts.Username,
		Password:    opts.Password,
		DB:          0,
		DialTimeout: opts.DialTimeout,
	})}
}

// Ping checks the server is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping %s: %w", s.rdb.Options().Addr, err)
	}
	return nil
}

func (s *Store) GetSetting(ctx context.Context, key string) (string, bool, error) {
	value, err := s.rdb.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &database.OpError{Op: "get", Resource: "redis", Key: key, Err: err}
	}
	return value, true, nil
}

func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return &database.OpError{Op: "set", Resource: "redis", Key: key, Err: err}
	}
	return nil
}

func (s *Store) DeleteSetting(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, keyPrefix+key).Err(); err != nil {
		return &database.OpError{Op: "delete", Resource: "redis", Key: key, Err: err}
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.rdb.Close()
}
