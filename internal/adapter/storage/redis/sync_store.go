package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"karla-connector/internal/core/domain"
	"karla-connector/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

var (
	_ ports.SyncStatusStore = (*SyncStatusStore)(nil)
	_ ports.CooldownStore   = (*CooldownStore)(nil)
)

// SyncStatusStore keeps the last full sync state under a single key.
// Writers are last-writer-wins.
type SyncStatusStore struct {
	client *goredis.Client
	key    string
}

func NewSyncStatusStore(client *goredis.Client, prefix string) *SyncStatusStore {
	return &SyncStatusStore{client: client, key: prefix + ":status"}
}

func (s *SyncStatusStore) Get(ctx context.Context) (domain.SyncStatus, error) {
	v, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get sync status: %w", err)
	}
	return domain.SyncStatus(v), nil
}

func (s *SyncStatusStore) Set(ctx context.Context, status domain.SyncStatus) error {
	if err := s.client.Set(ctx, s.key, string(status), 0).Err(); err != nil {
		return fmt.Errorf("redis set sync status: %w", err)
	}
	return nil
}

// CooldownStore gates full syncs with SET NX and a TTL.
type CooldownStore struct {
	client *goredis.Client
	key    string
}

func NewCooldownStore(client *goredis.Client, prefix string) *CooldownStore {
	return &CooldownStore{client: client, key: prefix + ":cooldown"}
}

// Acquire returns false while a previous cooldown is still active.
func (s *CooldownStore) Acquire(ctx context.Context, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		return true, nil
	}
	result, err := s.client.SetArgs(ctx, s.key, time.Now().Unix(), goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis cooldown acquire: %w", err)
	}
	return result == "OK", nil
}
