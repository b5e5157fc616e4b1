package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"mostface/internal/models"
)

// RedisAdapter persists session slices as JSON values in Redis.
type RedisAdapter struct {
	inner *redis.Client
	log   *logrus.Entry
}

// NewRedisAdapter connects and pings the Redis backend.
func NewRedisAdapter(addr, password string, log *logrus.Entry) (*RedisAdapter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisAdapter{inner: client, log: log}, nil
}

// Load reads both persisted keys. Missing keys and corrupted values degrade
// to an absent slice rather than an error.
func (a *RedisAdapter) Load(ctx context.Context) (*Snapshot, error) {
	currentRaw, err := a.getOrNil(ctx, CurrentUserKey)
	if err != nil {
		return nil, err
	}
	directoryRaw, err := a.getOrNil(ctx, UserDirectoryKey)
	if err != nil {
		return nil, err
	}
	return decodeSnapshot(currentRaw, directoryRaw, a.log), nil
}

// SaveCurrentUser writes the session owner; nil deletes the key (logout).
func (a *RedisAdapter) SaveCurrentUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return a.inner.Del(ctx, CurrentUserKey).Err()
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return a.inner.Set(ctx, CurrentUserKey, raw, 0).Err()
}

// SaveDirectory writes the full user directory.
func (a *RedisAdapter) SaveDirectory(ctx context.Context, users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return a.inner.Set(ctx, UserDirectoryKey, raw, 0).Err()
}

// Close releases the client.
func (a *RedisAdapter) Close() error {
	return a.inner.Close()
}

func (a *RedisAdapter) getOrNil(ctx context.Context, key string) ([]byte, error) {
	raw, err := a.inner.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}
