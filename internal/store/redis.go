package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/codex-k8s/telegram-support-bot/internal/i18n"
)

const connectTimeout = 5 * time.Second

// Redis is a Store backed by a single Redis instance. Values are plain
// tag strings with no expiration; preferences persist until overwritten.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("unable to connect to redis: %w", err)
	}
	return &Redis{client: client}, nil
}

// Language implements Store. A missing key and an unsupported stored
// value both resolve to the zero Tag without an error.
func (r *Redis) Language(ctx context.Context, chat ChatID) (i18n.Tag, error) {
	value, err := r.client.Get(ctx, chat.Key()).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get language for chat %d: %w", chat, err)
	}
	tag := i18n.Tag(value)
	if !tag.Valid() {
		return "", nil
	}
	return tag, nil
}

// SetLanguage implements Store.
func (r *Redis) SetLanguage(ctx context.Context, chat ChatID, tag i18n.Tag) error {
	if err := r.client.Set(ctx, chat.Key(), string(tag), 0).Err(); err != nil {
		return fmt.Errorf("set language for chat %d: %w", chat, err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
