package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound возвращается, когда ключ отсутствует или истек
var ErrNotFound = errors.New("cache: key not found")

// Store разделяемое key-value хранилище с TTL поверх Redis.
// Через него живут OTP-коды и счетчики rate limit: несколько инстансов
// сервиса видят одно и то же состояние, в отличие от process-local map.
type Store struct {
	client *redis.Client
}

// NewStore создает хранилище и проверяет соединение
func NewStore(ctx context.Context, addr, password string, db int) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("cache: failed to ping redis at %s: %w", addr, err)
	}

	return &Store{client: client}, nil
}

// Close закрывает соединение с Redis
func (s *Store) Close() error {
	return s.client.Close()
}

// SetWithTTL сохраняет значение с временем жизни
func (s *Store) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}

// Get возвращает значение ключа или ErrNotFound
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("cache: get %s: %w", key, err)
	}
	return value, nil
}

// Delete удаляет ключ
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache: delete %s: %w", key, err)
	}
	return nil
}

// Increment атомарно инкрементирует счетчик.
// TTL выставляется только при создании ключа, чтобы окно не продлевалось.
func (s *Store) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("cache: incr %s: %w", key, err)
	}

	if count == 1 {
		if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
			return count, fmt.Errorf("cache: expire %s: %w", key, err)
		}
	}

	return count, nil
}
