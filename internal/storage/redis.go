package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/skillsync/skillsync/internal/config"
)

// RedisStorage основная реализация KV поверх redis.
type RedisStorage struct {
	Db *redis.Client
}

// NewRedis подключается к redis и проверяет соединение.
func NewRedis(ctx context.Context, cfg config.RedisConnection) (*RedisStorage, error) {
	const op = "storage.NewRedis"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisStorage{Db: db}, nil
}

// Get возвращает значение ключа. Отсутствие ключа не является ошибкой.
func (s *RedisStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const op = "storage.redis.Get"
	val, err := s.Db.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return val, true, nil
}

// Set записывает значение без срока жизни: коллекции живут постоянно.
func (s *RedisStorage) Set(ctx context.Context, key string, value []byte) error {
	const op = "storage.redis.Set"
	if err := s.Db.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение с redis.
func (s *RedisStorage) Close() error {
	return s.Db.Close()
}
