package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStorage реализация KV поверх postgres: одна таблица kv
// с jsonb-значением на коллекцию.
type PostgresStorage struct {
	Db *pgxpool.Pool
}

// NewPostgres подключается к postgres и создает таблицу kv, если её нет.
func NewPostgres(ctx context.Context, storageConnectionString string) (*PostgresStorage, error) {
	const op = "storage.NewPostgres"

	pool, err := pgxpool.New(ctx, storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := initializeSchema(ctx, pool); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &PostgresStorage{Db: pool}, nil
}

func initializeSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS kv(
            key TEXT PRIMARY KEY,
            value JSONB NOT NULL,
            updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        );
    `)
	if err != nil {
		return fmt.Errorf("failed to create kv table: %w", err)
	}
	return nil
}

// Get возвращает значение ключа. Отсутствие строки не является ошибкой.
func (s *PostgresStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const op = "storage.postgres.Get"
	var value []byte
	err := s.Db.QueryRow(ctx, `SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return value, true, nil
}

// Set записывает значение, заменяя предыдущее целиком.
func (s *PostgresStorage) Set(ctx context.Context, key string, value []byte) error {
	const op = "storage.postgres.Set"
	_, err := s.Db.Exec(ctx, `
        INSERT INTO kv (key, value, updated_at)
        VALUES ($1, $2, CURRENT_TIMESTAMP)
        ON CONFLICT (key)
        DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP;
    `, key, value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает пул соединений.
func (s *PostgresStorage) Close() {
	s.Db.Close()
}
