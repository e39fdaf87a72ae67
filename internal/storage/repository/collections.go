package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skillsync/skillsync/internal/storage"
)

// Ключи коллекций в key-value хранилище.
const (
	UsersKey         = "skillsync_users"
	SwapsKey         = "skillsync_swaps"
	NotificationsKey = "skillsync_notifications"
)

// readCollection читает коллекцию целиком. Отсутствующий ключ дает пустой срез.
func readCollection[T any](ctx context.Context, kv storage.KV, key string) ([]T, error) {
	const op = "repository.readCollection"
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%s: key %s: %w", op, key, err)
	}
	return items, nil
}

// writeCollection сериализует коллекцию и заменяет значение ключа целиком.
func writeCollection[T any](ctx context.Context, kv storage.KV, key string, items []T) error {
	const op = "repository.writeCollection"
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%s: key %s: %w", op, key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
