// Package storage предоставляет абстракцию key-value хранилища, за которой
// живут три коллекции платформы: пользователи, обмены и уведомления.
//
// Хранилище отдает и принимает коллекции целиком как JSON-байты; типизированная
// работа с записями реализована в пакете repository. Такая схема повторяет
// раскладку исходной системы: один ключ — одна коллекция, запись заменяет
// значение полностью, побеждает последняя запись.
package storage

import "context"

// KV описывает минимальный контракт key-value хранилища.
//
// Get возвращает значение и признак его существования.
// Set записывает значение, полностью заменяя предыдущее.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
