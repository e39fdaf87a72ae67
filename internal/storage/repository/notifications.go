package repository

import (
	"context"

	"github.com/skillsync/skillsync/internal/models"
	"github.com/skillsync/skillsync/internal/storage"
)

// NotificationRepository типизированный доступ к коллекции уведомлений.
type NotificationRepository struct {
	kv storage.KV
}

// NewNotificationRepository создает репозиторий поверх указанного хранилища.
func NewNotificationRepository(kv storage.KV) *NotificationRepository {
	return &NotificationRepository{kv: kv}
}

// All возвращает все уведомления в порядке добавления.
func (r *NotificationRepository) All(ctx context.Context) ([]models.Notification, error) {
	return readCollection[models.Notification](ctx, r.kv, NotificationsKey)
}

// ListByUser возвращает уведомления получателя в порядке добавления.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	items, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	var result []models.Notification
	for _, n := range items {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	return result, nil
}

// Append добавляет новое уведомление в конец коллекции.
func (r *NotificationRepository) Append(ctx context.Context, notification models.Notification) error {
	items, err := r.All(ctx)
	if err != nil {
		return err
	}
	items = append(items, notification)
	return writeCollection(ctx, r.kv, NotificationsKey, items)
}

// MarkRead помечает уведомление прочитанным. Неизвестный идентификатор
// не считается ошибкой и не меняет коллекцию: клиенты отмечают уведомления
// из устаревших списков, и такой вызов должен оставаться безопасным.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	items, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i, n := range items {
		if n.ID == id {
			items[i].Read = true
			return writeCollection(ctx, r.kv, NotificationsKey, items)
		}
	}
	return nil
}
