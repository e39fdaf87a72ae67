// Package notification содержит бизнес-логику уведомлений: создание,
// выдачу списка получателю и отметку о прочтении.
package notification

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync/internal/models"
)

// NotificationRepository определяет методы для работы с уведомлениями в хранилище.
type NotificationRepository interface {
	// ListByUser возвращает уведомления получателя в порядке добавления.
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	// Append добавляет уведомление в конец коллекции.
	Append(ctx context.Context, notification models.Notification) error
	// MarkRead помечает уведомление прочитанным; неизвестный id — no-op.
	MarkRead(ctx context.Context, id string) error
}

// Service реализует операции над уведомлениями.
type Service struct {
	repo NotificationRepository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo NotificationRepository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Notify добавляет уведомление получателю. Операция append-only и всегда
// успешна при доступном хранилище.
func (s *Service) Notify(ctx context.Context, userID, typ, message, swapID string) (*models.Notification, error) {
	n := models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		Message:   message,
		SwapID:    swapID,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, n); err != nil {
		return nil, err
	}
	s.log.Info("created notification",
		slog.String("id", n.ID),
		slog.String("type", typ),
		slog.String("userId", userID))
	return &n, nil
}

// ListByUser возвращает уведомления получателя, отсортированные по времени
// создания по убыванию — самые свежие первыми.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// MarkRead помечает уведомление прочитанным. Неизвестный идентификатор
// молча игнорируется: клиенты работают со снимками списка, которые могли устареть.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}
