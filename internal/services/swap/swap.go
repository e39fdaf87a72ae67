// Package swap содержит бизнес-логику жизненного цикла обменов:
// создание запроса, смену статусов и прикрепление отзывов.
//
// Создание обмена имеет неразрывный побочный эффект — уведомление получателю.
// Обе записи идут в хранилище последовательно и не транзакционны: сбой между
// ними оставляет обмен без уведомления. Для этого сервиса с единственным
// писателем такое поведение принято и задокументировано.
package swap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync/internal/lib/rabbitmq"
	"github.com/skillsync/skillsync/internal/lib/sl"
	"github.com/skillsync/skillsync/internal/models"
)

// Ошибки бизнес-правил обменов.
var (
	// ErrInvalidOperation запрос нарушает правила создания обмена,
	// например обмен с самим собой.
	ErrInvalidOperation = errors.New("invalid swap operation")
	// ErrInvalidTransition запрошенная смена статуса не разрешена таблицей переходов.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// SwapRepository определяет методы для работы с обменами в хранилище.
type SwapRepository interface {
	GetByID(ctx context.Context, id string) (*models.Swap, error)
	ListByUser(ctx context.Context, userID string) ([]models.Swap, error)
	Append(ctx context.Context, swap models.Swap) error
	Update(ctx context.Context, swap models.Swap) error
}

// UserGetter возвращает пользователя по идентификатору.
type UserGetter interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Notifier создает уведомление получателю.
type Notifier interface {
	Notify(ctx context.Context, userID, typ, message, swapID string) (*models.Notification, error)
}

// EventPublisher публикует событие платформы в брокер.
type EventPublisher interface {
	Publish(routingKey string, message any) error
}

// Service реализует жизненный цикл обменов.
type Service struct {
	swaps      SwapRepository
	users      UserGetter
	notifier   Notifier
	publisher  EventPublisher // nil — события не публикуются
	permissive bool
	log        *slog.Logger
}

// New создает новый экземпляр Service. publisher может быть nil,
// permissive отключает строгую таблицу переходов статусов.
func New(swaps SwapRepository, users UserGetter, notifier Notifier, publisher EventPublisher, permissive bool, log *slog.Logger) *Service {
	return &Service{
		swaps:      swaps,
		users:      users,
		notifier:   notifier,
		publisher:  publisher,
		permissive: permissive,
		log:        log,
	}
}

// Create создает запрос на обмен со статусом pending, уведомляет получателя
// и публикует событие для воркера почтовых уведомлений.
//
// Обмен с самим собой отклоняется с ErrInvalidOperation; оба участника
// должны существовать. Списки навыков — снимки на момент запроса.
func (s *Service) Create(ctx context.Context, requesterID string, req models.CreateSwapRequest) (*models.Swap, error) {
	const op = "swap.Create"

	if requesterID == req.ReceiverID {
		return nil, fmt.Errorf("%w: requester and receiver must differ", ErrInvalidOperation)
	}

	requester, err := s.users.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	receiver, err := s.users.GetByID(ctx, req.ReceiverID)
	if err != nil {
		return nil, err
	}

	swap := models.Swap{
		ID:              uuid.NewString(),
		RequesterID:     requesterID,
		ReceiverID:      req.ReceiverID,
		RequesterSkills: req.RequesterSkills,
		ReceiverSkills:  req.ReceiverSkills,
		Status:          models.SwapStatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	if swap.RequesterSkills == nil {
		swap.RequesterSkills = []string{}
	}
	if swap.ReceiverSkills == nil {
		swap.ReceiverSkills = []string{}
	}

	if err := s.swaps.Append(ctx, swap); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created swap request",
		slog.String("id", swap.ID),
		slog.String("requesterId", requesterID),
		slog.String("receiverId", req.ReceiverID))

	// Вторая запись не транзакционна с первой: сбой здесь оставляет обмен
	// без уведомления.
	if _, err := s.notifier.Notify(ctx, req.ReceiverID, models.NotificationTypeSwapRequest,
		"You have a new swap request!", swap.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.publisher != nil {
		event := models.SwapRequestEvent{
			SwapID:         swap.ID,
			RequesterName:  requester.Name,
			ReceiverName:   receiver.Name,
			ReceiverEmail:  receiver.Email,
			ReceiverUserID: receiver.ID,
		}
		if err := s.publisher.Publish(rabbitmq.SwapRequestRoutingKey, event); err != nil {
			// Почтовое уведомление вторично, создание обмена не откатывается.
			s.log.Warn("failed to publish swap request event", sl.Err(err))
		}
	}

	return &swap, nil
}

// ListByUser возвращает все обмены пользователя в порядке добавления,
// без фильтрации по статусу.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]models.Swap, error) {
	return s.swaps.ListByUser(ctx, userID)
}

// allowedTransitions таблица разрешенных переходов статусов:
// pending → accepted|rejected, accepted → completed.
var allowedTransitions = map[string][]string{
	models.SwapStatusPending:  {models.SwapStatusAccepted, models.SwapStatusRejected},
	models.SwapStatusAccepted: {models.SwapStatusCompleted},
}

// SetStatus переводит обмен в новый статус и проставляет updatedAt.
// В строгом режиме переход сверяется с таблицей; в permissive-режиме
// статус меняется свободно, как в первой версии сервиса.
func (s *Service) SetStatus(ctx context.Context, swapID, newStatus string) (*models.Swap, error) {
	swap, err := s.swaps.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}

	if !s.permissive && !transitionAllowed(swap.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, swap.Status, newStatus)
	}

	now := time.Now().UTC()
	swap.Status = newStatus
	swap.UpdatedAt = &now

	if err := s.swaps.Update(ctx, *swap); err != nil {
		return nil, err
	}
	s.log.Info("updated swap status",
		slog.String("id", swapID),
		slog.String("status", newStatus))
	return swap, nil
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// AttachFeedback сохраняет отзыв участника об обмене, создавая карту отзывов
// при первом обращении. Повторный отзыв того же участника заменяет предыдущий.
func (s *Service) AttachFeedback(ctx context.Context, swapID, userID string, feedback models.Feedback) (*models.Swap, error) {
	swap, err := s.swaps.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}

	if swap.Feedback == nil {
		swap.Feedback = make(map[string]models.Feedback)
	}
	swap.Feedback[userID] = feedback

	if err := s.swaps.Update(ctx, *swap); err != nil {
		return nil, err
	}
	s.log.Info("attached feedback",
		slog.String("swapId", swapID),
		slog.String("userId", userID))
	return swap, nil
}
