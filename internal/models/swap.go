package models

import "time"

// Статусы обмена. Начальный статус — pending, терминальные — rejected и completed.
const (
	SwapStatusPending   = "pending"
	SwapStatusAccepted  = "accepted"
	SwapStatusRejected  = "rejected"
	SwapStatusCompleted = "completed"
)

// Swap представляет запрос на обмен навыками между двумя пользователями.
// Списки навыков — снимки на момент создания запроса, а не живые ссылки
// на профили участников.
type Swap struct {
	ID              string              `json:"id"`                 // Уникальный идентификатор обмена
	RequesterID     string              `json:"requesterId"`        // Инициатор обмена
	ReceiverID      string              `json:"receiverId"`         // Получатель запроса
	RequesterSkills []string            `json:"requesterSkills"`    // Навыки инициатора на момент запроса
	ReceiverSkills  []string            `json:"receiverSkills"`     // Навыки получателя на момент запроса
	Status          string              `json:"status"`             // Текущий статус обмена
	CreatedAt       time.Time           `json:"createdAt"`          // Время создания запроса
	UpdatedAt       *time.Time          `json:"updatedAt,omitempty"` // Время последней смены статуса
	Feedback        map[string]Feedback `json:"feedback,omitempty"` // Отзывы участников по их userId
}

// Feedback отзыв участника о завершенном обмене.
type Feedback struct {
	Rating  int    `json:"rating"`            // Оценка от 1 до 5
	Comment string `json:"comment,omitempty"` // Текстовый комментарий
}

// CreateSwapRequest используется для приёма данных нового обмена из JSON-запроса.
// Инициатор берется из контекста аутентификации, а не из тела запроса.
type CreateSwapRequest struct {
	ReceiverID      string   `json:"receiverId" validate:"required"`
	RequesterSkills []string `json:"requesterSkills"`
	ReceiverSkills  []string `json:"receiverSkills"`
}

// UpdateSwapStatusRequest запрос на смену статуса обмена.
type UpdateSwapStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected completed"`
}

// FeedbackRequest запрос на прикрепление отзыва к обмену.
type FeedbackRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// SwapRequestEvent сообщение, публикуемое в брокер при создании обмена.
// Его потребляет воркер отправки почтовых уведомлений.
type SwapRequestEvent struct {
	SwapID         string `json:"swapId"`
	RequesterName  string `json:"requesterName"`
	ReceiverName   string `json:"receiverName"`
	ReceiverEmail  string `json:"receiverEmail"`
	ReceiverUserID string `json:"receiverUserId"`
}
