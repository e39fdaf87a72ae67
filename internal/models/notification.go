package models

import "time"

// NotificationTypeSwapRequest тип уведомления о новом запросе на обмен.
const NotificationTypeSwapRequest = "swap_request"

// Notification уведомление пользователя о событии, связанном с его обменами.
// Записи только добавляются и помечаются прочитанными, но никогда не удаляются.
type Notification struct {
	ID        string    `json:"id"`        // Уникальный идентификатор уведомления
	UserID    string    `json:"userId"`    // Получатель уведомления
	Type      string    `json:"type"`      // Тип события, например swap_request
	Message   string    `json:"message"`   // Текст уведомления
	SwapID    string    `json:"swapId"`    // Обмен, к которому относится уведомление
	Read      bool      `json:"read"`      // Флаг прочтения
	CreatedAt time.Time `json:"createdAt"` // Время создания
}
