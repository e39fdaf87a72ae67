// Package list реализует HTTP-обработчик списка уведомлений пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/skillsync/skillsync/internal/http/middlewarectx"
	"github.com/skillsync/skillsync/internal/http/response"
	"github.com/skillsync/skillsync/internal/lib/sl"
	"github.com/skillsync/skillsync/internal/models"
)

// Handler обрабатывает HTTP-запросы списка уведомлений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики уведомлений.
type Service interface {
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Уведомления пользователя
// @Description Возвращает уведомления вызывающего, самые свежие первыми.
// @Tags Notifications
// @Produce  json
// @Success 200 {object} map[string]any "Список уведомлений"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /notifications [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.notification.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserID).(string)
	if !ok || userID == "" {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	items, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		log.Error("failed to list notifications", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list notifications"))
		return
	}
	if items == nil {
		items = []models.Notification{}
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"notifications": items,
	}))
}
