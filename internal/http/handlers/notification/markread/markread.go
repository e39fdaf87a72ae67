// Package markread реализует HTTP-обработчик отметки уведомления прочитанным.
//
// Неизвестный идентификатор не считается ошибкой: клиент мог работать
// с устаревшим списком, и повторная отметка должна быть безопасной.
package markread

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/skillsync/skillsync/internal/http/response"
	"github.com/skillsync/skillsync/internal/lib/sl"
)

// Handler обрабатывает HTTP-запросы отметки о прочтении.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики отметки уведомлений.
type Service interface {
	MarkRead(ctx context.Context, id string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Отметить уведомление прочитанным
// @Description Помечает уведомление прочитанным. Неизвестный идентификатор игнорируется.
// @Tags Notifications
// @Produce  json
// @Param id path string true "Идентификатор уведомления"
// @Success 200 {object} response.Response "Уведомление отмечено"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /notifications/{id}/read [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.notification.markread"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	if err := h.service.MarkRead(r.Context(), id); err != nil {
		log.Error("failed to mark notification as read", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not mark notification as read"))
		return
	}

	render.JSON(w, r, response.OK())
}
