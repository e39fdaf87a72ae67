// Package stats реализует HTTP-обработчик сводной статистики для администратора.
package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/skillsync/skillsync/internal/http/response"
	"github.com/skillsync/skillsync/internal/lib/sl"
	"github.com/skillsync/skillsync/internal/models"
)

// Handler обрабатывает HTTP-запросы статистики.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс сбора статистики.
type Service interface {
	Collect(ctx context.Context) (*models.AdminStats, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Статистика платформы
// @Description Возвращает счетчики пользователей и обменов, список пользователей и последние обмены. Только для администраторов.
// @Tags Admin
// @Produce  json
// @Success 200 {object} map[string]any "Сводная статистика"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /admin/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.stats"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	result, err := h.service.Collect(r.Context())
	if err != nil {
		log.Error("failed to collect stats", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not collect stats"))
		return
	}

	render.JSON(w, r, response.OKWithData(result))
}
