// Package list реализует HTTP-обработчик списка обменов пользователя.
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

// Handler обрабатывает HTTP-запросы списка обменов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка обменов.
type Service interface {
	ListByUser(ctx context.Context, userID string) ([]models.Swap, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Обмены пользователя
// @Description Возвращает все обмены, где пользователь — инициатор или получатель, в порядке создания.
// @Tags Swaps
// @Produce  json
// @Success 200 {object} map[string]any "Список обменов"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /swaps [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.swap.list"
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

	swaps, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		log.Error("failed to list swaps", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list swaps"))
		return
	}
	if swaps == nil {
		swaps = []models.Swap{}
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"swaps": swaps,
	}))
}
