// Package status реализует HTTP-обработчик смены статуса обмена.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/skillsync/skillsync/internal/http/response"
	"github.com/skillsync/skillsync/internal/lib/sl"
	"github.com/skillsync/skillsync/internal/models"
	swapservice "github.com/skillsync/skillsync/internal/services/swap"
	"github.com/skillsync/skillsync/internal/storage/repository"
)

// Handler обрабатывает HTTP-запросы смены статуса обмена.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики смены статуса.
type Service interface {
	SetStatus(ctx context.Context, swapID, newStatus string) (*models.Swap, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Сменить статус обмена
// @Description Переводит обмен в новый статус и проставляет updatedAt. Недопустимый переход отклоняется.
// @Tags Swaps
// @Accept  json
// @Produce  json
// @Param id path string true "Идентификатор обмена"
// @Param request body models.UpdateSwapStatusRequest true "Новый статус"
// @Success 200 {object} map[string]any "Обновленный обмен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Обмен не найден"
// @Failure 409 {object} response.ErrorResponse "Недопустимый переход статуса"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /swaps/{id}/status [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.swap.status"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	swapID := chi.URLParam(r, "id")

	var req models.UpdateSwapStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	swap, err := h.service.SetStatus(r.Context(), swapID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			log.Info("swap not found", slog.String("id", swapID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("swap not found"))
		case errors.Is(err, swapservice.ErrInvalidTransition):
			log.Info("invalid status transition", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("invalid status transition"))
		default:
			log.Error("failed to update swap status", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update swap status"))
		}
		return
	}

	log.Info("swap status updated",
		slog.String("id", swapID),
		slog.String("status", req.Status))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"swap": swap,
	}))
}
