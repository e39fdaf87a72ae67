// Package feedback реализует HTTP-обработчик прикрепления отзыва к обмену.
package feedback

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

	"github.com/skillsync/skillsync/internal/http/middlewarectx"
	"github.com/skillsync/skillsync/internal/http/response"
	"github.com/skillsync/skillsync/internal/lib/sl"
	"github.com/skillsync/skillsync/internal/models"
	"github.com/skillsync/skillsync/internal/storage/repository"
)

// Handler обрабатывает HTTP-запросы прикрепления отзывов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики отзывов.
type Service interface {
	AttachFeedback(ctx context.Context, swapID, userID string, feedback models.Feedback) (*models.Swap, error)
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
// @Summary Оставить отзыв об обмене
// @Description Сохраняет отзыв вызывающего участника. Повторный отзыв заменяет предыдущий.
// @Tags Swaps
// @Accept  json
// @Produce  json
// @Param id path string true "Идентификатор обмена"
// @Param request body models.FeedbackRequest true "Отзыв"
// @Success 200 {object} map[string]any "Обмен с отзывом"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Обмен не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /swaps/{id}/feedback [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.swap.feedback"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	swapID := chi.URLParam(r, "id")

	var req models.FeedbackRequest
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

	userID, ok := r.Context().Value(middlewarectx.UserID).(string)
	if !ok || userID == "" {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	swap, err := h.service.AttachFeedback(r.Context(), swapID, userID, models.Feedback{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Info("swap not found", slog.String("id", swapID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("swap not found"))
			return
		}
		log.Error("failed to attach feedback", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not attach feedback"))
		return
	}

	log.Info("feedback attached", slog.String("swapId", swapID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"swap": swap,
	}))
}
