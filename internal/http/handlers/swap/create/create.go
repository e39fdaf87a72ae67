// Package create реализует HTTP-обработчик создания запросов на обмен навыками.
//
// Handler принимает JSON-запрос с получателем и снимками навыков, валидирует его,
// извлекает инициатора из контекста и вызывает бизнес-логику создания обмена.
// Побочным эффектом создается уведомление получателю.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/skillsync/skillsync/internal/http/middlewarectx"
	"github.com/skillsync/skillsync/internal/http/response"
	"github.com/skillsync/skillsync/internal/lib/sl"
	"github.com/skillsync/skillsync/internal/models"
	swapservice "github.com/skillsync/skillsync/internal/services/swap"
	"github.com/skillsync/skillsync/internal/storage/repository"
)

// Handler управляет HTTP-запросами на создание обменов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики обменов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания обмена.
type Service interface {
	Create(ctx context.Context, requesterID string, req models.CreateSwapRequest) (*models.Swap, error)
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
// @Summary Создать запрос на обмен
// @Description Создает запрос на обмен навыками со статусом pending и уведомляет получателя.
// @Tags Swaps
// @Accept  json
// @Produce  json
// @Param request body models.CreateSwapRequest true "Данные нового обмена"
// @Success 200 {object} map[string]any "Созданный обмен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или обмен с самим собой"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Получатель не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании обмена"
// @Router /swaps [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.swap.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateSwapRequest
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

	requesterID, ok := r.Context().Value(middlewarectx.UserID).(string)
	if !ok || requesterID == "" {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	swap, err := h.service.Create(r.Context(), requesterID, req)
	if err != nil {
		switch {
		case errors.Is(err, swapservice.ErrInvalidOperation):
			log.Info("invalid swap operation", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("requester and receiver must differ"))
		case errors.Is(err, repository.ErrNotFound):
			log.Info("swap participant not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
		default:
			log.Error("failed to create swap", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create swap"))
		}
		return
	}

	log.Info("swap created", slog.String("id", swap.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"swap": swap,
	}))
}
