// Package update реализует HTTP-обработчик обновления профиля.
//
// Профиль может менять его владелец или администратор. Переданные поля
// сливаются в существующую запись; списки заменяются целиком.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/skillsync/skillsync/internal/http/middlewarectx"
	"github.com/skillsync/skillsync/internal/http/response"
	"github.com/skillsync/skillsync/internal/lib/sl"
	"github.com/skillsync/skillsync/internal/models"
	"github.com/skillsync/skillsync/internal/storage/repository"
)

// Handler обрабатывает HTTP-запросы обновления профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики обновления профиля.
type Service interface {
	UpdateProfile(ctx context.Context, id string, req models.UpdateProfileRequest) (*models.User, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Обновление профиля
// @Description Сливает переданные поля в профиль пользователя. Доступно владельцу профиля и администратору.
// @Tags Users
// @Accept  json
// @Produce  json
// @Param id path string true "Идентификатор пользователя"
// @Param request body models.UpdateProfileRequest true "Обновляемые поля"
// @Success 200 {object} map[string]any "Обновленный профиль"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 403 {object} response.ErrorResponse "Нет прав на изменение профиля"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	currentUserID, _ := r.Context().Value(middlewarectx.UserID).(string)
	role, _ := r.Context().Value(middlewarectx.Role).(string)
	if id != currentUserID && role != models.RoleAdmin {
		log.Error("profile update forbidden",
			slog.String("id", id),
			slog.String("caller", currentUserID))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("forbidden"))
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Info("user not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to update profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update profile"))
		return
	}

	log.Info("profile updated", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"user": user,
	}))
}
