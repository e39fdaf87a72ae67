// Package list реализует HTTP-обработчик каталога пользователей.
//
// Возвращает всех участников, кроме вызывающего и администраторов.
// Необязательный параметр q фильтрует каталог по имени, локации и навыкам.
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
	"github.com/skillsync/skillsync/internal/services/directory"
)

// Handler обрабатывает HTTP-запросы списка пользователей.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис каталога пользователей
}

// Service описывает интерфейс бизнес-логики каталога.
type Service interface {
	ListOthers(ctx context.Context, currentUserID string) ([]models.User, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Каталог пользователей
// @Description Возвращает всех участников, кроме вызывающего и администраторов. Параметр q фильтрует по имени, локации и навыкам.
// @Tags Users
// @Produce  json
// @Param q query string false "Поисковый запрос"
// @Success 200 {object} map[string]any "Список пользователей"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	currentUserID, ok := r.Context().Value(middlewarectx.UserID).(string)
	if !ok || currentUserID == "" {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	users, err := h.service.ListOthers(r.Context(), currentUserID)
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list users"))
		return
	}

	if q := r.URL.Query().Get("q"); q != "" {
		users = directory.Search(users, q)
	}
	if users == nil {
		users = []models.User{}
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"users": users,
	}))
}
