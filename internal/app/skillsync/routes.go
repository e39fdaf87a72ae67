// Package skillsync предоставляет маршруты для основного приложения.
package skillsync

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	adminstats "github.com/skillsync/skillsync/internal/http/handlers/admin/stats"
	"github.com/skillsync/skillsync/internal/http/handlers/auth/login"
	"github.com/skillsync/skillsync/internal/http/handlers/auth/register"
	"github.com/skillsync/skillsync/internal/http/handlers/health"
	notificationlist "github.com/skillsync/skillsync/internal/http/handlers/notification/list"
	"github.com/skillsync/skillsync/internal/http/handlers/notification/markread"
	swapcreate "github.com/skillsync/skillsync/internal/http/handlers/swap/create"
	swapfeedback "github.com/skillsync/skillsync/internal/http/handlers/swap/feedback"
	swaplist "github.com/skillsync/skillsync/internal/http/handlers/swap/list"
	swapstatus "github.com/skillsync/skillsync/internal/http/handlers/swap/status"
	userlist "github.com/skillsync/skillsync/internal/http/handlers/user/list"
	userread "github.com/skillsync/skillsync/internal/http/handlers/user/read"
	userupdate "github.com/skillsync/skillsync/internal/http/handlers/user/update"
	"github.com/skillsync/skillsync/internal/http/middlewarectx"
	"github.com/skillsync/skillsync/internal/lib/jwt"
	authservice "github.com/skillsync/skillsync/internal/services/auth"
	directoryservice "github.com/skillsync/skillsync/internal/services/directory"
	notificationservice "github.com/skillsync/skillsync/internal/services/notification"
	statsservice "github.com/skillsync/skillsync/internal/services/stats"
	swapservice "github.com/skillsync/skillsync/internal/services/swap"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	jwtMaker jwt.Maker,
	authService *authservice.Service,
	directoryService *directoryservice.Service,
	swapService *swapservice.Service,
	notificationService *notificationservice.Service,
	statsService *statsservice.Service,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/users", userlist.New(logger, directoryService).ServeHTTP)
			r.Get("/users/{id}", userread.New(logger, directoryService).ServeHTTP)
			r.Put("/users/{id}", userupdate.New(logger, directoryService).ServeHTTP)

			r.Post("/swaps", swapcreate.New(logger, swapService).ServeHTTP)
			r.Get("/swaps", swaplist.New(logger, swapService).ServeHTTP)
			r.Patch("/swaps/{id}/status", swapstatus.New(logger, swapService).ServeHTTP)
			r.Post("/swaps/{id}/feedback", swapfeedback.New(logger, swapService).ServeHTTP)

			r.Get("/notifications", notificationlist.New(logger, notificationService).ServeHTTP)
			r.Post("/notifications/{id}/read", markread.New(logger, notificationService).ServeHTTP)

			// Админская группа
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))
				r.Get("/admin/stats", adminstats.New(logger, statsService).ServeHTTP)
			})
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
