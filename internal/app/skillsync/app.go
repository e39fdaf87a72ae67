// Package skillsync собирает приложение: хранилище, сервисы, маршруты
// и жизненный цикл HTTP-сервера.
package skillsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/skillsync/skillsync/internal/config"
	"github.com/skillsync/skillsync/internal/lib/jwt"
	"github.com/skillsync/skillsync/internal/lib/rabbitmq"
	authservice "github.com/skillsync/skillsync/internal/services/auth"
	directoryservice "github.com/skillsync/skillsync/internal/services/directory"
	notificationservice "github.com/skillsync/skillsync/internal/services/notification"
	statsservice "github.com/skillsync/skillsync/internal/services/stats"
	swapservice "github.com/skillsync/skillsync/internal/services/swap"
	"github.com/skillsync/skillsync/internal/storage"
	"github.com/skillsync/skillsync/internal/storage/repository"
)

// App приложение skillsync с HTTP-сервером и подключениями к инфраструктуре.
type App struct {
	server     *http.Server
	logger     *slog.Logger
	amqpConn   *amqp.Connection
	closeStore func()
}

// New инициализирует хранилище, наполняет его демо-данными, собирает сервисы
// и маршруты. Публикация событий в RabbitMQ включается только при заданном URL.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	var kv storage.KV
	var closeStore func()

	switch cfg.StorageBackend {
	case "postgres":
		db, err := storage.NewPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		kv = db
		closeStore = db.Close
	case "redis":
		db, err := storage.NewRedis(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, err
		}
		kv = db
		closeStore = func() { _ = db.Close() }
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}

	if err := repository.EnsureSeeded(ctx, kv, logger); err != nil {
		closeStore()
		return nil, err
	}

	userRepo := repository.NewUserRepository(kv)
	swapRepo := repository.NewSwapRepository(kv)
	notificationRepo := repository.NewNotificationRepository(kv)

	var amqpConn *amqp.Connection
	var publisher swapservice.EventPublisher
	if cfg.RabbitMQURL != "" {
		conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
		if err != nil {
			closeStore()
			return nil, err
		}
		ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
		if err != nil {
			_ = conn.Close()
			closeStore()
			return nil, err
		}
		amqpConn = conn
		publisher = rabbitmq.NewPublisher(ch)
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.New(userRepo, jwtMaker, logger)
	directoryService := directoryservice.New(userRepo, logger)
	notificationService := notificationservice.New(notificationRepo, logger)
	swapService := swapservice.New(swapRepo, userRepo, notificationService, publisher,
		cfg.PermissiveTransitions, logger)
	statsService := statsservice.New(userRepo, swapRepo, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, authService, directoryService,
		swapService, notificationService, statsService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:     srv,
		logger:     logger,
		amqpConn:   amqpConn,
		closeStore: closeStore,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.amqpConn != nil {
			_ = a.amqpConn.Close()
		}
		a.closeStore()
		return err
	}
}
