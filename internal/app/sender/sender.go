// Package sender собирает воркер почтовых уведомлений: подключение к RabbitMQ,
// SMTP транспорт и потребителя очереди запросов на обмен.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/skillsync/skillsync/internal/config"
	"github.com/skillsync/skillsync/internal/lib/rabbitmq"
	"github.com/skillsync/skillsync/internal/lib/smtp"
	senderservice "github.com/skillsync/skillsync/internal/services/sender"
)

// App воркер отправки почтовых уведомлений.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.Service
	logger        *slog.Logger
}

// New подключается к RabbitMQ, объявляет очереди и собирает сервис отправки.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	queues := rabbitmq.GetNotificationQueues()
	ch, err := rabbitmq.SetupChannel(conn, queues)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	newTransport := smtp.NewTransport(cfg, logger)
	senderService := senderservice.New(newTransport, logger)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

// Run запускает потребителя очереди и блокируется до отмены контекста.
func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, rabbitmq.SwapRequestQueue, a.senderService.SendSwapRequestEmail)
	if err != nil {
		a.logger.Error("failed to start swap_request_queue consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}

	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
