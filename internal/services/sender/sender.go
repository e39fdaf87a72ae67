// Package sender реализует отправку почтовых уведомлений о событиях платформы.
// Сообщения приходят из RabbitMQ; недоставленное письмо возвращает сообщение
// в очередь, поэтому доставка идет по модели «как минимум один раз».
package sender

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/skillsync/skillsync/internal/lib/sl"
	"github.com/skillsync/skillsync/internal/lib/smtp"
	"github.com/skillsync/skillsync/internal/models"
)

// Service потребляет события и отправляет письма через SMTP транспорт.
type Service struct {
	transport smtp.TransportInterface
	log       *slog.Logger
}

// New создает новый экземпляр Service.
func New(transport smtp.TransportInterface, log *slog.Logger) *Service {
	return &Service{transport: transport, log: log}
}

// SendSwapRequestEmail обрабатывает событие о новом запросе на обмен
// и отправляет письмо получателю запроса.
func (s *Service) SendSwapRequestEmail(body []byte) error {
	var event models.SwapRequestEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{event.ReceiverEmail}
	subject := "New swap request on SkillSync"
	bodyText := fmt.Sprintf("Hi %s!\n\n%s sent you a new skill swap request.\n\nSign in to SkillSync to accept or decline it.",
		event.ReceiverName, event.RequesterName)

	return s.sendEmail(to, subject, bodyText)
}

func (s *Service) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("to", addr), sl.Err(err))
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		s.log.Error("failed to open data writer", sl.Err(err))
		return err
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write message", sl.Err(err))
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	if err := client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP session", sl.Err(err))
		return err
	}

	s.log.Info("sent swap request email", slog.String("to", strings.Join(to, ";")))
	return nil
}
