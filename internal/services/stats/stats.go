// Package stats собирает агрегированную статистику платформы для панели администратора.
package stats

import (
	"context"
	"log/slog"

	"github.com/skillsync/skillsync/internal/models"
)

// UserRepository возвращает всех пользователей.
type UserRepository interface {
	All(ctx context.Context) ([]models.User, error)
}

// SwapRepository возвращает все обмены.
type SwapRepository interface {
	All(ctx context.Context) ([]models.Swap, error)
}

// Service считает сводные показатели по коллекциям.
type Service struct {
	users UserRepository
	swaps SwapRepository
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(users UserRepository, swaps SwapRepository, log *slog.Logger) *Service {
	return &Service{users: users, swaps: swaps, log: log}
}

// recentSwapsLimit сколько последних обменов попадает в сводку.
const recentSwapsLimit = 10

// Collect возвращает сводку: счетчики пользователей и обменов,
// полный список пользователей без учетных данных и последние обмены.
func (s *Service) Collect(ctx context.Context) (*models.AdminStats, error) {
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	swaps, err := s.swaps.All(ctx)
	if err != nil {
		return nil, err
	}

	result := &models.AdminStats{
		TotalUsers: len(users),
		TotalSwaps: len(swaps),
		Users:      make([]models.User, 0, len(users)),
	}
	for _, u := range users {
		if u.Role == models.RoleAdmin {
			result.AdminUsers++
		} else {
			result.RegularUsers++
		}
		result.Users = append(result.Users, u.Sanitize())
	}
	for _, sw := range swaps {
		switch sw.Status {
		case models.SwapStatusPending:
			result.PendingSwaps++
		case models.SwapStatusCompleted:
			result.CompletedSwaps++
		}
	}

	// Коллекция хранится в порядке добавления, последние записи — самые свежие.
	start := 0
	if len(swaps) > recentSwapsLimit {
		start = len(swaps) - recentSwapsLimit
	}
	result.RecentSwaps = append([]models.Swap{}, swaps[start:]...)

	return result, nil
}
