// Package directory содержит бизнес-логику каталога пользователей:
// список участников, просмотр и обновление профиля, поиск по навыкам.
package directory

import (
	"context"
	"log/slog"
	"strings"

	"github.com/skillsync/skillsync/internal/models"
)

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// All возвращает всех пользователей в порядке добавления.
	All(ctx context.Context) ([]models.User, error)
	// GetByID возвращает пользователя по идентификатору или repository.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Update заменяет запись пользователя целиком.
	Update(ctx context.Context, user models.User) error
}

// Service реализует операции каталога.
type Service struct {
	users UserRepository
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(users UserRepository, log *slog.Logger) *Service {
	return &Service{users: users, log: log}
}

// ListOthers возвращает всех пользователей, кроме вызывающего и администраторов,
// без учетных данных. Пагинации нет: каталог читается целиком.
func (s *Service) ListOthers(ctx context.Context, currentUserID string) ([]models.User, error) {
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID == currentUserID || u.Role == models.RoleAdmin {
			continue
		}
		result = append(result, u.Sanitize())
	}
	return result, nil
}

// GetByID возвращает одного пользователя без учетных данных.
func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sanitized := user.Sanitize()
	return &sanitized, nil
}

// UpdateProfile сливает переданные поля в существующую запись и сохраняет её.
// Слияние поверхностное: списки заменяются целиком. Почта, роль и пароль
// через этот путь не меняются.
func (s *Service) UpdateProfile(ctx context.Context, id string, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Avatar != nil {
		user.Avatar = req.Avatar
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Availability != nil {
		user.Availability = *req.Availability
	}
	if req.SkillsOffered != nil {
		user.SkillsOffered = *req.SkillsOffered
	}
	if req.SkillsWanted != nil {
		user.SkillsWanted = *req.SkillsWanted
	}

	if err := s.users.Update(ctx, *user); err != nil {
		return nil, err
	}
	s.log.Info("updated profile", slog.String("id", id))

	sanitized := user.Sanitize()
	return &sanitized, nil
}

// Search чистая функция фильтрации каталога: подстрочное совпадение без учета
// регистра по имени, локации и спискам навыков. Пустой или пробельный запрос
// возвращает вход без изменений; порядок элементов сохраняется, ранжирования нет.
func Search(users []models.User, query string) []models.User {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return users
	}
	var result []models.User
	for _, u := range users {
		if matches(u, q) {
			result = append(result, u)
		}
	}
	return result
}

func matches(u models.User, q string) bool {
	if strings.Contains(strings.ToLower(u.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(u.Location), q) {
		return true
	}
	for _, skill := range u.SkillsOffered {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	for _, skill := range u.SkillsWanted {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	return false
}
