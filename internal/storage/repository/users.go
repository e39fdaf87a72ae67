package repository

import (
	"context"
	"strings"

	"github.com/skillsync/skillsync/internal/models"
	"github.com/skillsync/skillsync/internal/storage"
)

// UserRepository типизированный доступ к коллекции пользователей.
type UserRepository struct {
	kv storage.KV
}

// NewUserRepository создает репозиторий поверх указанного хранилища.
func NewUserRepository(kv storage.KV) *UserRepository {
	return &UserRepository{kv: kv}
}

// All возвращает всех пользователей в порядке добавления.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	return readCollection[models.User](ctx, r.kv, UsersKey)
}

// GetByID возвращает пользователя по идентификатору.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// GetByEmail возвращает пользователя по почте без учета регистра.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// Create добавляет нового пользователя, отклоняя занятую почту.
func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	users, err := r.All(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrEmailTaken
		}
	}
	users = append(users, user)
	return writeCollection(ctx, r.kv, UsersKey, users)
}

// Update заменяет запись пользователя с тем же идентификатором целиком.
func (r *UserRepository) Update(ctx context.Context, user models.User) error {
	users, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i, u := range users {
		if u.ID == user.ID {
			users[i] = user
			return writeCollection(ctx, r.kv, UsersKey, users)
		}
	}
	return ErrNotFound
}
