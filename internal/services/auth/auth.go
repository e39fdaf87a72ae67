// Package auth содержит логику бизнес-уровня для регистрации и входа пользователей.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync/internal/lib/jwt"
	"github.com/skillsync/skillsync/internal/lib/password"
	"github.com/skillsync/skillsync/internal/lib/sl"
	"github.com/skillsync/skillsync/internal/models"
	"github.com/skillsync/skillsync/internal/storage/repository"
)

// ErrInvalidCredentials пара почта/пароль не подходит ни к одному пользователю.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// Create сохраняет нового пользователя, возвращая repository.ErrEmailTaken при занятой почте.
	Create(ctx context.Context, user models.User) error

	// GetByEmail возвращает пользователя по почте или repository.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service отвечает за регистрацию, авторизацию и выпуск JWT.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Register создает нового пользователя с хэшированием пароля и дефолтной ролью user.
// Возвращает запись без учетных данных и JWT.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error) {
	const op = "auth.Register"

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  hashed,
		Location:      req.Location,
		Bio:           req.Bio,
		Availability:  req.Availability,
		SkillsOffered: req.SkillsOffered,
		SkillsWanted:  req.SkillsWanted,
		Role:          models.RoleUser, // дефолтная роль при регистрации
	}
	if user.Availability == nil {
		user.Availability = []string{}
	}
	if user.SkillsOffered == nil {
		user.SkillsOffered = []string{}
	}
	if user.SkillsWanted == nil {
		user.SkillsWanted = []string{}
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("registered new user", slog.String("id", user.ID))
	return &models.AuthResult{User: user.Sanitize(), Token: token}, nil
}

// Login проверяет пару почта/пароль и выпускает JWT.
// Несуществующая почта и неверный пароль неразличимы для вызывающего.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (*models.AuthResult, error) {
	const op = "auth.Login"

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		s.log.Info("login rejected", slog.String("email", email))
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Role)
	if err != nil {
		s.log.Error("failed to issue token", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.AuthResult{User: user.Sanitize(), Token: token}, nil
}
