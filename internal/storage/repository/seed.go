package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillsync/skillsync/internal/lib/password"
	"github.com/skillsync/skillsync/internal/models"
	"github.com/skillsync/skillsync/internal/storage"
)

// demoUser описывает демо-пользователя, создаваемого при первом запуске.
type demoUser struct {
	models.User
	rawPassword string
}

func demoUsers() []demoUser {
	return []demoUser{
		{
			User: models.User{
				ID:            "1",
				Name:          "Alice Johnson",
				Email:         "alice@example.com",
				Location:      "San Francisco, CA",
				Bio:           "Passionate about web development and design. Love to teach and learn!",
				Availability:  []string{"Weekends", "Evenings"},
				SkillsOffered: []string{"React", "JavaScript", "UI/UX Design"},
				SkillsWanted:  []string{"Python", "Machine Learning", "Spanish"},
				Role:          models.RoleUser,
			},
			rawPassword: "password123",
		},
		{
			User: models.User{
				ID:            "2",
				Name:          "Bob Smith",
				Email:         "bob@example.com",
				Location:      "New York, NY",
				Bio:           "Data scientist with a love for teaching. Always eager to learn new skills.",
				Availability:  []string{"Weekdays", "Mornings"},
				SkillsOffered: []string{"Python", "Data Science", "SQL"},
				SkillsWanted:  []string{"React", "Node.js", "Guitar"},
				Role:          models.RoleUser,
			},
			rawPassword: "password123",
		},
		{
			User: models.User{
				ID:            "3",
				Name:          "Admin User",
				Email:         "admin@skillsync.com",
				Location:      "Remote",
				Bio:           "Platform administrator",
				Availability:  []string{},
				SkillsOffered: []string{},
				SkillsWanted:  []string{},
				Role:          models.RoleAdmin,
			},
			rawPassword: "admin123",
		},
	}
}

// EnsureSeeded один раз наполняет хранилище демо-данными: три канонических
// пользователя и пустые коллекции обменов и уведомлений. Повторные вызовы
// ничего не меняют — наличие хотя бы одного пользователя означает,
// что хранилище уже инициализировано.
func EnsureSeeded(ctx context.Context, kv storage.KV, log *slog.Logger) error {
	const op = "repository.EnsureSeeded"

	users, err := readCollection[models.User](ctx, kv, UsersKey)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(users) == 0 {
		seeded := make([]models.User, 0, 3)
		for _, d := range demoUsers() {
			hash, err := password.GetHash(d.rawPassword)
			if err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			u := d.User
			u.PasswordHash = hash
			seeded = append(seeded, u)
		}
		if err := writeCollection(ctx, kv, UsersKey, seeded); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		log.Info("seeded demo users", slog.Int("count", len(seeded)))
	}

	for _, key := range []string{SwapsKey, NotificationsKey} {
		_, ok, err := kv.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			if err := kv.Set(ctx, key, []byte("[]")); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
	}
	return nil
}
