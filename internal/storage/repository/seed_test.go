package repository_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsync/skillsync/internal/lib/password"
	"github.com/skillsync/skillsync/internal/storage"
	"github.com/skillsync/skillsync/internal/storage/repository"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestEnsureSeeded(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()

	require.NoError(t, repository.EnsureSeeded(ctx, kv, newNoopLogger()))

	users := repository.NewUserRepository(kv)
	all, err := users.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	t.Run("admin can login with demo password", func(t *testing.T) {
		admin, err := users.GetByEmail(ctx, "admin@skillsync.com")
		require.NoError(t, err)
		assert.Equal(t, "admin", admin.Role)
		assert.NoError(t, password.CompareHash(admin.PasswordHash, "admin123"))
	})

	t.Run("demo users have demo password", func(t *testing.T) {
		alice, err := users.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.NoError(t, password.CompareHash(alice.PasswordHash, "password123"))
	})

	t.Run("swap and notification collections initialized empty", func(t *testing.T) {
		raw, ok, err := kv.Get(ctx, repository.SwapsKey)
		require.NoError(t, err)
		require.True(t, ok)
		assert.JSONEq(t, "[]", string(raw))

		raw, ok, err = kv.Get(ctx, repository.NotificationsKey)
		require.NoError(t, err)
		require.True(t, ok)
		assert.JSONEq(t, "[]", string(raw))
	})

	t.Run("repeated seeding is a no-op", func(t *testing.T) {
		require.NoError(t, repository.EnsureSeeded(ctx, kv, newNoopLogger()))
		all, err := users.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("existing users are never overwritten", func(t *testing.T) {
		alice, err := users.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		alice.Bio = "changed"
		require.NoError(t, users.Update(ctx, *alice))

		require.NoError(t, repository.EnsureSeeded(ctx, kv, newNoopLogger()))

		got, err := users.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "changed", got.Bio)
	})
}
