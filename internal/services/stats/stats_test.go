package stats_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/skillsync/skillsync/internal/models"
	"github.com/skillsync/skillsync/internal/services/stats"
)

type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) All(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type SwapRepoMock struct {
	mock.Mock
}

func (m *SwapRepoMock) All(ctx context.Context) ([]models.Swap, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Swap), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestStatsService_Collect(t *testing.T) {
	users := []models.User{
		{ID: "1", Role: models.RoleUser, PasswordHash: "hash1"},
		{ID: "2", Role: models.RoleUser, PasswordHash: "hash2"},
		{ID: "3", Role: models.RoleAdmin, PasswordHash: "hash3"},
	}
	swaps := []models.Swap{
		{ID: "s1", Status: models.SwapStatusPending},
		{ID: "s2", Status: models.SwapStatusCompleted},
		{ID: "s3", Status: models.SwapStatusAccepted},
		{ID: "s4", Status: models.SwapStatusPending},
	}

	userRepo := new(UserRepoMock)
	userRepo.On("All", mock.Anything).Return(users, nil).Once()
	swapRepo := new(SwapRepoMock)
	swapRepo.On("All", mock.Anything).Return(swaps, nil).Once()

	svc := stats.New(userRepo, swapRepo, newNoopLogger())

	got, err := svc.Collect(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 3, got.TotalUsers)
	assert.Equal(t, 1, got.AdminUsers)
	assert.Equal(t, 2, got.RegularUsers)
	assert.Equal(t, 4, got.TotalSwaps)
	assert.Equal(t, 2, got.PendingSwaps)
	assert.Equal(t, 1, got.CompletedSwaps)

	for _, u := range got.Users {
		assert.Empty(t, u.PasswordHash)
	}

	userRepo.AssertExpectations(t)
	swapRepo.AssertExpectations(t)
}

func TestStatsService_Collect_RecentSwapsLimit(t *testing.T) {
	var swaps []models.Swap
	for i := 0; i < 15; i++ {
		swaps = append(swaps, models.Swap{ID: fmt.Sprintf("s%d", i), Status: models.SwapStatusPending})
	}

	userRepo := new(UserRepoMock)
	userRepo.On("All", mock.Anything).Return([]models.User{}, nil).Once()
	swapRepo := new(SwapRepoMock)
	swapRepo.On("All", mock.Anything).Return(swaps, nil).Once()

	svc := stats.New(userRepo, swapRepo, newNoopLogger())

	got, err := svc.Collect(context.Background())
	assert.NoError(t, err)

	// Последние 10 записей коллекции, порядок добавления сохранен
	assert.Len(t, got.RecentSwaps, 10)
	assert.Equal(t, "s5", got.RecentSwaps[0].ID)
	assert.Equal(t, "s14", got.RecentSwaps[9].ID)
}
