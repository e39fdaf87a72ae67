package notification_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/skillsync/skillsync/internal/models"
	"github.com/skillsync/skillsync/internal/services/notification"
)

// Мок для NotificationRepository
type NotificationRepoMock struct {
	mock.Mock
}

func (m *NotificationRepoMock) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *NotificationRepoMock) Append(ctx context.Context, n models.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NotificationRepoMock) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestNotificationService_Notify(t *testing.T) {
	repo := new(NotificationRepoMock)
	repo.On("Append", mock.Anything, mock.MatchedBy(func(n models.Notification) bool {
		return n.ID != "" && n.UserID == "2" &&
			n.Type == models.NotificationTypeSwapRequest &&
			n.Message == "You have a new swap request!" &&
			n.SwapID == "s1" && !n.Read
	})).Return(nil).Once()

	svc := notification.New(repo, newNoopLogger())

	got, err := svc.Notify(context.Background(), "2", models.NotificationTypeSwapRequest,
		"You have a new swap request!", "s1")
	assert.NoError(t, err)
	assert.False(t, got.Read)
	assert.WithinDuration(t, time.Now().UTC(), got.CreatedAt, time.Minute)

	repo.AssertExpectations(t)
}

func TestNotificationService_ListByUser(t *testing.T) {
	now := time.Now().UTC()
	stored := []models.Notification{
		{ID: "old", UserID: "2", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "newest", UserID: "2", CreatedAt: now},
		{ID: "middle", UserID: "2", CreatedAt: now.Add(-time.Hour)},
	}

	repo := new(NotificationRepoMock)
	repo.On("ListByUser", mock.Anything, "2").Return(stored, nil).Once()

	svc := notification.New(repo, newNoopLogger())

	got, err := svc.ListByUser(context.Background(), "2")
	assert.NoError(t, err)

	// Самые свежие первыми
	assert.Equal(t, []string{"newest", "middle", "old"},
		[]string{got[0].ID, got[1].ID, got[2].ID})

	repo.AssertExpectations(t)
}

func TestNotificationService_MarkRead_UnknownID(t *testing.T) {
	repo := new(NotificationRepoMock)
	repo.On("MarkRead", mock.Anything, "ghost").Return(nil).Once()

	svc := notification.New(repo, newNoopLogger())

	// Неизвестный идентификатор не считается ошибкой
	assert.NoError(t, svc.MarkRead(context.Background(), "ghost"))
	repo.AssertExpectations(t)
}
