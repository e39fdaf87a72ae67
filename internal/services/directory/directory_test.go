package directory_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/skillsync/skillsync/internal/models"
	"github.com/skillsync/skillsync/internal/services/directory"
)

// Мок для UserRepository
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

func (m *UserRepoMock) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func sampleUsers() []models.User {
	return []models.User{
		{ID: "1", Name: "Alice Johnson", Location: "San Francisco, CA",
			SkillsOffered: []string{"React", "JavaScript", "UI/UX Design"},
			SkillsWanted:  []string{"Python", "Machine Learning", "Spanish"},
			PasswordHash:  "hash1", Role: models.RoleUser},
		{ID: "2", Name: "Bob Smith", Location: "New York, NY",
			SkillsOffered: []string{"Python", "Data Science", "SQL"},
			SkillsWanted:  []string{"React", "Node.js", "Guitar"},
			PasswordHash:  "hash2", Role: models.RoleUser},
		{ID: "3", Name: "Admin User", PasswordHash: "hash3", Role: models.RoleAdmin},
	}
}

func TestDirectoryService_ListOthers(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("All", mock.Anything).Return(sampleUsers(), nil).Once()

	svc := directory.New(repo, newNoopLogger())

	got, err := svc.ListOthers(context.Background(), "1")
	assert.NoError(t, err)

	// Вызывающий и администраторы скрыты, учетные данные вычищены
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
	assert.Empty(t, got[0].PasswordHash)

	repo.AssertExpectations(t)
}

func TestDirectoryService_UpdateProfile(t *testing.T) {
	existing := models.User{
		ID:            "2",
		Name:          "Bob Smith",
		Email:         "bob@example.com",
		PasswordHash:  "hash2",
		Location:      "New York, NY",
		Bio:           "Data scientist",
		SkillsOffered: []string{"Python"},
		SkillsWanted:  []string{"React"},
		Role:          models.RoleUser,
	}

	newName := "Robert Smith"
	newSkills := []string{"Go", "Kubernetes"}

	repo := new(UserRepoMock)
	repo.On("GetByID", mock.Anything, "2").Return(&existing, nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		// Непереданные поля сохраняются, переданные заменяются целиком
		return u.Name == "Robert Smith" &&
			u.Email == "bob@example.com" &&
			u.PasswordHash == "hash2" &&
			u.Location == "New York, NY" &&
			len(u.SkillsOffered) == 2 &&
			u.Role == models.RoleUser
	})).Return(nil).Once()

	svc := directory.New(repo, newNoopLogger())

	got, err := svc.UpdateProfile(context.Background(), "2", models.UpdateProfileRequest{
		Name:          &newName,
		SkillsOffered: &newSkills,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Robert Smith", got.Name)
	assert.Equal(t, []string{"Go", "Kubernetes"}, got.SkillsOffered)
	assert.Equal(t, []string{"React"}, got.SkillsWanted)
	assert.Empty(t, got.PasswordHash)

	repo.AssertExpectations(t)
}

func TestSearch(t *testing.T) {
	users := sampleUsers()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "empty query returns input unchanged", query: "", wantIDs: []string{"1", "2", "3"}},
		{name: "whitespace query returns input unchanged", query: "   ", wantIDs: []string{"1", "2", "3"}},
		{name: "match by offered skill case-insensitive", query: "PYTHON", wantIDs: []string{"1", "2"}},
		{name: "match by name substring", query: "alice", wantIDs: []string{"1"}},
		{name: "match by location", query: "new york", wantIDs: []string{"2"}},
		{name: "match by wanted skill", query: "guitar", wantIDs: []string{"2"}},
		{name: "no matches", query: "blacksmithing", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := directory.Search(users, tt.query)
			var ids []string
			for _, u := range got {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSearch_PreservesOrder(t *testing.T) {
	users := sampleUsers()
	got := directory.Search(users, "react")
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}
