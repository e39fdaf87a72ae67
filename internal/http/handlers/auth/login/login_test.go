package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/skillsync/skillsync/internal/models"
	authservice "github.com/skillsync/skillsync/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	args := m.Called(ctx, email, password)
	resp, _ := args.Get(0).(*models.AuthResult)
	return resp, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	authMock := new(AuthServiceMock)
	handler := New(newNoopLogger(), authMock)

	okResult := &models.AuthResult{
		User:  models.User{ID: "3", Email: "admin@skillsync.com", Role: models.RoleAdmin},
		Token: "tok",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockResp       *models.AuthResult
		mockErr        error
		wantStatusCode int
		wantStatus     string
		wantError      string
	}{
		{
			name:           "valid login",
			requestBody:    models.LoginRequest{Email: "admin@skillsync.com", Password: "admin123"},
			mockResp:       okResult,
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantError:      "invalid request body",
		},
		{
			name:           "validation error - missing password",
			requestBody:    models.LoginRequest{Email: "admin@skillsync.com"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     "Error",
			wantError:      "field Password is a required field",
		},
		{
			name:           "invalid credentials",
			requestBody:    models.LoginRequest{Email: "admin@skillsync.com", Password: "wrongpass"},
			mockErr:        authservice.ErrInvalidCredentials,
			wantStatusCode: http.StatusUnauthorized,
			wantStatus:     "Error",
			wantError:      "invalid credentials",
		},
		{
			name:           "service error",
			requestBody:    models.LoginRequest{Email: "admin@skillsync.com", Password: "admin123"},
			mockErr:        errors.New("storage down"),
			wantStatusCode: http.StatusInternalServerError,
			wantStatus:     "Error",
			wantError:      "could not login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock.ExpectedCalls = nil
			authMock.Calls = nil

			if tt.mockResp != nil || tt.mockErr != nil {
				req := tt.requestBody.(models.LoginRequest)
				authMock.On("Login", mock.Anything, req.Email, req.Password).
					Return(tt.mockResp, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp map[string]any
			err = json.Unmarshal(rec.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp["status"])
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, resp["error"])
			}
			if tt.wantStatus == "OK" {
				data := resp["data"].(map[string]any)
				assert.Equal(t, "tok", data["token"])
				user := data["user"].(map[string]any)
				assert.Equal(t, "3", user["id"])
				// Хэш пароля не попадает в ответ
				_, leaked := user["passwordHash"]
				assert.False(t, leaked)
			}

			authMock.AssertExpectations(t)
		})
	}
}
