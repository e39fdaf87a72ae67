package create

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/skillsync/skillsync/internal/http/middlewarectx"
	"github.com/skillsync/skillsync/internal/models"
	swapservice "github.com/skillsync/skillsync/internal/services/swap"
	"github.com/skillsync/skillsync/internal/storage/repository"
)

type SwapServiceMock struct {
	mock.Mock
}

func (m *SwapServiceMock) Create(ctx context.Context, requesterID string, req models.CreateSwapRequest) (*models.Swap, error) {
	args := m.Called(ctx, requesterID, req)
	resp, _ := args.Get(0).(*models.Swap)
	return resp, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCreateHandler_ServeHTTP(t *testing.T) {
	created := &models.Swap{
		ID:          "s1",
		RequesterID: "1",
		ReceiverID:  "2",
		Status:      models.SwapStatusPending,
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		ctxUserID      string
		mockResp       *models.Swap
		mockErr        error
		wantStatusCode int
		wantStatus     string
		wantError      string
	}{
		{
			name:           "successful create",
			requestBody:    models.CreateSwapRequest{ReceiverID: "2", RequesterSkills: []string{"React"}},
			ctxUserID:      "1",
			mockResp:       created,
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			ctxUserID:      "1",
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantError:      "invalid request body",
		},
		{
			name:           "validation error - missing receiver",
			requestBody:    models.CreateSwapRequest{},
			ctxUserID:      "1",
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     "Error",
			wantError:      "field ReceiverID is a required field",
		},
		{
			name:           "no identity in context",
			requestBody:    models.CreateSwapRequest{ReceiverID: "2"},
			ctxUserID:      "",
			wantStatusCode: http.StatusUnauthorized,
			wantStatus:     "Error",
			wantError:      "unauthorized",
		},
		{
			name:           "self swap",
			requestBody:    models.CreateSwapRequest{ReceiverID: "1"},
			ctxUserID:      "1",
			mockErr:        fmt.Errorf("%w: requester and receiver must differ", swapservice.ErrInvalidOperation),
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantError:      "requester and receiver must differ",
		},
		{
			name:           "receiver not found",
			requestBody:    models.CreateSwapRequest{ReceiverID: "999"},
			ctxUserID:      "1",
			mockErr:        repository.ErrNotFound,
			wantStatusCode: http.StatusNotFound,
			wantStatus:     "Error",
			wantError:      "user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(SwapServiceMock)
			if tt.mockResp != nil || tt.mockErr != nil {
				serviceMock.On("Create", mock.Anything, tt.ctxUserID, tt.requestBody.(models.CreateSwapRequest)).
					Return(tt.mockResp, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), serviceMock)

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

			req := httptest.NewRequest(http.MethodPost, "/swaps", bytes.NewReader(bodyBytes))
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			if tt.ctxUserID != "" {
				ctx = context.WithValue(ctx, middlewarectx.UserID, tt.ctxUserID)
			}
			req = req.WithContext(ctx)

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
				swap := data["swap"].(map[string]any)
				assert.Equal(t, "s1", swap["id"])
				assert.Equal(t, models.SwapStatusPending, swap["status"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
