package profile

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/taskpay/internal/models"
)

// MockService реализует интерфейс profile.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, uid string) (*models.User, error) {
	args := m.Called(ctx, uid)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestProfileHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		uid            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "профиль с активным тарифом",
			uid:  "u1",
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "u1").Return(&models.User{
					UID:         "u1",
					Email:       "u1@example.com",
					DisplayName: "User One",
					Plan: &models.Plan{
						Price:    499,
						Duration: "1 month",
						Status:   models.PlanStatusActive,
					},
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"active"`,
		},
		{
			name: "профиль без тарифа не содержит plan",
			uid:  "u2",
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "u2").Return(&models.User{
					UID:   "u2",
					Email: "u2@example.com",
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"uid":"u2"`,
		},
		{
			name: "неизвестный пользователь даёт 404",
			uid:  "ghost",
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "ghost").
					Return(nil, models.ErrUserNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"user not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/auth/profile/"+tt.uid, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("uid", tt.uid)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
