package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"taskgo-service/internal/app/config"
	"taskgo-service/internal/app/models"
	"taskgo-service/internal/pkg/constvars"
	"taskgo-service/internal/pkg/exceptions"
	"taskgo-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, user models.UserProfile, upstreamToken string) (*models.Session, error) {
	args := m.Called(ctx, user, upstreamToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) RefreshSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

const testJWTSecret = "test-secret"

func testMiddlewares(sessionService *MockSessionService) *Middlewares {
	return NewMiddlewares(zap.NewNop(), sessionService, &config.InternalConfig{
		JWT: config.JWT{
			Secret:        testJWTSecret,
			ExpTimeInHour: 3,
		},
	})
}

func sessionToken(t *testing.T, sessionID string) string {
	t.Helper()
	token, err := utils.GenerateSessionJWT(sessionID, testJWTSecret, 3)
	assert.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Missing Token Sends Caller To The Landing Page", func(t *testing.T) {
		mockSessions := new(MockSessionService)
		handler := testMiddlewares(mockSessions).Authenticate(okHandler)

		request := httptest.NewRequest(http.MethodGet, "/orders", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusUnauthorized, recorder.Code)
		assert.Equal(t, constvars.RouteLanding, recorder.Header().Get(constvars.HeaderLocation))
	})

	t.Run("Garbage Token Sends Caller To The Landing Page", func(t *testing.T) {
		mockSessions := new(MockSessionService)
		handler := testMiddlewares(mockSessions).Authenticate(okHandler)

		request := httptest.NewRequest(http.MethodGet, "/orders", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusUnauthorized, recorder.Code)
		assert.Equal(t, constvars.RouteLanding, recorder.Header().Get(constvars.HeaderLocation))
	})

	t.Run("Live Session Reaches The Handler", func(t *testing.T) {
		mockSessions := new(MockSessionService)
		mockSessions.On("GetSession", mock.Anything, "session-1").Return(&models.Session{
			ID:            "session-1",
			UpstreamToken: "upstream-token",
		}, nil)

		var seenSessionID string
		handler := testMiddlewares(mockSessions).Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenSessionID, _ = r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
			w.WriteHeader(http.StatusOK)
		}))

		request := httptest.NewRequest(http.MethodGet, "/orders", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+sessionToken(t, "session-1"))
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusOK, recorder.Code)
		assert.Equal(t, "session-1", seenSessionID)
	})

	t.Run("Expired Session Sends Caller To The Landing Page", func(t *testing.T) {
		mockSessions := new(MockSessionService)
		mockSessions.On("GetSession", mock.Anything, "session-1").
			Return(nil, exceptions.ErrSessionInvalid(nil))

		handler := testMiddlewares(mockSessions).Authenticate(okHandler)

		request := httptest.NewRequest(http.MethodGet, "/orders", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+sessionToken(t, "session-1"))
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusUnauthorized, recorder.Code)
		assert.Equal(t, constvars.RouteLanding, recorder.Header().Get(constvars.HeaderLocation))
	})
}

func TestRedirectIfAuthenticated(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Anonymous Caller Passes Through", func(t *testing.T) {
		mockSessions := new(MockSessionService)
		handler := testMiddlewares(mockSessions).RedirectIfAuthenticated(okHandler)

		request := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusOK, recorder.Code)
	})

	t.Run("Live Session Is Redirected To Order History", func(t *testing.T) {
		mockSessions := new(MockSessionService)
		mockSessions.On("GetSession", mock.Anything, "session-1").Return(&models.Session{
			ID: "session-1",
		}, nil)

		handler := testMiddlewares(mockSessions).RedirectIfAuthenticated(okHandler)

		request := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+sessionToken(t, "session-1"))
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusSeeOther, recorder.Code)
		assert.Equal(t, constvars.RouteOrderHistory, recorder.Header().Get(constvars.HeaderLocation))
	})

	t.Run("Stale Token Passes Through", func(t *testing.T) {
		mockSessions := new(MockSessionService)
		mockSessions.On("GetSession", mock.Anything, "session-1").
			Return(nil, exceptions.ErrSessionInvalid(nil))

		handler := testMiddlewares(mockSessions).RedirectIfAuthenticated(okHandler)

		request := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+sessionToken(t, "session-1"))
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusOK, recorder.Code)
	})
}
