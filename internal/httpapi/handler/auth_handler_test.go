package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ueberstunden/overtime-ledger/internal/httpapi/service"
	"github.com/ueberstunden/overtime-ledger/internal/httpapi/session"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, password string) error {
	args := m.Called(ctx, password)
	return args.Error(0)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, current, next string) error {
	args := m.Called(ctx, current, next)
	return args.Error(0)
}

func (m *MockAuthService) EnsureCredential(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newAuthRouter(authService service.AuthService, sessions *session.Manager) *gin.Engine {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	handler := NewAuthHandler(logger, authService, sessions, false)

	router := gin.New()
	router.POST("/auth/login", handler.Login)
	router.POST("/auth/logout", handler.Logout)
	router.GET("/auth/status", handler.Status)
	router.POST("/auth/password", handler.ChangePassword)
	return router
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Login", mock.Anything, "hunter22").Return(nil)

		sessions := session.NewManager(time.Hour)
		router := newAuthRouter(mockService, sessions)

		req, _ := http.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"hunter22"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		cookie := sessionCookie(t, rr)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, sessions.Validate(cookie.Value))

		data := decodeData(t, rr.Body.Bytes())
		assert.Equal(t, true, data["authenticated"])
	})

	t.Run("WrongPassword", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Login", mock.Anything, "nope").Return(service.ErrInvalidPassword)

		router := newAuthRouter(mockService, session.NewManager(time.Hour))

		req, _ := http.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, rr.Result().Cookies())
	})

	t.Run("MissingPassword", func(t *testing.T) {
		mockService := new(MockAuthService)
		router := newAuthRouter(mockService, session.NewManager(time.Hour))

		req, _ := http.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sessions := session.NewManager(time.Hour)
	token := sessions.Create()
	router := newAuthRouter(new(MockAuthService), sessions)

	req, _ := http.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, sessions.Validate(token))

	cookie := sessionCookie(t, rr)
	assert.Empty(t, cookie.Value)
}

func TestAuthHandler_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sessions := session.NewManager(time.Hour)
	token := sessions.Create()
	router := newAuthRouter(new(MockAuthService), sessions)

	t.Run("Authenticated", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/auth/status", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		data := decodeData(t, rr.Body.Bytes())
		assert.Equal(t, true, data["authenticated"])
	})

	t.Run("Anonymous", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/auth/status", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		data := decodeData(t, rr.Body.Bytes())
		assert.Equal(t, false, data["authenticated"])
	})
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("ChangePassword", mock.Anything, "old-password", "new-password").Return(nil)

		router := newAuthRouter(mockService, session.NewManager(time.Hour))

		body := `{"current_password":"old-password","new_password":"new-password"}`
		req, _ := http.NewRequest(http.MethodPost, "/auth/password", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("WrongCurrentPassword", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("ChangePassword", mock.Anything, "wrong", "new-password").Return(service.ErrInvalidPassword)

		router := newAuthRouter(mockService, session.NewManager(time.Hour))

		body := `{"current_password":"wrong","new_password":"new-password"}`
		req, _ := http.NewRequest(http.MethodPost, "/auth/password", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("WeakNewPassword", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("ChangePassword", mock.Anything, "old-password", "short").Return(service.ErrWeakPassword)

		router := newAuthRouter(mockService, session.NewManager(time.Hour))

		body := `{"current_password":"old-password","new_password":"short"}`
		req, _ := http.NewRequest(http.MethodPost, "/auth/password", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errField := decodeError(t, rr.Body.Bytes())
		require.Contains(t, errField["message"], "at least 8 characters")
	})
}
