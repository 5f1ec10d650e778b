package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-backend/internal/common/middleware"
	userredis "portal-backend/internal/features/user/repository/redis"
	"portal-backend/internal/features/user/service"
	"portal-backend/internal/platform/redis/redistest"
)

type staticSessions map[string]string

func (s staticSessions) ResolveAdmin(context.Context, string) (string, error) { return "", nil }

func (s staticSessions) ResolveUser(_ context.Context, token string) (string, error) {
	return s[token], nil
}

type okMessenger struct{}

func (okMessenger) HasToken() bool { return true }

func (okMessenger) SendMessage(context.Context, int64, string, string) error { return nil }

func newRouter(t *testing.T) (*gin.Engine, service.UserService) {
	gin.SetMode(gin.TestMode)
	_, client := redistest.New(t)
	svc := service.NewUserService(userredis.NewUserRepository(client), okMessenger{})
	guard := middleware.NewGuard("", "", staticSessions{"tok": "321"})

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	NewUserHandler(svc, guard).RegisterRoutes(r.Group("/api"))
	return r, svc
}

func request(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMe(t *testing.T) {
	r, _ := newRouter(t)

	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodGet, "/api/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodGet, "/api/me", "nope").Code)

	w := request(r, http.MethodGet, "/api/me", "tok")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":{"telegram_id":"321"}}`, w.Body.String())
}

func TestConfigRequest(t *testing.T) {
	r, svc := newRouter(t)

	w := request(r, http.MethodPost, "/api/config/request", "tok")
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.NoError(t, svc.TouchLogin(context.Background(), "321"))
	w = request(r, http.MethodPost, "/api/config/request", "tok")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Config request sent successfully"}`, w.Body.String())
}
