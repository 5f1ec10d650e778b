package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-backend/internal/common/middleware"
	dnsredis "portal-backend/internal/features/dns/repository/redis"
	"portal-backend/internal/features/dns/service"
	poolredis "portal-backend/internal/features/pool/repository/redis"
	poolservice "portal-backend/internal/features/pool/service"
	"portal-backend/internal/platform/redis/redistest"
)

type sessions struct{}

func (sessions) ResolveAdmin(_ context.Context, token string) (string, error) {
	if token == "admin-token" {
		return "1", nil
	}
	return "", nil
}

func (sessions) ResolveUser(_ context.Context, token string) (string, error) {
	if strings.HasPrefix(token, "user-") {
		return strings.TrimPrefix(token, "user-"), nil
	}
	return "", nil
}

func newRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	_, client := redistest.New(t)
	pools := poolservice.NewPoolService(poolredis.NewPoolRepository(client))
	svc := service.NewDNSService(dnsredis.NewCatalogRepository(client), pools)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	NewDNSHandler(svc, middleware.NewGuard("", "", sessions{})).RegisterRoutes(r.Group("/api"))
	return r
}

func call(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDNSFlow(t *testing.T) {
	r := newRouter(t)

	w := call(r, http.MethodGet, "/api/dns", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"countries":[]}`, w.Body.String())

	catalog := `{"countries":[{"code":"uk","name":"UK","endpoints":["1.1.1.1","2.2.2.2"],"busy":[]}]}`
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodPut, "/api/dns", "", catalog).Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodPut, "/api/dns", "user-5", catalog).Code)
	assert.Equal(t, http.StatusBadRequest, call(r, http.MethodPut, "/api/dns", "admin-token", `{"countries":"x"}`).Code)
	require.Equal(t, http.StatusOK, call(r, http.MethodPut, "/api/dns", "admin-token", catalog).Code)

	assert.Equal(t, http.StatusForbidden, call(r, http.MethodPost, "/api/dns/allocate", "", `{"code":"UK"}`).Code)
	assert.Equal(t, http.StatusForbidden, call(r, http.MethodPost, "/api/dns/allocate", "admin-token", `{"code":"UK"}`).Code)
	assert.Equal(t, http.StatusBadRequest, call(r, http.MethodPost, "/api/dns/allocate", "user-5", `{}`).Code)
	assert.Equal(t, http.StatusNotFound, call(r, http.MethodPost, "/api/dns/allocate", "user-5", `{"code":"FR"}`).Code)

	w = call(r, http.MethodPost, "/api/dns/allocate", "user-5", `{"code":"uk"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)

	w = call(r, http.MethodPost, "/api/dns/allocate", "user-5", `{"code":"UK"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "retry_after_seconds")

	w = call(r, http.MethodGet, "/api/dns/eligibility?code=UK", "user-5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"eligible":false`)

	require.Equal(t, http.StatusOK, call(r, http.MethodPost, "/api/dns/allocate", "user-6", `{"code":"UK"}`).Code)
	w = call(r, http.MethodPost, "/api/dns/allocate", "user-7", `{"code":"UK"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "no available endpoint")

	w = call(r, http.MethodGet, "/api/dns", "", "")
	assert.JSONEq(t, `{"countries":[{"code":"UK","name":"UK","total":2,"busy":2,"available":0}]}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodPost, "/api/dns/release", "user-5", `{"code":"UK","endpoint":"1.1.1.1"}`).Code)
	assert.Equal(t, http.StatusBadRequest, call(r, http.MethodPost, "/api/dns/release", "admin-token", `{"code":"UK"}`).Code)
	assert.Equal(t, http.StatusNotFound, call(r, http.MethodPost, "/api/dns/release", "admin-token", `{"code":"UK","endpoint":"9.9.9.9"}`).Code)
	assert.Equal(t, http.StatusOK, call(r, http.MethodPost, "/api/dns/release", "admin-token", `{"code":"UK","endpoint":"1.1.1.1"}`).Code)
}
