package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions struct {
	admins map[string]string
	users  map[string]string
	err    error
}

func (s stubSessions) ResolveAdmin(_ context.Context, token string) (string, error) {
	return s.admins[token], s.err
}

func (s stubSessions) ResolveUser(_ context.Context, token string) (string, error) {
	return s.users[token], s.err
}

func newGuardRouter(g *Guard) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	echo := func(c *gin.Context) {
		id := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"kind": id.Kind, "id": id.ID, "method": id.Method})
	}
	r.GET("/admin", g.RequireAdmin(), echo)
	r.GET("/admin-basic", g.RequireAdminBasic(), echo)
	r.GET("/user", g.RequireUser(http.StatusUnauthorized), echo)
	r.GET("/user-403", g.RequireUser(http.StatusForbidden), echo)
	return r
}

func do(r http.Handler, path string, setAuth func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if setAuth != nil {
		setAuth(req)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func basic(user, pass string) func(*http.Request) {
	return func(r *http.Request) { r.SetBasicAuth(user, pass) }
}

func TestGuardResolutionOrder(t *testing.T) {
	sessions := stubSessions{
		admins: map[string]string{"adm-token": "42"},
		users:  map[string]string{"usr-token": "123"},
	}
	r := newGuardRouter(NewGuard("root", "secret", sessions))

	rec := do(r, "/admin", basic("root", "secret"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"kind":"admin","id":"root","method":"basic"}`, rec.Body.String())

	rec = do(r, "/admin", bearer("adm-token"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"kind":"admin","id":"42","method":"bearer"}`, rec.Body.String())

	rec = do(r, "/user", bearer("usr-token"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"kind":"user","id":"123","method":"bearer"}`, rec.Body.String())
}

func TestRequireAdminRejectsWithChallenge(t *testing.T) {
	r := newGuardRouter(NewGuard("root", "secret", stubSessions{users: map[string]string{"usr-token": "123"}}))

	for name, auth := range map[string]func(*http.Request){
		"none":       nil,
		"wrong pass": basic("root", "nope"),
		"user token": bearer("usr-token"),
		"unknown":    bearer("zzz"),
	} {
		rec := do(r, "/admin", auth)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
		assert.Equal(t, `Basic realm="admin"`, rec.Header().Get("WWW-Authenticate"), name)
	}
}

func TestRequireAdminBasicIgnoresSessions(t *testing.T) {
	r := newGuardRouter(NewGuard("root", "secret", stubSessions{admins: map[string]string{"adm-token": "42"}}))

	assert.Equal(t, http.StatusUnauthorized, do(r, "/admin-basic", bearer("adm-token")).Code)
	assert.Equal(t, http.StatusOK, do(r, "/admin-basic", basic("root", "secret")).Code)
}

func TestBasicDisabledWithoutConfiguredCredentials(t *testing.T) {
	r := newGuardRouter(NewGuard("", "", stubSessions{}))
	assert.Equal(t, http.StatusUnauthorized, do(r, "/admin", basic("", "")).Code)
}

func TestRequireUserStatuses(t *testing.T) {
	r := newGuardRouter(NewGuard("root", "secret", stubSessions{admins: map[string]string{"adm-token": "42"}}))

	rec := do(r, "/user", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("WWW-Authenticate"))

	assert.Equal(t, http.StatusForbidden, do(r, "/user-403", nil).Code)
	// an admin session is not a user session
	assert.Equal(t, http.StatusUnauthorized, do(r, "/user", bearer("adm-token")).Code)
}

func TestGuardStoreFailure(t *testing.T) {
	r := newGuardRouter(NewGuard("root", "secret", stubSessions{err: fmt.Errorf("connection refused")}))

	rec := do(r, "/user", bearer("anything"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"])
}
