package http

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-backend/internal/common/config"
	"portal-backend/internal/common/middleware"
	authredis "portal-backend/internal/features/auth/repository/redis"
	"portal-backend/internal/features/auth/service"
	"portal-backend/internal/platform/redis/redistest"
)

const botToken = "12345:TEST"

type captureMessenger struct{ texts []string }

func (m *captureMessenger) HasToken() bool { return true }

func (m *captureMessenger) SendMessage(_ context.Context, _ int64, text, _ string) error {
	m.texts = append(m.texts, text)
	return nil
}

var digits = regexp.MustCompile(`\d+$`)

func (m *captureMessenger) code() string {
	return digits.FindString(m.texts[len(m.texts)-1])
}

func newRouter(t *testing.T, mutate func(*config.Config)) (*gin.Engine, *captureMessenger) {
	gin.SetMode(gin.TestMode)
	_, client := redistest.New(t)

	cfg := &config.Config{}
	cfg.Admin.User = "admin"
	cfg.Admin.Pass = "secret"
	cfg.Telegram.BotToken = botToken
	cfg.Telegram.InitDataTTL = 3600
	if mutate != nil {
		mutate(cfg)
	}

	messenger := &captureMessenger{}
	svc := service.NewAuthService(authredis.NewAuthRepository(client), messenger, nil)
	guard := middleware.NewGuard(cfg.Admin.User, cfg.Admin.Pass, svc)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	NewAuthHandler(svc, guard, middleware.NewRateLimiter(600, 100), cfg).RegisterRoutes(r.Group("/api"))
	return r, messenger
}

func do(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func basic() map[string]string {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("admin", "secret")
	return map[string]string{"Authorization": req.Header.Get("Authorization")}
}

func TestUserLoginFlow(t *testing.T) {
	r, messenger := newRouter(t, nil)

	w := do(r, http.MethodPost, "/api/auth/request", `{"telegram_id":123}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/auth/verify", `{"telegram_id":"123","code":"x"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_CODE", decode(t, w)["code"])

	w = do(r, http.MethodPost, "/api/auth/verify", `{"telegram_id":"123","code":"`+messenger.code()+`"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Regexp(t, `^[0-9a-f]{64}$`, decode(t, w)["token"])
}

func TestRequestCodeValidation(t *testing.T) {
	r, _ := newRouter(t, nil)

	w := do(r, http.MethodPost, "/api/auth/request", `{"telegram_id":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/auth/request", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminLoginFlow(t *testing.T) {
	r, messenger := newRouter(t, nil)

	w := do(r, http.MethodPost, "/api/admin/login", `{"admin_id":"77"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, `Basic realm="admin"`, w.Header().Get("WWW-Authenticate"))

	w = do(r, http.MethodPost, "/api/admin/login", `{"admin_id":"77"}`, basic())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Regexp(t, `^\d{5}$`, messenger.code())

	w = do(r, http.MethodPost, "/api/admin/verify", `{"admin_id":"77","code":"`+messenger.code()+`"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := decode(t, w)["token"].(string)
	bearer := map[string]string{"Authorization": "Bearer " + token}

	w = do(r, http.MethodPost, "/api/admin/logout", ``, bearer)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/api/admin/logout", ``, bearer)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "revoked token must stop resolving")
}

func TestAdminLoginAllowList(t *testing.T) {
	r, messenger := newRouter(t, func(cfg *config.Config) {
		cfg.Admin.TelegramIDs = []string{"1"}
	})

	w := do(r, http.MethodPost, "/api/admin/login", `{"admin_id":"2"}`, basic())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, messenger.texts)

	w = do(r, http.MethodPost, "/api/admin/login", `{"admin_id":"1"}`, basic())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestCodeThrottled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, client := redistest.New(t)
	cfg := &config.Config{}
	svc := service.NewAuthService(authredis.NewAuthRepository(client), &captureMessenger{}, nil)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	NewAuthHandler(svc, middleware.NewGuard("", "", svc), middleware.NewRateLimiter(1, 1), cfg).RegisterRoutes(r.Group("/api"))

	w := do(r, http.MethodPost, "/api/auth/request", `{"telegram_id":"1"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/api/auth/request", `{"telegram_id":"1"}`, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, decode(t, w), "retry_after_seconds")
}

func TestWebAppLogin(t *testing.T) {
	r, _ := newRouter(t, nil)

	w := do(r, http.MethodPost, "/api/auth/webapp", ``, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/auth/webapp", ``, map[string]string{
		middleware.InitDataHeader: signInitData(t, 555, time.Now()),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Regexp(t, `^[0-9a-f]{64}$`, decode(t, w)["token"])

	w = do(r, http.MethodPost, "/api/auth/webapp", ``, map[string]string{
		middleware.InitDataHeader: signInitData(t, 555, time.Now().Add(-2*time.Hour)),
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// signInitData builds Mini App init data signed the way Telegram does.
func signInitData(t *testing.T, userID int64, authDate time.Time) string {
	t.Helper()

	user, err := json.Marshal(map[string]interface{}{"id": userID, "first_name": "Test"})
	require.NoError(t, err)

	params := map[string]string{
		"auth_date": strconv.FormatInt(authDate.Unix(), 10),
		"query_id":  "AAH",
		"user":      string(user),
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(pairs, "\n")))

	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	values.Set("hash", hex.EncodeToString(mac.Sum(nil)))
	return values.Encode()
}
