package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/common/config"
	"portal-backend/internal/common/logger"
	"portal-backend/internal/common/middleware"
	"portal-backend/internal/features/health/models"
)

const (
	probeKey     = "health_check"
	probeTimeout = 2 * time.Second
)

// Prober round-trips a key through the store.
type Prober interface {
	Probe(ctx context.Context, key string) error
}

type HealthHandler struct {
	store Prober
	cfg   *config.Config
	guard *middleware.Guard
	now   func() time.Time
}

// NewHealthHandler reports on store. store may be nil when the store is not
// configured; kv is then reported as missing.
func NewHealthHandler(store Prober, cfg *config.Config, guard *middleware.Guard) *HealthHandler {
	return &HealthHandler{store: store, cfg: cfg, guard: guard, now: time.Now}
}

// RegisterProbes mounts the liveness and readiness probes at the root.
func (h *HealthHandler) RegisterProbes(router gin.IRoutes) {
	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/ready", h.ready)
}

func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.health)
	router.GET("/admin/info", h.guard.RequireAdminBasic(), h.adminInfo)
}

// @Summary Service health
// @Description Probes the store and reports which secrets are configured.
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) health(c *gin.Context) {
	resp := models.HealthResponse{
		Status:    models.StatusOK,
		Timestamp: h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Version:   h.cfg.Version,
		Services: models.Services{
			KV:               h.kvStatus(c.Request.Context()),
			BotToken:         presence(h.cfg.HasBotToken()),
			AdminCredentials: presence(h.cfg.HasAdminCredentials()),
		},
	}
	if resp.Services.KV != models.StatusOK {
		resp.Status = models.StatusDegraded
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) ready(c *gin.Context) {
	if status := h.kvStatus(c.Request.Context()); status != models.StatusOK {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unready",
			"error":  "kv " + status,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": h.now().UTC(),
	})
}

// @Summary Admin configuration info
// @Tags admin
// @Produce json
// @Security BasicAuth
// @Success 200 {object} models.AdminInfo
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /admin/info [get]
func (h *HealthHandler) adminInfo(c *gin.Context) {
	c.JSON(http.StatusOK, models.AdminInfo{
		HasKV:        h.store != nil,
		HasBotToken:  h.cfg.HasBotToken(),
		AdminUserSet: h.cfg.Admin.User != "",
		AdminPassSet: h.cfg.Admin.Pass != "",
	})
}

func (h *HealthHandler) kvStatus(ctx context.Context) string {
	if h.store == nil {
		return models.StatusMissing
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if err := h.store.Probe(ctx, probeKey); err != nil {
		logger.Warn().Err(err).Msg("KV probe failed")
		return models.StatusError
	}
	return models.StatusOK
}

func presence(set bool) string {
	if set {
		return models.StatusSet
	}
	return models.StatusMissing
}
