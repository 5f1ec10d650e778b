package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/common/errors"
	"portal-backend/internal/common/middleware"
	"portal-backend/internal/features/dns/models"
	"portal-backend/internal/features/dns/service"
)

type DNSHandler struct {
	service service.DNSService
	guard   *middleware.Guard
}

func NewDNSHandler(service service.DNSService, guard *middleware.Guard) *DNSHandler {
	return &DNSHandler{
		service: service,
		guard:   guard,
	}
}

func (h *DNSHandler) RegisterRoutes(router *gin.RouterGroup) {
	dns := router.Group("/dns")
	{
		dns.GET("", h.list)
		dns.PUT("", h.guard.RequireAdmin(), h.replace)
		dns.POST("/allocate", h.guard.RequireUser(http.StatusForbidden), h.allocate)
		dns.POST("/release", h.guard.RequireAdmin(), h.release)
		dns.GET("/eligibility", h.guard.RequireUser(http.StatusUnauthorized), h.eligibility)
	}
}

// @Summary List DNS countries
// @Tags dns
// @Produce json
// @Success 200 {object} models.ListResponse
// @Router /dns [get]
func (h *DNSHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Replace the DNS catalog
// @Description Replaces the country list and reseeds each country's pool from endpoints and busy.
// @Tags dns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ReplaceRequest true "Countries"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Bad shape"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /dns [put]
func (h *DNSHandler) replace(c *gin.Context) {
	var req models.ReplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewValidationError("body", "Body must be { countries: [...] }"))
		return
	}

	if err := h.service.Replace(c.Request.Context(), &req); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// @Summary Allocate a DNS endpoint
// @Description One endpoint per country every 24 hours per user.
// @Tags dns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AllocateRequest true "Country code"
// @Success 200 {object} models.AllocateResponse
// @Failure 400 {object} map[string]interface{} "code is required"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "country not found"
// @Failure 409 {object} map[string]interface{} "no available endpoint"
// @Failure 429 {object} map[string]interface{} "Rate limited"
// @Router /dns/allocate [post]
func (h *DNSHandler) allocate(c *gin.Context) {
	var req models.AllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewValidationError("body", "invalid JSON body"))
		return
	}

	endpoint, err := h.service.Allocate(c.Request.Context(), c.GetString(middleware.UserIDKey), req.Code)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.AllocateResponse{OK: true, Endpoint: endpoint})
}

// @Summary Release a DNS endpoint
// @Tags dns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ReleaseRequest true "Country and endpoint"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "code and endpoint are required"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /dns/release [post]
func (h *DNSHandler) release(c *gin.Context) {
	var req models.ReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewValidationError("body", "invalid JSON body"))
		return
	}

	if err := h.service.Release(c.Request.Context(), req.Code, req.Endpoint); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// @Summary Check allocation eligibility
// @Tags dns
// @Produce json
// @Security BearerAuth
// @Param code query string true "Country code"
// @Success 200 {object} map[string]interface{} "eligible, retry_after_seconds"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "country not found"
// @Router /dns/eligibility [get]
func (h *DNSHandler) eligibility(c *gin.Context) {
	elig, err := h.service.Eligibility(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Query("code"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, elig)
}
