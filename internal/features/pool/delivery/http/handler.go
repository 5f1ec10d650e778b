package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/common/errors"
	"portal-backend/internal/common/middleware"
	"portal-backend/internal/features/pool/models"
	"portal-backend/internal/features/pool/service"
)

type PoolHandler struct {
	service service.PoolService
	guard   *middleware.Guard
}

func NewPoolHandler(service service.PoolService, guard *middleware.Guard) *PoolHandler {
	return &PoolHandler{
		service: service,
		guard:   guard,
	}
}

func (h *PoolHandler) RegisterRoutes(router *gin.RouterGroup) {
	scanner := router.Group("/scanner")
	{
		scanner.GET("/addresses", h.allocate)
		scanner.POST("/addresses", h.stats)
	}

	pools := router.Group("/admin/pools")
	pools.Use(h.guard.RequireAdmin())
	{
		pools.GET("/:country", h.snapshot)
		pools.DELETE("/:country", h.clear)
		pools.POST("/:country/addresses", h.add)
		pools.DELETE("/:country/addresses/:address", h.remove)
		pools.POST("/:country/release", h.release)
	}
}

// @Summary Take a scanner address
// @Description Hands out one random available address for the country and marks it used.
// @Tags scanner
// @Produce json
// @Param country query string false "Country code" default(uk)
// @Success 200 {object} models.Allocation
// @Failure 404 {object} map[string]interface{} "No addresses available"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /scanner/addresses [get]
func (h *PoolHandler) allocate(c *gin.Context) {
	country := c.DefaultQuery("country", models.DefaultScannerCountry)

	alloc, err := h.service.Allocate(c.Request.Context(), country, models.Requester{
		IP:    c.ClientIP(),
		Entry: "scanner",
	})
	if err != nil {
		if errors.HasCode(err, errors.ErrCodePoolExhausted) {
			err = errors.NewNotFoundError("No addresses available for this country")
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, alloc)
}

// @Summary Scanner pool counts
// @Tags scanner
// @Accept json
// @Produce json
// @Param request body models.StatsRequest false "Country (default uk)"
// @Success 200 {object} models.Stats
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /scanner/addresses [post]
func (h *PoolHandler) stats(c *gin.Context) {
	var req models.StatsRequest
	// an empty or malformed body falls back to the default country
	_ = c.ShouldBindJSON(&req)
	if strings.TrimSpace(req.Country) == "" {
		req.Country = models.DefaultScannerCountry
	}

	stats, err := h.service.Stats(c.Request.Context(), req.Country)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Inspect a pool
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param country path string true "Country code"
// @Success 200 {object} models.Snapshot
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /admin/pools/{country} [get]
func (h *PoolHandler) snapshot(c *gin.Context) {
	snap, err := h.service.Snapshot(c.Request.Context(), c.Param("country"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary Drop a pool
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param country path string true "Country code"
// @Success 200 {object} map[string]interface{}
// @Router /admin/pools/{country} [delete]
func (h *PoolHandler) clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), c.Param("country")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// @Summary Add addresses to a pool
// @Description Accepts a list or newline separated text. Only bare IPv4 addresses are kept.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param country path string true "Country code"
// @Param request body models.AddAddressesRequest true "Addresses"
// @Success 200 {object} models.AddResult
// @Failure 400 {object} map[string]interface{} "No valid addresses"
// @Router /admin/pools/{country}/addresses [post]
func (h *PoolHandler) add(c *gin.Context) {
	var req models.AddAddressesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewValidationError("body", "invalid JSON body"))
		return
	}

	lines := append([]string{}, req.Addresses...)
	if req.Text != "" {
		lines = append(lines, strings.Split(req.Text, "\n")...)
	}

	result, err := h.service.Add(c.Request.Context(), c.Param("country"), lines)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Remove an available address
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param country path string true "Country code"
// @Param address path string true "Address"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Address not found"
// @Router /admin/pools/{country}/addresses/{address} [delete]
func (h *PoolHandler) remove(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("country"), c.Param("address")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// @Summary Release a used address
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param country path string true "Country code"
// @Param request body models.ReleaseRequest true "Address"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Address not in used list"
// @Router /admin/pools/{country}/release [post]
func (h *PoolHandler) release(c *gin.Context) {
	var req models.ReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewValidationError("body", "invalid JSON body"))
		return
	}

	if err := h.service.Release(c.Request.Context(), c.Param("country"), req.Address); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
