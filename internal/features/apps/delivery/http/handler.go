package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/common/errors"
	"portal-backend/internal/common/middleware"
	"portal-backend/internal/features/apps/models"
	"portal-backend/internal/features/apps/service"
)

type AppsHandler struct {
	service service.AppsService
	guard   *middleware.Guard
}

func NewAppsHandler(service service.AppsService, guard *middleware.Guard) *AppsHandler {
	return &AppsHandler{service: service, guard: guard}
}

func (h *AppsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/apps", h.list)
	router.PUT("/apps", h.guard.RequireAdmin(), h.replace)
}

// @Summary List downloadable apps
// @Tags apps
// @Produce json
// @Success 200 {object} models.Catalog
// @Router /apps [get]
func (h *AppsHandler) list(c *gin.Context) {
	catalog, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// @Summary Replace the apps catalog
// @Tags apps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Catalog true "Apps"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Bad shape"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /apps [put]
func (h *AppsHandler) replace(c *gin.Context) {
	var catalog models.Catalog
	if err := c.ShouldBindJSON(&catalog); err != nil {
		_ = c.Error(errors.NewValidationError("body", "Body must be { apps: [...] }"))
		return
	}

	if err := h.service.Replace(c.Request.Context(), &catalog); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
