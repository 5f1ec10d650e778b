package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/common/middleware"
	"portal-backend/internal/features/user/models"
	"portal-backend/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
	guard   *middleware.Guard
}

func NewUserHandler(service service.UserService, guard *middleware.Guard) *UserHandler {
	return &UserHandler{
		service: service,
		guard:   guard,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("")
	users.Use(h.guard.RequireUser(http.StatusUnauthorized))
	{
		users.GET("/me", h.getMe)
		users.POST("/config/request", h.requestConfig)
	}
}

// @Summary Get current user
// @Description Returns the caller's profile, or a stub with only telegram_id when none is stored.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.MeResponse
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /me [get]
func (h *UserHandler) getMe(c *gin.Context) {
	user, err := h.service.GetProfile(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.MeResponse{User: user})
}

// @Summary Request a new config
// @Description Sends a config notice to the caller's Telegram chat and counts the request.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ConfigRequestResponse
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Bot token not configured"
// @Failure 502 {object} map[string]interface{} "Failed to send message"
// @Router /config/request [post]
func (h *UserHandler) requestConfig(c *gin.Context) {
	if err := h.service.RequestConfig(c.Request.Context(), c.GetString(middleware.UserIDKey)); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.ConfigRequestResponse{
		Success: true,
		Message: "Config request sent successfully",
	})
}
