package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/common/config"
	"portal-backend/internal/common/errors"
	"portal-backend/internal/common/middleware"
	"portal-backend/internal/features/auth/models"
	"portal-backend/internal/features/auth/service"
)

type AuthHandler struct {
	service service.AuthService
	guard   *middleware.Guard
	limiter *middleware.RateLimiter
	cfg     *config.Config
}

func NewAuthHandler(service service.AuthService, guard *middleware.Guard, limiter *middleware.RateLimiter, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		service: service,
		guard:   guard,
		limiter: limiter,
		cfg:     cfg,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/request", h.limiter.Handler(), h.requestCode)
		auth.POST("/verify", h.verify)
		auth.POST("/webapp", middleware.TelegramInitData(h.cfg.Telegram.BotToken, h.cfg.InitDataMaxAge()), h.webApp)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/login", h.guard.RequireAdminBasic(), h.limiter.Handler(), h.adminLogin)
		admin.POST("/verify", h.adminVerify)
		admin.POST("/logout", h.guard.RequireAdmin(), h.adminLogout)
	}
}

// @Summary Request a login code
// @Description Sends a 4-digit code to the Telegram chat of telegram_id. The code is valid for 5 minutes.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RequestCodeRequest true "Telegram ID"
// @Success 200 {object} models.OKResponse
// @Failure 400 {object} map[string]interface{} "Invalid telegram_id"
// @Failure 429 {object} map[string]interface{} "Too many requests"
// @Failure 500 {object} map[string]interface{} "Bot token not configured"
// @Failure 502 {object} map[string]interface{} "Telegram rejected the message"
// @Router /auth/request [post]
func (h *AuthHandler) requestCode(c *gin.Context) {
	var req models.RequestCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewValidationError("body", "invalid JSON body"))
		return
	}

	if err := h.service.RequestCode(c.Request.Context(), models.UserRealm, req.TelegramID.String()); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.OKResponse{OK: true})
}

// @Summary Verify a login code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.VerifyRequest true "Telegram ID and code"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid code"
// @Router /auth/verify [post]
func (h *AuthHandler) verify(c *gin.Context) {
	var req models.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewValidationError("body", "invalid JSON body"))
		return
	}

	token, err := h.service.Verify(c.Request.Context(), models.UserRealm, req.TelegramID.String(), req.Code.String())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}

// @Summary Log in from the Telegram Mini App
// @Description Exchanges signed Telegram init data for a user session.
// @Tags auth
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} models.TokenResponse
// @Failure 401 {object} map[string]interface{} "Missing or invalid init data"
// @Router /auth/webapp [post]
func (h *AuthHandler) webApp(c *gin.Context) {
	telegramID := c.GetString(middleware.TelegramUserIDKey)

	token, err := h.service.IssueSession(c.Request.Context(), models.UserRealm, telegramID, "webapp")
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}

// @Summary Request an admin login code
// @Description Sends a 5-digit code to the admin's Telegram chat. Requires the admin basic credential.
// @Tags admin
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body models.AdminLoginRequest true "Admin Telegram ID"
// @Success 200 {object} models.OKResponse
// @Failure 400 {object} map[string]interface{} "Invalid admin_id"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} map[string]interface{} "admin_id not allowed"
// @Failure 500 {object} map[string]interface{} "Bot token not configured"
// @Failure 502 {object} map[string]interface{} "Telegram rejected the message"
// @Router /admin/login [post]
func (h *AuthHandler) adminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewValidationError("body", "invalid JSON body"))
		return
	}

	adminID := req.AdminID.String()
	if adminID != "" && !h.cfg.AdminIDAllowed(adminID) {
		_ = c.Error(errors.NewForbiddenError("admin_id is not allowed"))
		return
	}

	if err := h.service.RequestCode(c.Request.Context(), models.AdminRealm, adminID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.OKResponse{OK: true})
}

// @Summary Verify an admin login code
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.AdminVerifyRequest true "Admin ID and code"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid code"
// @Router /admin/verify [post]
func (h *AuthHandler) adminVerify(c *gin.Context) {
	var req models.AdminVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewValidationError("body", "invalid JSON body"))
		return
	}

	token, err := h.service.Verify(c.Request.Context(), models.AdminRealm, req.AdminID.String(), req.Code.String())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}

// @Summary Log out an admin session
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.OKResponse
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /admin/logout [post]
func (h *AuthHandler) adminLogout(c *gin.Context) {
	// basic-auth callers have no session to revoke
	if identity := middleware.GetIdentity(c); identity != nil && identity.Method == "bearer" {
		if err := h.service.Revoke(c.Request.Context(), models.AdminRealm, middleware.BearerToken(c.Request)); err != nil {
			_ = c.Error(err)
			return
		}
	}

	c.JSON(http.StatusOK, models.OKResponse{OK: true})
}
