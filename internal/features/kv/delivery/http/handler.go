package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/common/errors"
	"portal-backend/internal/common/middleware"
	"portal-backend/internal/features/kv/service"
)

const maxValueBytes = 1 << 20

type KVHandler struct {
	service service.KVService
	guard   *middleware.Guard
}

func NewKVHandler(service service.KVService, guard *middleware.Guard) *KVHandler {
	return &KVHandler{service: service, guard: guard}
}

func (h *KVHandler) RegisterRoutes(router *gin.RouterGroup) {
	kv := router.Group("/kv")
	kv.Use(h.guard.RequireAdmin())
	{
		kv.GET("/*key", h.get)
		kv.PUT("/*key", h.put)
		kv.DELETE("/*key", h.delete)
	}
}

func keyParam(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("key"), "/")
}

// @Summary Read a KV entry
// @Tags kv
// @Produce json
// @Security BearerAuth
// @Param key path string true "Key without the kv: prefix"
// @Success 200 {object} interface{} "Stored JSON value"
// @Failure 400 {object} map[string]interface{} "Key is required"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Key not found"
// @Router /kv/{key} [get]
func (h *KVHandler) get(c *gin.Context) {
	value, err := h.service.Get(c.Request.Context(), keyParam(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", value)
}

// @Summary Write a KV entry
// @Tags kv
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Key without the kv: prefix"
// @Param value body object true "Any JSON value"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Key is required or body is not JSON"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /kv/{key} [put]
func (h *KVHandler) put(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxValueBytes+1))
	if err != nil {
		_ = c.Error(errors.NewValidationError("body", "failed to read body"))
		return
	}
	if len(body) > maxValueBytes {
		_ = c.Error(errors.NewValidationError("body", "value too large"))
		return
	}

	if err := h.service.Put(c.Request.Context(), keyParam(c), body); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Delete a KV entry
// @Tags kv
// @Produce json
// @Security BearerAuth
// @Param key path string true "Key without the kv: prefix"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Key is required"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /kv/{key} [delete]
func (h *KVHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), keyParam(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
