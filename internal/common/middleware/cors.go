package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	corsMethods = []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS"}
	corsHeaders = []string{"Content-Type", "Authorization", InitDataHeader}
)

// CORS allows browser scripts from origin ("*" for any) to call the API.
func CORS(origin string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: corsMethods,
		AllowHeaders: corsHeaders,
	}
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{origin}
	}
	return cors.New(cfg)
}

// StaticCORS covers requests that carry no Origin header, which the CORS
// middleware ignores: every response gets the static CORS headers and OPTIONS
// is answered with 204 and no body.
func StaticCORS(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	methods := strings.Join(corsMethods, ",")
	headers := strings.Join(corsHeaders, ", ")
	return func(c *gin.Context) {
		if c.GetHeader("Origin") != "" {
			c.Next()
			return
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
