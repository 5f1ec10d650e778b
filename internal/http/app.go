package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "portal-backend/docs"
	"portal-backend/internal/common/config"
	"portal-backend/internal/common/metrics"
	"portal-backend/internal/common/middleware"
	appshttp "portal-backend/internal/features/apps/delivery/http"
	appsredis "portal-backend/internal/features/apps/repository/redis"
	appsservice "portal-backend/internal/features/apps/service"
	authhttp "portal-backend/internal/features/auth/delivery/http"
	authredis "portal-backend/internal/features/auth/repository/redis"
	authservice "portal-backend/internal/features/auth/service"
	dnshttp "portal-backend/internal/features/dns/delivery/http"
	dnsredis "portal-backend/internal/features/dns/repository/redis"
	dnsservice "portal-backend/internal/features/dns/service"
	healthhttp "portal-backend/internal/features/health/delivery/http"
	kvhttp "portal-backend/internal/features/kv/delivery/http"
	kvredis "portal-backend/internal/features/kv/repository/redis"
	kvservice "portal-backend/internal/features/kv/service"
	poolhttp "portal-backend/internal/features/pool/delivery/http"
	poolredis "portal-backend/internal/features/pool/repository/redis"
	poolservice "portal-backend/internal/features/pool/service"
	userhttp "portal-backend/internal/features/user/delivery/http"
	userredis "portal-backend/internal/features/user/repository/redis"
	userservice "portal-backend/internal/features/user/service"
	redisstore "portal-backend/internal/platform/redis"
)

// Messenger sends Telegram messages; *telegram.Client implements it.
type Messenger interface {
	HasToken() bool
	SendMessage(ctx context.Context, chatID int64, text, parseMode string) error
}

// NewGinApp builds the gin engine with every feature's routes wired.
func NewGinApp(cfg *config.Config, store *redisstore.Client, messenger Messenger, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.Server.Origin))
	router.Use(middleware.StaticCORS(cfg.Server.Origin))

	rdb := store.Client

	// Feature deps
	userSvc := userservice.NewUserService(userredis.NewUserRepository(rdb), messenger)
	authSvc := authservice.NewAuthService(authredis.NewAuthRepository(rdb), messenger, userSvc)
	poolSvc := poolservice.NewPoolService(poolredis.NewPoolRepository(rdb))
	dnsSvc := dnsservice.NewDNSService(dnsredis.NewCatalogRepository(rdb), poolSvc)
	appsSvc := appsservice.NewAppsService(appsredis.NewAppsRepository(rdb))
	kvSvc := kvservice.NewKVService(kvredis.NewKVRepository(rdb))

	guard := middleware.NewGuard(cfg.Admin.User, cfg.Admin.Pass, authSvc)

	health := healthhttp.NewHealthHandler(store, cfg, guard)
	health.RegisterProbes(router)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	health.RegisterRoutes(api)
	authhttp.NewAuthHandler(authSvc, guard, limiter, cfg).RegisterRoutes(api)
	userhttp.NewUserHandler(userSvc, guard).RegisterRoutes(api)
	appshttp.NewAppsHandler(appsSvc, guard).RegisterRoutes(api)
	dnshttp.NewDNSHandler(dnsSvc, guard).RegisterRoutes(api)
	poolhttp.NewPoolHandler(poolSvc, guard).RegisterRoutes(api)
	kvhttp.NewKVHandler(kvSvc, guard).RegisterRoutes(api)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found", "code": "NOT_FOUND"})
	})

	return router
}
