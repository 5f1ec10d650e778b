package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/common/config"
	"portal-backend/internal/common/logger"
	"portal-backend/internal/common/middleware"
	apphttp "portal-backend/internal/http"
	redisstore "portal-backend/internal/platform/redis"
	"portal-backend/internal/platform/telegram"
)

// @title           Portal API
// @version         1.0
// @description     Backend for the portal site: Telegram OTP login, admin console, DNS and scanner address pools, app catalog and a KV proxy.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Bearer <token>" issued by /auth/verify, /auth/webapp or /admin/verify

// @securityDefinitions.basic BasicAuth

// @securityDefinitions.apikey TelegramInitData
// @in header
// @name X-Telegram-Init-Data
// @description Telegram Mini App init data string

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load: %v\n", err)
		os.Exit(1)
	}

	logger.Init("portal-backend", cfg.Debug)
	logger.Info().
		Str("version", cfg.Version).
		Bool("debug", cfg.Debug).
		Msg("Starting portal backend")

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	store, err := redisstore.Open(ctx, addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", addr).Msg("Failed to connect to Redis")
	}
	defer store.Close()
	logger.Info().Str("addr", addr).Msg("Redis connection established")

	if !cfg.HasBotToken() {
		logger.Warn().Msg("BOT_TOKEN is not set; OTP and config requests will fail")
	}
	if !cfg.HasAdminCredentials() {
		logger.Warn().Msg("ADMIN_USER/ADMIN_PASS are not set; admin basic auth is disabled")
	}

	limiter := middleware.NewRateLimiter(cfg.Throttle.OTPPerMinute, cfg.Throttle.OTPBurst)
	limiter.StartCleanup(ctx, time.Minute)

	router := apphttp.NewGinApp(cfg, store, telegram.NewClient(cfg.Telegram.BotToken), limiter)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	logger.Info().Msg("Server exited")
}
