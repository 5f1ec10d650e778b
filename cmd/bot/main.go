package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"portal-backend/internal/common/config"
	"portal-backend/internal/common/logger"
	"portal-backend/internal/features/bot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load: %v\n", err)
		os.Exit(1)
	}

	logger.Init("portal-bot", cfg.Debug)

	if !cfg.HasBotToken() {
		logger.Fatal().Msg("BOT_TOKEN is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b, err := bot.New(cfg.Telegram.BotToken, cfg.Telegram.SiteURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to start bot")
	}

	b.Start(ctx)
	logger.Info().Msg("Bot stopped")
}
