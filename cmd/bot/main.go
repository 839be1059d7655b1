// cmd/bot/main.go
package main

import (
	"card-rewards/internal/app"
	"card-rewards/internal/config"
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Бот в режиме long polling, без HTTP API.
func main() {
	cfg := config.MustLoad()
	logger := app.SetupLogger(cfg)

	if cfg.TelegramBotToken == "" {
		slog.Error("TELEGRAM_BOT_TOKEN not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		slog.Error("Не удалось запустить приложение", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		slog.Error("Не удалось инициализировать Telegram бота", "error", err)
		os.Exit(1)
	}
	slog.Info("Bot started", "username", api.Self.UserName)

	go func() {
		<-ctx.Done()
		api.StopReceivingUpdates()
	}()

	a.Bot(logger).Poll(ctx, api)
}
