// cmd/api/main.go
package main

import (
	"card-rewards/internal/app"
	"card-rewards/internal/config"
	"card-rewards/internal/handler"
	"card-rewards/internal/observability"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg := config.MustLoad()
	logger := app.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, cfg.OTLPEndpoint, "card-rewards-api")
	if err != nil {
		slog.Error("Не удалось настроить трассировку", "error", err)
		os.Exit(1)
	}

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		slog.Error("Не удалось запустить приложение", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.Deps{
		Auth:      a.Auth,
		Ranking:   a.Ranking,
		UserCards: a.UserCards,
		Recorder:  a.Recorder,
		Catalog:   a.Catalog,
		Tokens:    a.Tokens,
		Metrics:   a.Metrics,
		Ping:      a.Ping,
	})

	// Telegram webhook, если задан токен и внешний адрес
	if cfg.TelegramBotToken != "" && cfg.WebhookBaseURL != "" {
		api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
		if err != nil {
			slog.Error("Не удалось инициализировать Telegram бота", "error", err)
			os.Exit(1)
		}

		webhookURL := cfg.WebhookBaseURL + "/telegram"
		if _, err := api.MakeRequest("setWebhook", tgbotapi.Params{"url": webhookURL}); err != nil {
			slog.Error("Не удалось установить webhook", "error", err)
			os.Exit(1)
		}
		router.POST("/telegram", a.Bot(logger).WebhookHandler(api))
		slog.Info("Telegram webhook установлен", "url", webhookURL)
	}

	srv := &http.Server{
		Addr:              cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("🚀 Сервер запущен", "addr", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Сервер завершил работу с ошибкой", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Останавливаем сервер")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Сервер не остановился вовремя", "error", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("Не удалось выгрузить спаны", "error", err)
	}
}
