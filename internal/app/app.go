// Package app собирает зависимости, общие для API и бота.
package app

import (
	"card-rewards/internal/auth"
	"card-rewards/internal/bot"
	"card-rewards/internal/config"
	"card-rewards/internal/display"
	"card-rewards/internal/events"
	"card-rewards/internal/metrics"
	"card-rewards/internal/resilience"
	"card-rewards/internal/rewards"
	"card-rewards/internal/service"
	"card-rewards/internal/storage/cached"
	"card-rewards/internal/storage/postgres"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
)

type App struct {
	Pool    *pgxpool.Pool
	Metrics *metrics.Metrics
	Tokens  *auth.TokenService
	Format  *display.Formatter

	Auth      *service.AuthService
	Ranking   *service.RankingService
	UserCards *service.UserCardService
	Recorder  *service.Recorder
	Catalog   *service.CatalogService

	rules *cached.RuleRepository
	bus   *events.Bus
	sub   *nats.Subscription
	retry resilience.Config
}

// SetupLogger: текстовый slog в stdout с уровнем из конфига.
func SetupLogger(cfg config.Config) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// New подключается к БД (и к NATS, если задан) и собирает сервисы.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	pool, err := pgxpool.New(ctx, cfg.DBConn)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	a := &App{
		Pool:    pool,
		Metrics: metrics.NewMetrics(),
		Tokens:  auth.NewTokenService(cfg),
		Format:  display.NewFormatter(cfg.CurrencySymbol),
		retry:   resilience.Config{MaxRetries: cfg.MaxRetries, InitialBackoff: cfg.InitialBackoff},
	}

	store := postgres.NewStorage(pool)
	a.rules = cached.NewRuleRepository(store, cfg.RuleCacheTTL, a.Metrics)

	var publisher service.RuleChangePublisher = events.Nop{}
	if cfg.NATSURL != "" {
		bus, err := events.Connect(cfg.NATSURL, cfg.NATSToken)
		if err != nil {
			pool.Close()
			return nil, err
		}
		sub, err := bus.SubscribeRulesChanged(func(cardIDs []int64) {
			a.rules.Invalidate(cardIDs...)
		})
		if err != nil {
			bus.Close()
			pool.Close()
			return nil, err
		}
		a.bus, a.sub, publisher = bus, sub, bus
		logger.Info("rule changes are shared via nats", "url", cfg.NATSURL)
	}

	ranker := rewards.NewRanker(a.rules, store, logger)

	a.Auth = service.NewAuthService(store, a.Tokens)
	a.Ranking = service.NewRankingService(store, store, store, ranker, a.Format, a.Metrics)
	a.UserCards = service.NewUserCardService(store, store)
	a.Recorder = service.NewRecorder(store, store, a.rules, store, a.Metrics, logger)
	a.Catalog = service.NewCatalogService(service.CatalogDeps{
		Banks:      store,
		Categories: store,
		Cards:      store,
		Rules:      store,
		Catalog:    store,
		RuleReader: a.rules,
		Cache:      a.rules,
		Publisher:  publisher,
		Logger:     logger,
	})

	if cfg.AdminEmail != "" {
		if err := a.Auth.SeedAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			a.Close()
			return nil, fmt.Errorf("seed admin: %w", err)
		}
		logger.Info("admin account ready", "email", cfg.AdminEmail)
	}

	return a, nil
}

// Bot: Telegram-бот поверх тех же сервисов.
func (a *App) Bot(logger *slog.Logger) *bot.Bot {
	return bot.New(bot.Services{
		Auth:      a.Auth,
		Ranking:   a.Ranking,
		UserCards: a.UserCards,
		Catalog:   a.Catalog,
	}, a.Format, a.retry, logger)
}

func (a *App) Ping(ctx context.Context) error {
	return a.Pool.Ping(ctx)
}

func (a *App) Close() {
	if a.sub != nil {
		_ = a.sub.Unsubscribe()
	}
	if a.bus != nil {
		a.bus.Close()
	}
	a.rules.Close()
	a.Pool.Close()
}
