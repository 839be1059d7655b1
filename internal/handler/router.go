package handler

import (
	"card-rewards/internal/auth"
	"card-rewards/internal/metrics"
	"card-rewards/internal/middleware"
	"card-rewards/internal/service"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	Auth      *service.AuthService
	Ranking   *service.RankingService
	UserCards *service.UserCardService
	Recorder  *service.Recorder
	Catalog   *service.CatalogService
	Tokens    *auth.TokenService
	Metrics   *metrics.Metrics

	// Ping проверяет хранилище для /health; nil: не проверять
	Ping func(ctx context.Context) error
}

func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Trace(), middleware.Observe(d.Metrics))

	router.GET("/health", health(d.Ping))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Metrics.Registry, promhttp.HandlerOpts{})))

	authHandler := NewAuthHandler(d.Auth)
	rankingHandler := NewRankingHandler(d.Ranking)
	userCardHandler := NewUserCardHandler(d.UserCards)
	transactionHandler := NewTransactionHandler(d.Recorder)
	catalogHandler := NewCatalogHandler(d.Catalog)
	authMiddleware := middleware.NewAuthMiddleware(d.Tokens)

	v1 := router.Group("/api/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	user := v1.Group("")
	user.Use(authMiddleware.RequireAuth())
	{
		user.POST("/rank", rankingHandler.Rank)

		user.GET("/cards", userCardHandler.List)
		user.POST("/cards", userCardHandler.Add)
		user.DELETE("/cards/:id", userCardHandler.Remove)

		user.POST("/transactions", transactionHandler.Record)

		user.GET("/catalog/banks", catalogHandler.ListBanks)
		user.GET("/catalog/categories", catalogHandler.ListCategories)
		user.GET("/catalog/cards", catalogHandler.ListCards)
		user.GET("/catalog/cards/:id/rules", catalogHandler.ListRules)
	}

	admin := v1.Group("/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	{
		admin.POST("/banks", catalogHandler.CreateBank)
		admin.PUT("/banks/:id", catalogHandler.RenameBank)
		admin.DELETE("/banks/:id", catalogHandler.DeleteBank)

		admin.POST("/categories", catalogHandler.CreateCategory)
		admin.PUT("/categories/:id", catalogHandler.RenameCategory)
		admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)
		admin.POST("/categories/:id/subcategories", catalogHandler.CreateSubCategory)
		admin.DELETE("/categories/:id/subcategories/:sub_id", catalogHandler.DeleteSubCategory)

		admin.POST("/cards", catalogHandler.CreateCard)
		admin.PUT("/cards/:id", catalogHandler.UpdateCard)
		admin.DELETE("/cards/:id", catalogHandler.DeleteCard)

		admin.POST("/rules", catalogHandler.CreateRule)
		admin.PUT("/rules/:id", catalogHandler.UpdateRule)
		admin.DELETE("/rules/:id", catalogHandler.DeleteRule)
	}

	return router
}

func health(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
