package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	groceryHandler "nutriplan-api/internal/api/handlers/grocery"
	"nutriplan-api/internal/api/handlers/health"
	mealplanHandler "nutriplan-api/internal/api/handlers/mealplan"
	nutritionHandler "nutriplan-api/internal/api/handlers/nutrition"
	scannerHandler "nutriplan-api/internal/api/handlers/scanner"
	"nutriplan-api/internal/api/middleware"
	"nutriplan-api/internal/core/ai/cache"
	"nutriplan-api/internal/core/ai/service"
	"nutriplan-api/internal/core/grocery"
	"nutriplan-api/internal/core/mealplan"
	"nutriplan-api/internal/core/nutrition"
	"nutriplan-api/internal/core/scanner"
	"nutriplan-api/internal/infrastructure/config"
	"nutriplan-api/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	timeoutDuration = 120 * time.Second
	// Meal-plan text is the largest accepted body; 1MB is already generous.
	maxBodySize = 1 << 20
)

// SetupRouter wires middleware, services and routes.
func SetupRouter(cfg *config.Config, cacheManager *cache.CacheManager) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))
	router.Use(middleware.Deduplication(cfg))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.Bool("ai_enabled", cfg.OpenRouter.Enabled),
		zap.String("model", cfg.OpenRouter.Model),
	)

	aiService, err := service.NewService(cfg, cacheManager)
	if err != nil || aiService == nil {
		common.LogError("Failed to initialize AI service", zap.Error(err))
		return nil, fmt.Errorf("failed to initialize AI service: %w", err)
	}

	lexicon := grocery.NewLexicon()
	grocerySvc := grocery.NewService(lexicon)

	productCache, err := scanner.NewProductCache(&cfg.Redis)
	if err != nil {
		common.LogError("Failed to initialize product cache", zap.Error(err))
		return nil, fmt.Errorf("failed to initialize product cache: %w", err)
	}
	scannerClient := scanner.NewClient(cfg, productCache)
	analyzer := scanner.NewAnalyzer(scannerClient)

	mealplanSvc := mealplan.NewService(aiService)
	nutritionSvc := nutrition.NewService(aiService)

	// Request timeout plus context injection for the health handler.
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		if cacheManager != nil {
			c.Set("cache_stats", cacheManager)
		}

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	api := router.Group("/api")
	{
		groceryH := groceryHandler.NewHandler(grocerySvc)
		api.POST("/grocery-list", groceryH.HandleGenerate)
		api.POST("/grocery-list/update-checks", groceryH.HandleUpdateChecks)

		scannerH := scannerHandler.NewHandler(analyzer, scannerClient)
		scannerGroup := api.Group("/food-scanner")
		{
			scannerGroup.GET("/product/:barcode", scannerH.HandleProduct)
			scannerGroup.GET("/search/:query", scannerH.HandleSearch)
			scannerGroup.POST("/compare", scannerH.HandleCompare)
			scannerGroup.GET("/nutrition-facts/:barcode", scannerH.HandleNutritionFacts)
		}

		mealplanH := mealplanHandler.NewHandler(mealplanSvc)
		api.POST("/meal-plan/generate", mealplanH.HandleGeneratePlan)
		api.POST("/recipes/generate", mealplanH.HandleGenerateRecipe)

		nutritionH := nutritionHandler.NewHandler(nutritionSvc)
		api.POST("/nutrition/estimate", nutritionH.HandleEstimate)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("product_cache_enabled", productCache != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
