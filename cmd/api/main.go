package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/izmirulasim/talep-takip-api/api/swagger"
	"github.com/izmirulasim/talep-takip-api/internal/handler"
	"github.com/izmirulasim/talep-takip-api/internal/middleware"
	"github.com/izmirulasim/talep-takip-api/internal/repository"
	"github.com/izmirulasim/talep-takip-api/internal/service"
	"github.com/izmirulasim/talep-takip-api/pkg/cache"
	"github.com/izmirulasim/talep-takip-api/pkg/config"
	"github.com/izmirulasim/talep-takip-api/pkg/database"
	"github.com/izmirulasim/talep-takip-api/pkg/logger"
	corsmiddleware "github.com/izmirulasim/talep-takip-api/pkg/middleware/cors"
	reqidmiddleware "github.com/izmirulasim/talep-takip-api/pkg/middleware/requestid"
)

// @title Talep Takip API
// @version 1.0.0
// @description İzmir toplu ulaşım talep takip servisi
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database connection failed", "error", err)
	}
	defer db.Close() //nolint:errcheck

	bootCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.Migrate(bootCtx, db); err != nil {
		logr.Sugar().Fatalw("migration failed", "error", err)
	}

	validate := validator.New()

	kullaniciRepo := repository.NewKullaniciRepository(db)
	talepRepo := repository.NewTalepRepository(db)

	kullaniciSvc := service.NewKullaniciService(kullaniciRepo, validate, logr, cfg.Seed.AdminUsername)
	if err := kullaniciSvc.EnsureDefaultAdmin(bootCtx, cfg.Seed.AdminPassword); err != nil {
		logr.Sugar().Fatalw("admin seed failed", "error", err)
	}

	var store *cache.Store
	if cfg.Dashboard.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
		} else {
			store = cache.NewStore(redisClient)
			defer redisClient.Close() //nolint:errcheck
		}
	}

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(kullaniciRepo, validate, logr)
	talepSvc := service.NewTalepService(talepRepo, validate, logr)
	raporSvc := service.NewRaporService(talepRepo, validate, logr)
	exportSvc := service.NewExportService(nil, nil, logr)
	dashboardSvc := service.NewDashboardService(talepRepo, store, metricsSvc, logr, cfg.Dashboard.CacheTTL, cfg.Dashboard.CacheEnabled)

	authHandler := handler.NewAuthHandler(authSvc)
	kullaniciHandler := handler.NewKullaniciHandler(kullaniciSvc)
	talepHandler := handler.NewTalepHandler(talepSvc, dashboardSvc)
	raporHandler := handler.NewRaporHandler(raporSvc, exportSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		auth.Use(limiter.Handler())
	}
	auth.POST("/login", authHandler.Login)

	kullanicilar := api.Group("/kullanicilar")
	kullanicilar.GET("", kullaniciHandler.List)
	kullanicilar.POST("", kullaniciHandler.Create)
	kullanicilar.PUT("/:id", kullaniciHandler.Update)
	kullanicilar.DELETE("/:id", kullaniciHandler.Delete)

	talepler := api.Group("/talepler")
	talepler.GET("", talepHandler.List)
	talepler.POST("", talepHandler.Create)
	talepler.POST("/bulk", talepHandler.BulkCreate)
	talepler.POST("/rapor", raporHandler.Generate)
	talepler.POST("/rapor/export", raporHandler.Export)
	talepler.PUT("/:id", talepHandler.Update)
	talepler.DELETE("/:id", talepHandler.Delete)
	talepler.GET("/:id/logs", talepHandler.Logs)

	api.GET("/dashboard/ozet", dashboardHandler.Ozet)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
