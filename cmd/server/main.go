package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/TungTran2095/medform/internal/config"
	"github.com/TungTran2095/medform/internal/middleware"
	"github.com/TungTran2095/medform/internal/plan/entity"
	"github.com/TungTran2095/medform/internal/plan/handler"
	"github.com/TungTran2095/medform/internal/plan/repository"
	"github.com/TungTran2095/medform/internal/plan/service"
	"github.com/TungTran2095/medform/internal/shared/gemini"
	"github.com/TungTran2095/medform/internal/shared/storage"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting medform service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// The don_vi reference table is externally owned and never migrated here.
	if err := db.AutoMigrate(&entity.PlanSubmission{}); err != nil {
		zapLogger.Warn("AutoMigrate plan_submissions warning", zap.Error(err))
	}
	db.Exec("CREATE INDEX IF NOT EXISTS idx_plan_submissions_created_at ON plan_submissions(created_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_plan_submissions_unit_name ON plan_submissions(unit_name)")

	// Redis-backed summary cache; falls back to process memory when absent.
	var summaryCache service.SummaryCache
	if cfg.Redis.Host != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			zapLogger.Warn("Redis unavailable, caching summaries in memory", zap.Error(err))
		} else {
			summaryCache = service.NewRedisSummaryCache(rdb)
		}
	}

	var uploader *storage.Uploader
	if cfg.MinIO.Endpoint != "" {
		uploader, err = storage.NewUploader(storage.Config{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			Bucket:    cfg.MinIO.Bucket,
			UseSSL:    cfg.MinIO.UseSSL,
			PublicURL: cfg.MinIO.PublicURL,
		})
		if err != nil {
			zapLogger.Warn("MinIO unavailable, attachments disabled", zap.Error(err))
			uploader = nil
		}
	}

	var aiClient *gemini.Client
	if cfg.GenAI.APIKey != "" {
		aiClient, err = gemini.NewClient(context.Background(), cfg.GenAI.APIKey, cfg.GenAI.Model)
		if err != nil {
			zapLogger.Warn("GenAI unavailable, AI features disabled", zap.Error(err))
			aiClient = nil
		}
	}

	subRepo := repository.NewSubmissionRepository(db)
	unitRepo := repository.NewUnitRepository(db)

	// A nil interface must stay nil when the client is absent.
	var textGen service.TextGenerator
	if aiClient != nil {
		textGen = aiClient
	}
	services := service.NewServices(subRepo, unitRepo, textGen, summaryCache, zapLogger)

	var assist handler.AIClient
	if aiClient != nil {
		assist = aiClient
	}
	handlers := handler.NewHandlers(services, unitRepo, uploader, assist)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func registerRoutes(router *gin.Engine, h *handler.Handlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": Version})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/plans", h.Submission.Create)
		api.GET("/plans/:id", h.Submission.Detail)

		api.GET("/units", h.Unit.List)
		api.POST("/uploads", h.Upload.Upload)

		api.GET("/dashboard", h.Dashboard.View)
		api.POST("/dashboard/summaries/:category", h.Dashboard.Summarize)
		api.GET("/dashboard/export", h.Dashboard.Export)

		api.POST("/ai/initiatives", h.AI.Initiatives)
		api.POST("/ai/kpis", h.AI.KPIs)
	}
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}
