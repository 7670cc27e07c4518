package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appfulfillment "github.com/storefront/backoffice/internal/application/fulfillment"
	"github.com/storefront/backoffice/internal/infrastructure/cache"
	"github.com/storefront/backoffice/internal/infrastructure/config"
	"github.com/storefront/backoffice/internal/infrastructure/event"
	"github.com/storefront/backoffice/internal/infrastructure/logger"
	"github.com/storefront/backoffice/internal/infrastructure/persistence"
	"github.com/storefront/backoffice/internal/interfaces/http/handler"
	"github.com/storefront/backoffice/internal/interfaces/http/middleware"
	"github.com/storefront/backoffice/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting fulfillment backoffice",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with a GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	// Application services
	workflowService := appfulfillment.NewWorkflowService(orderRepo, log)

	// Order snapshot cache: redis when configured, in-process otherwise
	if cfg.Redis.Enabled {
		snapshotCache, err := cache.NewRedisSnapshotCache(cache.RedisConfig{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Cache.SnapshotTTL, log)
		if err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer func() {
			if err := snapshotCache.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}()
		workflowService.SetSnapshotCache(snapshotCache)
		log.Info("Redis snapshot cache enabled",
			zap.String("addr", cfg.Redis.Addr()),
			zap.Duration("ttl", cfg.Cache.SnapshotTTL),
		)
	} else {
		workflowService.SetSnapshotCache(cache.NewInMemorySnapshotCache(cfg.Cache.SnapshotTTL))
		log.Info("In-memory snapshot cache enabled", zap.Duration("ttl", cfg.Cache.SnapshotTTL))
	}

	// Event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)

	auditHandler := appfulfillment.NewTransitionAuditHandler(log)
	eventBus.Subscribe(auditHandler)
	log.Info("Event handlers registered",
		zap.Strings("transition_audit_events", auditHandler.EventTypes()),
	)

	workflowService.SetEventPublisher(eventBus)

	// HTTP handlers
	orderHandler := handler.NewOrderHandler(workflowService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so recovery and logging can tag
	// their output with it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(orderHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports process and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
