package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tradejournal/internal/config"
	"github.com/tradejournal/internal/events"
	"github.com/tradejournal/internal/handler"
	"github.com/tradejournal/internal/middleware"
	"github.com/tradejournal/internal/models"
	"github.com/tradejournal/internal/repository"
	"github.com/tradejournal/internal/service"
	"github.com/tradejournal/internal/worker"
)

// Build info (injected at build time via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize rotating request log
	if err := middleware.InitLogger(cfg.Log.Dir); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize database
	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis
	rdb := initRedis(cfg)

	// Auto migrate database
	if err := autoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	// Initialize event hub
	hub := events.NewHub()
	go hub.Run()

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWT)
	statsService := service.NewStatsService(tradeRepo, rdb, time.Duration(cfg.Journal.StatsCacheTTLSecond)*time.Second)
	profileService := service.NewProfileService(profileRepo, hub, cfg.Journal)
	accountService := service.NewAccountService(accountRepo)
	journalService := service.NewJournalService(tradeRepo, profileRepo, statsService, hub)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	journalHandler := handler.NewJournalHandler(journalService)
	statsHandler := handler.NewStatsHandler(statsService)
	profileHandler := handler.NewProfileHandler(profileService, accountService)

	// Create Gin router
	router := gin.Default()

	// Add request logging middleware (logs all requests with error details)
	router.Use(middleware.RequestLoggerMiddleware())

	// Add CORS middleware
	router.Use(corsMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"version":    Version,
			"commit":     Commit,
			"build_time": BuildTime,
			"time":       time.Now().Unix(),
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		authHandler.RegisterRoutes(v1)

		authMiddleware := middleware.AuthMiddleware(authService)

		// Journal routes (protected)
		journalHandler.RegisterRoutes(v1, authMiddleware)

		// Stats routes (protected)
		statsHandler.RegisterRoutes(v1, authMiddleware)

		// Profile and account routes (protected)
		profileHandler.RegisterRoutes(v1, authMiddleware)

		// Live journal events (protected)
		v1.GET("/events/ws", authMiddleware, func(c *gin.Context) {
			hub.ServeWS(c, middleware.GetUserID(c))
		})
	}

	// Start stats refresh worker
	statsWorker := worker.NewStatsWorker(statsService, userRepo, time.Duration(cfg.Journal.StatsCacheTTLSecond)*time.Second)
	go statsWorker.Start()

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Stop the stats worker
	statsWorker.Stop()

	// Graceful shutdown with 10 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close Redis connection
	if err := rdb.Close(); err != nil {
		log.Printf("Error closing Redis connection: %v", err)
	}

	log.Println("Server exited properly")
}

func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.Mode == "release" {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Account{},
		&models.Trade{},
	)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
