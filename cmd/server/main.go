package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"accessrealty/internal/config"
	"accessrealty/internal/handler"
	"accessrealty/internal/middleware"
	"accessrealty/internal/repository"
	"accessrealty/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v78/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Access Realty marketing site",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit))

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.Listings.MLSName,
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer repo.Close()

	logger.Info("Connected to PostgreSQL database", zap.String("mls_name", cfg.Listings.MLSName))

	// Initialize Stripe client. Without a secret key the checkout
	// service still serves the zero-upfront plan; priced plans fail
	// with a configuration error.
	var sessions service.SessionCreator
	if cfg.Stripe.SecretKey != "" {
		api := &client.API{}
		api.Init(cfg.Stripe.SecretKey, nil)
		sessions = api.CheckoutSessions
		logger.Info("Stripe client initialized")
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set, paid checkout is disabled")
	}

	// Initialize services
	listingsService := service.NewListingsService(repo, logger)
	checkoutService := service.NewCheckoutService(cfg.Stripe, sessions, logger)

	// Initialize handlers
	listingsHandler := handler.NewListingsHandler(listingsService, cfg.Listings.DefaultLimit, cfg.Listings.MaxLimit)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	quizHandler := handler.NewQuizHandler()

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.AllowedOrigins, ",")
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "marketing-site",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/listings", listingsHandler.List)
		apiV1.GET("/listings/:id", listingsHandler.Get)
		apiV1.GET("/agents/:agent_id/closed-deals", listingsHandler.ClosedDeals)

		apiV1.GET("/quiz/questions", quizHandler.Questions)

		apiV1.POST("/checkout/session", checkoutHandler.CreateSession)
	}

	// Serve static files (frontend)
	// Implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router, logger)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server", zap.String("addr", addr))

	go func() {
		if err := router.Run(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server stopped")
}

func buildLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
