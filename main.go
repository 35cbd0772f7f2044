package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-service/common/logger"
	"storefront-service/controllers"
	"storefront-service/database"
	aws_pkg "storefront-service/pkg/aws"
	"storefront-service/repository"
	"storefront-service/routes"
	"storefront-service/services"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger.Initialize(cfg.Env)
	defer zap.L().Sync()

	// --- Data stores ---

	mongoClient, mongoDB, err := database.ConnectMongo(cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	pgDB, err := database.ConnectPostgres(database.PostgresConfig{
		Host:     cfg.PGHost,
		Port:     cfg.PGPort,
		User:     cfg.PGUser,
		Password: cfg.PGPass,
		DBName:   cfg.PGName,
	})
	if err != nil {
		zap.L().Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	var sessionStore repository.SessionStore
	var catalogCache *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			zap.L().Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		sessionStore = repository.NewRedisSessionStore(redisClient)
		catalogCache = redisClient
	} else {
		zap.L().Warn("REDIS_URL not set, using in-memory checkout sessions")
		sessionStore = repository.NewMemorySessionStore()
	}

	awsCfg, err := aws_pkg.LoadAWSConfig(context.Background())
	if err != nil {
		zap.L().Fatal("Failed to load AWS config", zap.Error(err))
	}
	imageStore := aws_pkg.NewImageStore(awsCfg, cfg.S3Bucket, cfg.S3Prefix, cfg.S3PublicURL)

	// --- Services ---

	productRepo := repository.NewMongoProductRepo(mongoDB)
	adminRepo := repository.NewAdminUserRepository(pgDB)

	catalogService := services.NewCatalogService(productRepo, catalogCache)

	var notifier services.OrderNotifier
	if cfg.OrderTopicARN != "" {
		notifier = services.NewSNSNotifier(sns.NewFromConfig(awsCfg), cfg.OrderTopicARN)
	} else {
		notifier = services.NewLogNotifier()
	}
	orderService := services.NewOrderService(productRepo, notifier, cfg.SupportContact)
	checkoutService := services.NewCheckoutService(catalogService, orderService, sessionStore)

	tokenService := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(adminRepo, tokenService)
	if err := authService.SeedInitialAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		zap.L().Fatal("Failed to seed admin account", zap.Error(err))
	}

	// --- Controllers ---

	productController := controllers.NewProductController(catalogService)
	checkoutController := controllers.NewCheckoutController(checkoutService)
	orderController := controllers.NewOrderController(orderService)
	authController := controllers.NewAuthController(authService, tokenService)
	uploadController := controllers.NewUploadController(imageStore)

	// --- HTTP server ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	routes.RegisterRoutes(r, productController, checkoutController, orderController, authController, uploadController, tokenService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Storefront service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down storefront service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := database.CloseMongo(mongoClient); err != nil {
		zap.L().Error("Failed to close MongoDB", zap.Error(err))
	}

	zap.L().Info("Storefront service stopped gracefully")
}
