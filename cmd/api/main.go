package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bazarly/storefront_api/internal/cache"
	"github.com/bazarly/storefront_api/internal/config"
	"github.com/bazarly/storefront_api/internal/database"
	"github.com/bazarly/storefront_api/internal/handler"
	"github.com/bazarly/storefront_api/internal/middleware"
	"github.com/bazarly/storefront_api/internal/repository"
	"github.com/bazarly/storefront_api/internal/service"
	"github.com/bazarly/storefront_api/internal/utils"
	"github.com/bazarly/storefront_api/internal/worker"
)

// main is the application entrypoint for the storefront API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting storefront api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 3c. Initialize catalog cache
	catalogCache := cache.NewCatalogCache(redisClient)

	// 4. Install JWT secret
	utils.SetJWTSecret(cfg.JWTSecret)

	// 5. Initialize repositories
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)

	// 6. Initialize services
	catalogSvc := service.NewCatalogService(productRepo, categoryRepo, catalogCache, cfg.Search.Limit)
	dealsSvc := service.NewDealsService(productRepo, catalogCache)
	adminAuthSvc := service.NewAdminAuthService(adminRepo)
	mgmtSvc := service.NewCatalogManagementService(productRepo, categoryRepo, catalogCache)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:            handler.NewHealthHandler(db),
		Search:            handler.NewSearchHandler(catalogSvc),
		Product:           handler.NewProductHandler(catalogSvc),
		Category:          handler.NewCategoryHandler(catalogSvc),
		Deals:             handler.NewDealsHandler(dealsSvc),
		Auth:              handler.NewAuthHandler(adminAuthSvc),
		CatalogManagement: handler.NewCatalogManagementHandler(mgmtSvc),
	}

	// 8. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware()
	loginLimiter := middleware.NewLoginRateLimiter()

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw, loginLimiter)

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start workers
	go worker.NewCategoryCountWorker(categoryRepo, catalogCache, cfg.Worker.CategoryCountInterval).Start(ctx)

	// 12. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health            *handler.HealthHandler
	Search            *handler.SearchHandler
	Product           *handler.ProductHandler
	Category          *handler.CategoryHandler
	Deals             *handler.DealsHandler
	Auth              *handler.AuthHandler
	CatalogManagement *handler.CatalogManagementHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware, loginLimiter *middleware.LoginRateLimiter) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Storefront routes (public, bare JSON responses)
	api := router.Group("/api")
	{
		api.GET("/search", handlers.Search.Search)
		api.GET("/products", handlers.Product.GetProducts)
		api.GET("/categories", handlers.Category.GetCategories)
		api.GET("/deals", handlers.Deals.GetDeals)
	}

	// Admin routes
	admin := router.Group("/v1/admin")
	admin.POST("/auth/login", loginLimiter.Handle(), handlers.Auth.Login)
	admin.Use(jwtMiddleware.Handle())
	{
		// Product Management
		admin.POST("/products", handlers.CatalogManagement.CreateProduct)
		admin.GET("/products/:id", handlers.CatalogManagement.GetProduct)
		admin.PUT("/products/:id", handlers.CatalogManagement.UpdateProduct)
		admin.PATCH("/products/:id/status", handlers.CatalogManagement.UpdateProductStatus)
		admin.DELETE("/products/:id", handlers.CatalogManagement.DeleteProduct)

		// Category Management
		admin.GET("/categories", handlers.CatalogManagement.ListCategories)
		admin.POST("/categories", handlers.CatalogManagement.CreateCategory)
		admin.PUT("/categories/:id", handlers.CatalogManagement.UpdateCategory)
		admin.DELETE("/categories/:id", handlers.CatalogManagement.DeleteCategory)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
