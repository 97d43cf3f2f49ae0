package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"folio-be/internal/cache"
	"folio-be/internal/config"
	"folio-be/internal/controllers"
	"folio-be/internal/database"
	"folio-be/internal/hash"
	"folio-be/internal/middleware"
	"folio-be/internal/repository"
	"folio-be/internal/service"
	"folio-be/internal/token"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	// Connect to database
	db, err := database.NewConnection(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without cache")
			cacheClient = nil
		} else {
			log.Info().Msg("connected to Redis cache")
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	assetRepo := repository.NewAssetRepository(db)

	// Initialize token service and hasher
	tokenService := token.NewService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)
	hasher := hash.NewBcryptHasher()

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, tokenService)
	portfolioService := service.NewPortfolioService(assetRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	portfolioController := controllers.NewPortfolioController(portfolioService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()
	router.Use(generalRateLimiter.LimitMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	authenticated := middleware.AuthMiddleware(tokenService, userRepo)

	users := router.Group("/users")
	{
		// Credential endpoints get the stricter limiter
		users.POST("/register", authRateLimiter.LimitMiddleware(), authController.Register)
		users.POST("/login", authRateLimiter.LimitMiddleware(), authController.Login)

		users.GET("/me", authenticated, authController.Me)
		users.PUT("/profile", authenticated, authController.UpdateProfile)
	}

	portfolio := router.Group("/portfolio")
	portfolio.Use(authenticated)
	{
		portfolio.GET("", portfolioController.List)
		portfolio.POST("", portfolioController.Create)
		portfolio.GET("/:id", portfolioController.Get)
		portfolio.PUT("/:id", portfolioController.Update)
		portfolio.DELETE("/:id", portfolioController.Delete)
	}

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("server starting")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
