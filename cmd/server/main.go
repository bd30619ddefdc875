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

	applpeople "github.com/peoplemanager/backend/internal/application/people"
	"github.com/peoplemanager/backend/internal/infrastructure/auth"
	"github.com/peoplemanager/backend/internal/infrastructure/config"
	"github.com/peoplemanager/backend/internal/infrastructure/logger"
	"github.com/peoplemanager/backend/internal/infrastructure/persistence"
	"github.com/peoplemanager/backend/internal/interfaces/http/handler"
	"github.com/peoplemanager/backend/internal/interfaces/http/middleware"
	"github.com/peoplemanager/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.NewFromAppConfig(cfg.App.Env, cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting people manager",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database with zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()
	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("dbname", cfg.Database.DBName),
	)

	// Initialize repositories
	personRepo := persistence.NewGormPersonRepository(db.DB)
	uow := persistence.NewGormUnitOfWork(db.DB)

	// Initialize JWT service and token blacklist
	jwtService := auth.NewJWTService(cfg.JWT)

	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis for token blacklist", zap.Error(err))
		}
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Failed to close Redis client", zap.Error(err))
			}
		}()
		blacklist = redisBlacklist
		log.Info("Token blacklist enabled (Redis)",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Info("Token blacklist enabled (in-memory)")
	}

	// Initialize services
	personService := applpeople.NewPersonService(uow, personRepo, log.Named("person_service"))
	authService := applpeople.NewAuthService(personRepo, jwtService, blacklist, log.Named("auth_service"))

	// Initialize handlers
	personHandler := handler.NewPersonHandler(personService)
	authHandler := handler.NewAuthHandler(authService)

	// Configure gin
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	// Global middleware
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		MaxAge:       12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health checks, unauthenticated
	engine.GET("/health", healthHandler(db, log))
	engine.GET("/api/v1/health", healthHandler(db, log))

	// API routes
	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log.Named("jwt_middleware")
	jwtAuth := middleware.JWTAuthMiddlewareWithConfig(jwtConfig)

	peopleGroup := router.NewDomainGroup("people", "/people").
		Use(jwtAuth).
		POST("", personHandler.Create).
		GET("", personHandler.List).
		GET("/:id", personHandler.GetByID).
		GET("/by-cpf/:cpf", personHandler.GetByCPF).
		PATCH("/:id", personHandler.Update).
		DELETE("/:id", personHandler.Delete)

	authGroup := router.NewDomainGroup("auth", "/auth").
		Use(jwtAuth)
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authGroup = authGroup.Use(middleware.AuthRateLimit(authLimiter))
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}
	authGroup = authGroup.
		POST("/login", authHandler.Login).
		POST("/logout", authHandler.Logout).
		GET("/me", authHandler.Me)

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(peopleGroup).
		Register(authGroup).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("Shutting down server", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// healthHandler reports service and database health
func healthHandler(db *persistence.Database, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			log.Error("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().UTC().Format(time.RFC3339),
				"database": "unreachable",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().UTC().Format(time.RFC3339),
			"database": "connected",
		})
	}
}
