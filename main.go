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

	"github.com/sporthub/sporthub-api/internal/di"
	"github.com/sporthub/sporthub-api/internal/domain"
	"github.com/sporthub/sporthub-api/internal/metrics"
	"github.com/sporthub/sporthub-api/pkg/config"
	"github.com/sporthub/sporthub-api/pkg/database"
	"github.com/sporthub/sporthub-api/pkg/logger"
	"github.com/sporthub/sporthub-api/pkg/middleware"
	pkgredis "github.com/sporthub/sporthub-api/pkg/redis"
	"github.com/sporthub/sporthub-api/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       cfg.App.Environment,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting SportHub API...")

	ctx := context.Background()

	// Initialize tracing
	_, err = telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	})
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Telemetry init failed: %v", err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = telemetry.Shutdown(shutdownCtx)
	}()

	if err := metrics.Init(); err != nil {
		appLog.Warn(fmt.Sprintf("Metrics init failed: %v", err))
	}

	// Initialize database connection
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxOpenConns),
		MinConns:        int32(cfg.Database.MinIdleConns),
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  10 * time.Second,
		MaxRetries:      3,
		RetryInterval:   2 * time.Second,
		EnableTracing:   cfg.OTel.Enabled,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

	// Redis is optional: without it the event cache is skipped
	var redisClient *pkgredis.Client
	redisCfg := &pkgredis.Config{
		Host:          cfg.Redis.Host,
		Port:          cfg.Redis.Port,
		Password:      cfg.Redis.Password,
		DB:            cfg.Redis.DB,
		PoolSize:      cfg.Redis.PoolSize,
		MinIdleConns:  cfg.Redis.MinIdleConns,
		DialTimeout:   cfg.Redis.DialTimeout,
		ReadTimeout:   cfg.Redis.ReadTimeout,
		WriteTimeout:  cfg.Redis.WriteTimeout,
		MaxRetries:    3,
		RetryInterval: time.Second,
	}
	redisClient, err = pkgredis.NewClient(ctx, redisCfg)
	if err != nil {
		appLog.Warn(fmt.Sprintf("Redis connection failed, running without event cache: %v", err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLog.Info("Redis connected")
	}

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
	})

	router := setupRouter(cfg, container)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	go func() {
		appLog.Info(fmt.Sprintf("SportHub API listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	appLog.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, container *di.Container) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		gin.DisableConsoleColor()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestMetricsMiddleware())
	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware(cfg.OTel.ServiceName))
	}

	// Health check endpoints
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	jwtCfg := &middleware.JWTConfig{Secret: cfg.JWT.Secret}
	authed := middleware.JWTMiddleware(jwtCfg)
	optionalAuth := middleware.OptionalJWTMiddleware(jwtCfg)

	admin := string(domain.RoleAdmin)
	organizer := string(domain.RoleOrganizer)
	teamManager := string(domain.RoleTeamManager)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", container.AuthHandler.Register)
			auth.POST("/login", container.AuthHandler.Login)
			auth.GET("/me", authed, container.AuthHandler.Me)
		}

		events := v1.Group("/events")
		{
			events.GET("", container.EventHandler.List)
			events.GET("/:id", optionalAuth, container.EventHandler.Get)
			events.GET("/:id/registration", authed, container.EventHandler.RegistrationStatus)
			events.GET("/:id/feedback", container.FeedbackHandler.ListFeedback)
			events.GET("/:id/results", container.FeedbackHandler.ListResults)
			events.POST("/:id/feedback", authed, container.FeedbackHandler.CreateFeedback)
			events.POST("/:id/results", authed, middleware.RequireRole(admin, organizer), container.FeedbackHandler.CreateResult)

			events.POST("", authed, middleware.RequireRole(admin, organizer), container.EventHandler.Create)
			events.PUT("/:id", authed, middleware.RequireRole(admin, organizer), container.EventHandler.Update)
			events.DELETE("/:id", authed, middleware.RequireRole(admin, organizer), container.EventHandler.Delete)
			events.GET("/:id/registrations", authed, middleware.RequireRole(admin, organizer), container.RegistrationHandler.ListByEvent)
		}

		registrations := v1.Group("/registrations", authed)
		{
			registrations.POST("", container.RegistrationHandler.Create)
			registrations.GET("/my", container.RegistrationHandler.My)
			registrations.GET("/:id/payment", container.PaymentHandler.GetByRegistration)
			registrations.PUT("/:id/status", middleware.RequireRole(admin, organizer), container.RegistrationHandler.UpdateStatus)
		}

		teams := v1.Group("/teams", authed)
		{
			teams.GET("", container.TeamHandler.List)
			teams.GET("/my", container.TeamHandler.My)
			teams.GET("/:id", container.TeamHandler.Get)
			teams.GET("/:id/members", container.TeamHandler.Members)

			teams.POST("", middleware.RequireRole(teamManager, admin), container.TeamHandler.Create)
			teams.PUT("/:id", middleware.RequireRole(teamManager, admin), container.TeamHandler.Update)
			teams.DELETE("/:id", middleware.RequireRole(teamManager, admin), container.TeamHandler.Delete)
			teams.POST("/:id/members", middleware.RequireRole(teamManager, admin), container.TeamHandler.AddMember)
			teams.DELETE("/:id/members/:user_id", container.TeamHandler.RemoveMember)
		}

		payments := v1.Group("/payments", authed)
		{
			payments.POST("", container.PaymentHandler.Create)
		}

		stats := v1.Group("/stats", authed, middleware.RequireRole(admin))
		{
			stats.GET("/overview", container.StatsHandler.Overview)
		}
	}

	return router
}

// requestMetricsMiddleware records per-route request duration
func requestMetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordRequestDuration(c.Request.Context(), c.Request.Method+" "+route, time.Since(start).Seconds())
	}
}
