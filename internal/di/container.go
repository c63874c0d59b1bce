package di

import (
	"github.com/sporthub/sporthub-api/internal/gateway"
	"github.com/sporthub/sporthub-api/internal/handler"
	"github.com/sporthub/sporthub-api/internal/repository"
	"github.com/sporthub/sporthub-api/internal/service"
	"github.com/sporthub/sporthub-api/pkg/config"
	"github.com/sporthub/sporthub-api/pkg/database"
	"github.com/sporthub/sporthub-api/pkg/redis"
)

// Container holds all dependencies for the API
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Repositories
	UserRepo         repository.UserRepository
	EventRepo        repository.EventRepository
	TeamRepo         repository.TeamRepository
	RegistrationRepo repository.RegistrationRepository
	PaymentRepo      repository.PaymentRepository
	FeedbackRepo     repository.FeedbackRepository
	ResultRepo       repository.ResultRepository

	// Gateway
	PaymentGateway gateway.PaymentGateway

	// Services
	AuthService         service.AuthService
	EventService        service.EventService
	TeamService         service.TeamService
	RegistrationService service.RegistrationService
	PaymentService      service.PaymentService
	FeedbackService     service.FeedbackService
	StatsService        service.StatsService

	// Handlers
	HealthHandler       *handler.HealthHandler
	AuthHandler         *handler.AuthHandler
	EventHandler        *handler.EventHandler
	TeamHandler         *handler.TeamHandler
	RegistrationHandler *handler.RegistrationHandler
	PaymentHandler      *handler.PaymentHandler
	FeedbackHandler     *handler.FeedbackHandler
	StatsHandler        *handler.StatsHandler
}

// ContainerConfig contains configuration for building the container.
// Redis may be nil, in which case the event repository runs uncached.
type ContainerConfig struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *redis.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
	}

	pool := cfg.DB.Pool()

	// Repositories
	c.UserRepo = repository.NewPostgresUserRepository(pool)
	c.TeamRepo = repository.NewPostgresTeamRepository(pool)
	c.RegistrationRepo = repository.NewPostgresRegistrationRepository(pool)
	c.PaymentRepo = repository.NewPostgresPaymentRepository(pool)
	c.FeedbackRepo = repository.NewPostgresFeedbackRepository(pool)
	c.ResultRepo = repository.NewPostgresResultRepository(pool)

	eventRepo := repository.EventRepository(repository.NewPostgresEventRepository(pool))
	if cfg.Redis != nil {
		eventRepo = repository.NewCachedEventRepository(eventRepo, cfg.Redis)
	}
	c.EventRepo = eventRepo

	// Payment gateway
	gwConfig := gateway.DefaultMockGatewayConfig()
	if cfg.Config.Payment.SuccessRate > 0 {
		gwConfig.SuccessRate = cfg.Config.Payment.SuccessRate
	}
	if cfg.Config.Payment.DelayMs > 0 {
		gwConfig.DelayMs = cfg.Config.Payment.DelayMs
	}
	c.PaymentGateway = gateway.NewMockGateway(gwConfig)

	// Services
	c.AuthService = service.NewAuthService(c.UserRepo, cfg.Config.JWT.Secret, cfg.Config.JWT.AccessTokenTTL)
	c.EventService = service.NewEventService(c.EventRepo, c.TeamRepo, c.RegistrationRepo)
	c.TeamService = service.NewTeamService(c.TeamRepo, c.UserRepo)
	c.RegistrationService = service.NewRegistrationService(c.RegistrationRepo, c.EventRepo, c.TeamRepo, c.PaymentRepo)
	c.PaymentService = service.NewPaymentService(c.PaymentRepo, c.RegistrationRepo, c.EventRepo, c.PaymentGateway)
	c.FeedbackService = service.NewFeedbackService(c.FeedbackRepo, c.ResultRepo, c.EventRepo)
	c.StatsService = service.NewStatsService(c.UserRepo, c.EventRepo, c.TeamRepo, c.RegistrationRepo, c.PaymentRepo)

	// Handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.EventHandler = handler.NewEventHandler(c.EventService)
	c.TeamHandler = handler.NewTeamHandler(c.TeamService)
	c.RegistrationHandler = handler.NewRegistrationHandler(c.RegistrationService)
	c.PaymentHandler = handler.NewPaymentHandler(c.PaymentService)
	c.FeedbackHandler = handler.NewFeedbackHandler(c.FeedbackService)
	c.StatsHandler = handler.NewStatsHandler(c.StatsService)

	return c
}
