package service

import (
	"context"

	"github.com/sporthub/sporthub-api/internal/domain"
	"github.com/sporthub/sporthub-api/internal/dto"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	// Register creates a new user account and issues a token
	Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, string, error)
	// Login authenticates a user and issues a token
	Login(ctx context.Context, req *dto.LoginRequest) (*domain.User, string, error)
	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// TokenTTL returns the configured access token lifetime in seconds
	TokenTTL() int64
}

// EventService defines the interface for event business logic
type EventService interface {
	// CreateEvent creates a new event owned by the caller
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*domain.Event, error)
	// GetEvent retrieves an event by ID
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	// GetEventForUser retrieves an event together with whether the given
	// user already holds a registration for it
	GetEventForUser(ctx context.Context, id, userID string) (*domain.Event, bool, error)
	// ListEvents lists events with filters and pagination
	ListEvents(ctx context.Context, filter *dto.EventListFilter) ([]*domain.Event, int, error)
	// UpdateEvent updates an event on behalf of the caller
	UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest, callerID string, callerRole domain.Role) (*domain.Event, error)
	// DeleteEvent soft deletes an event on behalf of the caller
	DeleteEvent(ctx context.Context, id string, callerID string, callerRole domain.Role) error
}

// RegistrationService defines the interface for registration business logic
type RegistrationService interface {
	// Register creates a registration for an event, individually or for a team
	Register(ctx context.Context, req *dto.CreateRegistrationRequest) (*domain.Registration, error)
	// MyRegistrations returns the aggregated per-user registration view
	MyRegistrations(ctx context.Context, userID string) ([]*domain.RegistrationView, error)
	// ListByEvent retrieves registrations for an event
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error)
	// UpdateStatus changes a registration's stored status on behalf of the caller
	UpdateStatus(ctx context.Context, id, status string, callerID string, callerRole domain.Role) (*domain.Registration, error)
}

// TeamService defines the interface for team business logic
type TeamService interface {
	// CreateTeam creates a new team managed by the caller
	CreateTeam(ctx context.Context, req *dto.CreateTeamRequest) (*domain.Team, error)
	// GetTeam retrieves a team with its members
	GetTeam(ctx context.Context, id string) (*domain.Team, []*domain.TeamMember, error)
	// ListTeams lists teams with pagination
	ListTeams(ctx context.Context, limit, offset int) ([]*domain.Team, int, error)
	// MyTeams retrieves teams created by the caller
	MyTeams(ctx context.Context, userID string) ([]*domain.Team, error)
	// UpdateTeam updates a team on behalf of the caller
	UpdateTeam(ctx context.Context, id string, req *dto.UpdateTeamRequest, callerID string, callerRole domain.Role) (*domain.Team, error)
	// DeleteTeam deletes a team on behalf of the caller
	DeleteTeam(ctx context.Context, id string, callerID string, callerRole domain.Role) error
	// AddMember adds a user to a team on behalf of the caller
	AddMember(ctx context.Context, teamID, userID string, callerID string, callerRole domain.Role) error
	// RemoveMember removes a user from a team on behalf of the caller
	RemoveMember(ctx context.Context, teamID, userID string, callerID string, callerRole domain.Role) error
}

// PaymentService defines the interface for payment business logic
type PaymentService interface {
	// Pay charges the fee for a registration through the payment gateway
	Pay(ctx context.Context, req *dto.CreatePaymentRequest) (*domain.Payment, error)
	// GetByRegistration retrieves the latest payment for a registration
	GetByRegistration(ctx context.Context, registrationID string) (*domain.Payment, error)
}

// FeedbackService defines the interface for feedback and result business logic
type FeedbackService interface {
	// CreateFeedback records feedback for an event
	CreateFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*domain.Feedback, error)
	// ListFeedback retrieves feedback for an event
	ListFeedback(ctx context.Context, eventID string) ([]*domain.Feedback, error)
	// CreateResult records a final standing for an event
	CreateResult(ctx context.Context, req *dto.CreateResultRequest) (*domain.Result, error)
	// ListResults retrieves results for an event ordered by position
	ListResults(ctx context.Context, eventID string) ([]*domain.Result, error)
}

// StatsService defines the interface for dashboard statistics
type StatsService interface {
	// Overview returns platform-wide counters and revenue
	Overview(ctx context.Context) (*dto.StatsOverviewResponse, error)
}
