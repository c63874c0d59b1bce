package repository

import (
	"context"

	"github.com/sporthub/sporthub-api/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Count returns the total number of users
	Count(ctx context.Context) (int64, error)
}

// EventFilter contains filter options for listing events
type EventFilter struct {
	Status      string
	Category    string
	OrganizerID string
	Search      string
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create creates a new event
	Create(ctx context.Context, event *domain.Event) error
	// GetByID retrieves an event by ID
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// GetByIDs retrieves events by their IDs
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Event, error)
	// List lists events with filters and pagination
	List(ctx context.Context, filter *EventFilter, limit, offset int) ([]*domain.Event, int, error)
	// Update updates an event
	Update(ctx context.Context, event *domain.Event) error
	// Delete soft deletes an event by ID
	Delete(ctx context.Context, id string) error
	// Count returns the total number of events
	Count(ctx context.Context) (int64, error)
}

// TeamRepository defines the interface for team and membership data access
type TeamRepository interface {
	// Create creates a new team
	Create(ctx context.Context, team *domain.Team) error
	// GetByID retrieves a team by ID
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	// GetByIDs retrieves teams by their IDs
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Team, error)
	// List lists teams with pagination
	List(ctx context.Context, limit, offset int) ([]*domain.Team, int, error)
	// ListByManager retrieves teams created by the given user
	ListByManager(ctx context.Context, userID string) ([]*domain.Team, error)
	// Update updates a team
	Update(ctx context.Context, team *domain.Team) error
	// Delete deletes a team and its memberships
	Delete(ctx context.Context, id string) error
	// AddMember adds a user to a team
	AddMember(ctx context.Context, member *domain.TeamMember) error
	// RemoveMember removes a user from a team
	RemoveMember(ctx context.Context, teamID, userID string) error
	// ListMembers retrieves the members of a team
	ListMembers(ctx context.Context, teamID string) ([]*domain.TeamMember, error)
	// TeamIDsByMember retrieves the ids of teams the user belongs to
	TeamIDsByMember(ctx context.Context, userID string) ([]string, error)
	// TeamIDsByCreator retrieves the ids of teams the user created
	TeamIDsByCreator(ctx context.Context, userID string) ([]string, error)
	// Count returns the total number of teams
	Count(ctx context.Context) (int64, error)
}

// RegistrationRepository defines the interface for registration data access
type RegistrationRepository interface {
	// Create creates a new registration
	Create(ctx context.Context, registration *domain.Registration) error
	// GetByID retrieves a registration by ID
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	// UpdateStatus updates the stored status of a registration
	UpdateStatus(ctx context.Context, id, status string) error
	// ListByUser retrieves individual registrations made by the user
	ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error)
	// ListByTeamIDs retrieves team registrations for the given team ids
	ListByTeamIDs(ctx context.Context, teamIDs []string) ([]*domain.Registration, error)
	// ListByEvent retrieves registrations for an event
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error)
	// ExistsForEvent reports whether the event already has a registration by
	// the user directly or by any of the given teams
	ExistsForEvent(ctx context.Context, eventID, userID string, teamIDs []string) (bool, error)
	// CountByEvent returns the number of non-cancelled registrations for an event
	CountByEvent(ctx context.Context, eventID string) (int64, error)
	// Count returns the total number of registrations
	Count(ctx context.Context) (int64, error)
}

// PaymentRepository defines the interface for payment data access
type PaymentRepository interface {
	// Create creates a new payment
	Create(ctx context.Context, payment *domain.Payment) error
	// GetByID retrieves a payment by ID
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	// GetByRegistrationID retrieves the latest payment for a registration
	GetByRegistrationID(ctx context.Context, registrationID string) (*domain.Payment, error)
	// ListByRegistrationIDs retrieves the latest payment per registration
	ListByRegistrationIDs(ctx context.Context, registrationIDs []string) ([]*domain.Payment, error)
	// Update updates a payment
	Update(ctx context.Context, payment *domain.Payment) error
	// TotalCompletedAmount returns the sum of completed payment amounts
	TotalCompletedAmount(ctx context.Context) (float64, error)
}

// FeedbackRepository defines the interface for feedback data access
type FeedbackRepository interface {
	// Create creates new feedback
	Create(ctx context.Context, feedback *domain.Feedback) error
	// ListByEvent retrieves feedback for an event
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Feedback, error)
}

// ResultRepository defines the interface for result data access
type ResultRepository interface {
	// Create creates a new result
	Create(ctx context.Context, result *domain.Result) error
	// ListByEvent retrieves results for an event ordered by position
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Result, error)
}
