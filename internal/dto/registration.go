package dto

import (
	"strings"

	"github.com/sporthub/sporthub-api/internal/domain"
)

// CreateRegistrationRequest represents the request to register for an event.
// Exactly one of UserID and TeamID ends up on the stored registration: when
// TeamID is empty the registration is individual and belongs to the caller.
type CreateRegistrationRequest struct {
	EventID string `json:"event_id" binding:"required"`
	TeamID  string `json:"team_id"`
	UserID  string `json:"-"` // Set from context
}

// Validate validates the CreateRegistrationRequest
func (r *CreateRegistrationRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.EventID) == "" {
		return false, "Event id is required"
	}
	return true, ""
}

// IsTeam reports whether the request is a team registration
func (r *CreateRegistrationRequest) IsTeam() bool {
	return strings.TrimSpace(r.TeamID) != ""
}

// UpdateRegistrationStatusRequest represents the request to change a
// registration's stored status
type UpdateRegistrationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Validate validates the UpdateRegistrationStatusRequest
func (r *UpdateRegistrationStatusRequest) Validate() (bool, string) {
	if !domain.ValidRegistrationStatus(r.Status) {
		return false, "Status must be one of pending, confirmed, cancelled"
	}
	return true, ""
}

// RegistrationResponse represents a registration in API responses
type RegistrationResponse struct {
	ID               string  `json:"id"`
	EventID          string  `json:"event_id"`
	UserID           *string `json:"user_id,omitempty"`
	TeamID           *string `json:"team_id,omitempty"`
	Status           string  `json:"status"`
	RegistrationDate string  `json:"registration_date"`
}

// RegistrationViewResponse represents one entry of the per-user
// registration view
type RegistrationViewResponse struct {
	ID               string          `json:"id"`
	Type             string          `json:"type"`
	Status           string          `json:"status"`
	RegistrationDate string          `json:"registration_date"`
	Event            *EventResponse  `json:"event,omitempty"`
	Team             *TeamSummary    `json:"team,omitempty"`
	Payment          *PaymentSummary `json:"payment,omitempty"`
}

// TeamSummary is the team context of a team registration view entry
type TeamSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PaymentSummary is the payment context of a registration view entry
type PaymentSummary struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}
