package domain

import (
	"time"
)

// Registration status values
const (
	RegistrationStatusPending   = "pending"
	RegistrationStatusConfirmed = "confirmed"
	RegistrationStatusCancelled = "cancelled"
)

// Display status used for the per-user registration view. Confirmed
// registrations for future events show as upcoming, anything whose event
// date has passed shows as completed.
const (
	ViewStatusUpcoming  = "upcoming"
	ViewStatusCompleted = "completed"
)

// ValidRegistrationStatus reports whether s is a known stored status
func ValidRegistrationStatus(s string) bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusConfirmed, RegistrationStatusCancelled:
		return true
	}
	return false
}

// Registration links either a user or a team to an event. Exactly one of
// UserID and TeamID is set, never both.
type Registration struct {
	ID               string    `json:"id"`
	EventID          string    `json:"event_id"`
	UserID           *string   `json:"user_id,omitempty"`
	TeamID           *string   `json:"team_id,omitempty"`
	Status           string    `json:"status"`
	RegistrationDate time.Time `json:"registration_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IsTeam reports whether this is a team registration
func (r *Registration) IsTeam() bool {
	return r.TeamID != nil
}

// RegistrationType tags a registration view as individual or team-based
type RegistrationType string

const (
	RegistrationTypeIndividual RegistrationType = "individual"
	RegistrationTypeTeam       RegistrationType = "team"
)

// TeamSummary carries the team context of a team-based registration view
type TeamSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PaymentSummary carries the payment context of a registration view
type PaymentSummary struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// RegistrationView is an enriched per-user view of a registration. Team is
// set only when Type is team. Event and Payment may be nil when the
// referenced records are missing.
type RegistrationView struct {
	Registration Registration     `json:"registration"`
	Type         RegistrationType `json:"type"`
	Event        *Event           `json:"event,omitempty"`
	Team         *TeamSummary     `json:"team,omitempty"`
	Payment      *PaymentSummary  `json:"payment,omitempty"`
	Status       string           `json:"status"`
}
