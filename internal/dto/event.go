package dto

import (
	"strings"
	"time"
)

// CreateEventRequest represents the request to create a new event
type CreateEventRequest struct {
	Name                 string    `json:"name" binding:"required,min=1,max=255"`
	Description          string    `json:"description"`
	Category             string    `json:"category" binding:"max=100"`
	Venue                string    `json:"venue" binding:"max=255"`
	EventDate            time.Time `json:"event_date" binding:"required"`
	RegistrationDeadline time.Time `json:"registration_deadline" binding:"required"`
	Fee                  float64   `json:"fee"`
	MaxParticipants      int       `json:"max_participants"`
	OrganizerID          string    `json:"-"` // Set from context
}

// Validate validates the CreateEventRequest
func (r *CreateEventRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Name) == "" {
		return false, "Event name is required"
	}
	if r.EventDate.IsZero() {
		return false, "Event date is required"
	}
	if r.RegistrationDeadline.IsZero() {
		return false, "Registration deadline is required"
	}
	if r.RegistrationDeadline.After(r.EventDate) {
		return false, "Registration deadline must not be after the event date"
	}
	if r.Fee < 0 {
		return false, "Fee cannot be negative"
	}
	if r.MaxParticipants < 0 {
		return false, "Max participants cannot be negative"
	}
	return true, ""
}

// UpdateEventRequest represents the request to update an event
type UpdateEventRequest struct {
	Name                 *string    `json:"name" binding:"omitempty,min=1,max=255"`
	Description          *string    `json:"description"`
	Category             *string    `json:"category" binding:"omitempty,max=100"`
	Venue                *string    `json:"venue" binding:"omitempty,max=255"`
	EventDate            *time.Time `json:"event_date"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	Fee                  *float64   `json:"fee"`
	MaxParticipants      *int       `json:"max_participants"`
	Status               *string    `json:"status"` // upcoming, ongoing, completed, cancelled
}

// Validate validates the UpdateEventRequest
func (r *UpdateEventRequest) Validate() (bool, string) {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return false, "Event name cannot be empty"
	}
	if r.Fee != nil && *r.Fee < 0 {
		return false, "Fee cannot be negative"
	}
	if r.MaxParticipants != nil && *r.MaxParticipants < 0 {
		return false, "Max participants cannot be negative"
	}
	if r.EventDate != nil && r.RegistrationDeadline != nil && r.RegistrationDeadline.After(*r.EventDate) {
		return false, "Registration deadline must not be after the event date"
	}
	return true, ""
}

// EventResponse represents the response for an event
type EventResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	Category             string  `json:"category"`
	Venue                string  `json:"venue"`
	EventDate            string  `json:"event_date"`
	RegistrationDeadline string  `json:"registration_deadline"`
	Fee                  float64 `json:"fee"`
	MaxParticipants      int     `json:"max_participants"`
	OrganizerID          string  `json:"organizer_id"`
	Status               string  `json:"status"`
	RegistrationOpen     bool    `json:"registration_open"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            string  `json:"updated_at"`
}

// EventDetailResponse is the event response enriched with the caller's
// registration state
type EventDetailResponse struct {
	Event             *EventResponse `json:"event"`
	AlreadyRegistered bool           `json:"already_registered"`
}

// EventListFilter represents filters for listing events
type EventListFilter struct {
	Status      string `form:"status"`
	Category    string `form:"category"`
	OrganizerID string `form:"organizer_id"`
	Search      string `form:"search"`
	Limit       int    `form:"limit"`
	Offset      int    `form:"offset"`
}

// SetDefaults sets default values for pagination
func (f *EventListFilter) SetDefaults() {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
