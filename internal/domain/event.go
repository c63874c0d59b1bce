package domain

import (
	"time"
)

// Event status values
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// Event represents a sports event entity
type Event struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	Category             string    `json:"category"`
	Venue                string    `json:"venue"`
	EventDate            time.Time `json:"event_date"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
	Fee                  float64   `json:"fee"`
	MaxParticipants      int       `json:"max_participants"`
	OrganizerID          string    `json:"organizer_id"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// RegistrationOpen reports whether the event still accepts registrations at
// the given time. The comparison is by UTC calendar date: the deadline day
// itself is still open, the day after is closed.
func (e *Event) RegistrationOpen(now time.Time) bool {
	deadline := e.RegistrationDeadline.UTC()
	deadlineDay := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, time.UTC)

	nowUTC := now.UTC()
	today := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), 0, 0, 0, 0, time.UTC)

	return !today.After(deadlineDay)
}

// Finished reports whether the event date has passed at the given time,
// compared by UTC calendar date.
func (e *Event) Finished(now time.Time) bool {
	date := e.EventDate.UTC()
	eventDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	nowUTC := now.UTC()
	today := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), 0, 0, 0, 0, time.UTC)

	return today.After(eventDay)
}
