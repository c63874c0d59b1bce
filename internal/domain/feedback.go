package domain

import (
	"time"
)

// Feedback represents a user's rating and comment for an event
type Feedback struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// Result represents a final standing for an event. Exactly one of UserID
// and TeamID is set, matching the registration it scores.
type Result struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    *string   `json:"user_id,omitempty"`
	TeamID    *string   `json:"team_id,omitempty"`
	Position  int       `json:"position"`
	Score     string    `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
