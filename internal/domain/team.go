package domain

import (
	"time"
)

// Team represents a team entity managed by a team manager
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Sport     string    `json:"sport"`
	EventID   *string   `json:"event_id,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TeamMember represents a user's membership in a team
type TeamMember struct {
	TeamID   string    `json:"team_id"`
	UserID   string    `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}
