package dto

import (
	"strings"
)

// CreateFeedbackRequest represents the request to leave feedback for an event
type CreateFeedbackRequest struct {
	EventID string `json:"-"` // Set from path
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
	UserID  string `json:"-"` // Set from context
}

// Validate validates the CreateFeedbackRequest
func (r *CreateFeedbackRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.EventID) == "" {
		return false, "Event id is required"
	}
	if r.Rating < 1 || r.Rating > 5 {
		return false, "Rating must be between 1 and 5"
	}
	return true, ""
}

// FeedbackResponse represents feedback in API responses
type FeedbackResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

// CreateResultRequest represents the request to record a final standing
type CreateResultRequest struct {
	EventID  string  `json:"-"` // Set from path
	UserID   *string `json:"user_id"`
	TeamID   *string `json:"team_id"`
	Position int     `json:"position" binding:"required,min=1"`
	Score    string  `json:"score" binding:"max=100"`
}

// Validate validates the CreateResultRequest
func (r *CreateResultRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.EventID) == "" {
		return false, "Event id is required"
	}
	if (r.UserID == nil) == (r.TeamID == nil) {
		return false, "Exactly one of user_id and team_id is required"
	}
	if r.Position < 1 {
		return false, "Position must be at least 1"
	}
	return true, ""
}

// ResultResponse represents a final standing in API responses
type ResultResponse struct {
	ID       string  `json:"id"`
	EventID  string  `json:"event_id"`
	UserID   *string `json:"user_id,omitempty"`
	TeamID   *string `json:"team_id,omitempty"`
	Position int     `json:"position"`
	Score    string  `json:"score"`
}
