package dto

import (
	"strings"
)

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=255"`
	Sport     string  `json:"sport" binding:"max=100"`
	EventID   *string `json:"event_id"`
	CreatedBy string  `json:"-"` // Set from context
}

// Validate validates the CreateTeamRequest
func (r *CreateTeamRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Name) == "" {
		return false, "Team name is required"
	}
	return true, ""
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=255"`
	Sport   *string `json:"sport" binding:"omitempty,max=100"`
	EventID *string `json:"event_id"`
}

// Validate validates the UpdateTeamRequest
func (r *UpdateTeamRequest) Validate() (bool, string) {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return false, "Team name cannot be empty"
	}
	return true, ""
}

// AddTeamMemberRequest represents the request to add a member to a team
type AddTeamMemberRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// Validate validates the AddTeamMemberRequest
func (r *AddTeamMemberRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.UserID) == "" {
		return false, "User id is required"
	}
	return true, ""
}

// TeamResponse represents a team in API responses
type TeamResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Sport     string  `json:"sport"`
	EventID   *string `json:"event_id,omitempty"`
	CreatedBy string  `json:"created_by"`
	CreatedAt string  `json:"created_at"`
}

// TeamMemberResponse represents a team member in API responses
type TeamMemberResponse struct {
	TeamID   string `json:"team_id"`
	UserID   string `json:"user_id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	JoinedAt string `json:"joined_at"`
}

// TeamDetailResponse is a team with its member list
type TeamDetailResponse struct {
	Team    *TeamResponse         `json:"team"`
	Members []*TeamMemberResponse `json:"members"`
}
