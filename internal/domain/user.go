package domain

import (
	"time"
)

// Role represents user role
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleOrganizer   Role = "organizer"
	RoleParticipant Role = "participant"
	RoleTeamManager Role = "team_manager"
)

// ValidRole reports whether the given role is one of the known roles
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleOrganizer, RoleParticipant, RoleTeamManager:
		return true
	}
	return false
}

// CanManageEvents reports whether the role may create or modify events
func (r Role) CanManageEvents() bool {
	return r == RoleAdmin || r == RoleOrganizer
}

// User represents a user entity
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims represents JWT claims
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}
