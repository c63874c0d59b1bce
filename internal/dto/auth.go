package dto

import (
	"strings"

	"github.com/sporthub/sporthub-api/internal/domain"
)

// RegisterRequest represents the request to create a new account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone" binding:"max=20"`
	Role     string `json:"role"`
}

// Validate validates the RegisterRequest
func (r *RegisterRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Name) == "" {
		return false, "Name is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		return false, "Email is required"
	}
	if len(r.Password) < 8 {
		return false, "Password must be at least 8 characters"
	}
	if r.Role == "" {
		r.Role = string(domain.RoleParticipant)
	}
	if domain.Role(r.Role) == domain.RoleAdmin {
		return false, "Admin accounts cannot be self-registered"
	}
	if !domain.ValidRole(domain.Role(r.Role)) {
		return false, "Invalid role"
	}
	return true, ""
}

// LoginRequest represents the request to authenticate
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Validate validates the LoginRequest
func (r *LoginRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Email) == "" {
		return false, "Email is required"
	}
	if r.Password == "" {
		return false, "Password is required"
	}
	return true, ""
}

// AuthResponse represents the response to a successful register or login
type AuthResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *UserResponse `json:"user"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}
