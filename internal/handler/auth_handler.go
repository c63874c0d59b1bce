package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sporthub/sporthub-api/internal/domain"
	"github.com/sporthub/sporthub-api/internal/dto"
	"github.com/sporthub/sporthub-api/internal/service"
	"github.com/sporthub/sporthub-api/pkg/middleware"
	"github.com/sporthub/sporthub-api/pkg/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /auth/register - creates a new account
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, response.Conflict("Email already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to register"))
		return
	}

	c.JSON(http.StatusCreated, response.Success(&dto.AuthResponse{
		AccessToken: token,
		ExpiresIn:   h.authService.TokenTTL(),
		User:        toUserResponse(user),
	}))
}

// Login handles POST /auth/login - authenticates a user
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.Unauthorized("Invalid email or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to login"))
		return
	}

	c.JSON(http.StatusOK, response.Success(&dto.AuthResponse{
		AccessToken: token,
		ExpiresIn:   h.authService.TokenTTL(),
		User:        toUserResponse(user),
	}))
}

// Me handles GET /auth/me - returns the authenticated user
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to get user"))
		return
	}

	c.JSON(http.StatusOK, response.Success(toUserResponse(user)))
}

func toUserResponse(user *domain.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
