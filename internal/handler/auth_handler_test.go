package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sporthub/sporthub-api/internal/domain"
	"github.com/sporthub/sporthub-api/internal/dto"
	"github.com/sporthub/sporthub-api/pkg/middleware"
)

// MockAuthService is an in-memory AuthService for handler tests
type MockAuthService struct {
	users map[string]*domain.User // keyed by email
}

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{
		users: make(map[string]*domain.User),
	}
}

func (m *MockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, string, error) {
	if _, ok := m.users[req.Email]; ok {
		return nil, "", domain.ErrEmailAlreadyExists
	}
	user := &domain.User{
		ID:        "user-" + req.Email,
		Email:     req.Email,
		Name:      req.Name,
		Phone:     req.Phone,
		Role:      domain.Role(req.Role),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.users[req.Email] = user
	return user, "token-123", nil
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*domain.User, string, error) {
	user, ok := m.users[req.Email]
	if !ok {
		return nil, "", domain.ErrInvalidCredentials
	}
	return user, "token-123", nil
}

func (m *MockAuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAuthService) TokenTTL() int64 {
	return 3600
}

func setupAuthRouter(h *AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", func(c *gin.Context) {
			c.Set(middleware.ContextKeyUserID, "user-alice@example.com")
			c.Next()
		}, h.Me)
	}

	return router
}

func TestAuthHandler_Register(t *testing.T) {
	mockSvc := NewMockAuthService()
	handler := NewAuthHandler(mockSvc)
	router := setupAuthRouter(handler)

	tests := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid registration",
			body: map[string]interface{}{
				"name":     "Alice",
				"email":    "alice@example.com",
				"password": "secret-password",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate email",
			body: map[string]interface{}{
				"name":     "Alice Again",
				"email":    "alice@example.com",
				"password": "secret-password",
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "short password",
			body: map[string]interface{}{
				"name":     "Bob",
				"email":    "bob@example.com",
				"password": "short",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "admin role rejected",
			body: map[string]interface{}{
				"name":     "Mallory",
				"email":    "mallory@example.com",
				"password": "secret-password",
				"role":     "admin",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	mockSvc := NewMockAuthService()
	handler := NewAuthHandler(mockSvc)
	router := setupAuthRouter(handler)

	mockSvc.users["alice@example.com"] = &domain.User{
		ID:    "user-alice@example.com",
		Email: "alice@example.com",
		Name:  "Alice",
		Role:  domain.RoleParticipant,
	}

	tests := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid login",
			body: map[string]interface{}{
				"email":    "alice@example.com",
				"password": "secret-password",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown email",
			body: map[string]interface{}{
				"email":    "nobody@example.com",
				"password": "secret-password",
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing password",
			body:       map[string]interface{}{"email": "alice@example.com"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	mockSvc := NewMockAuthService()
	handler := NewAuthHandler(mockSvc)
	router := setupAuthRouter(handler)

	mockSvc.users["alice@example.com"] = &domain.User{
		ID:    "user-alice@example.com",
		Email: "alice@example.com",
		Name:  "Alice",
		Role:  domain.RoleParticipant,
	}

	req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, resp.Code, resp.Body.String())
	}

	var envelope struct {
		Success bool             `json:"success"`
		Data    dto.UserResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !envelope.Success {
		t.Error("expected success envelope")
	}
	if envelope.Data.Email != "alice@example.com" {
		t.Errorf("expected email alice@example.com, got %s", envelope.Data.Email)
	}
}
