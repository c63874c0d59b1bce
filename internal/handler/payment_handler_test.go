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
)

// MockPaymentService is an in-memory PaymentService for handler tests
type MockPaymentService struct {
	payments map[string]*domain.Payment // keyed by registration id
	payErr   error
	declined bool
}

func NewMockPaymentService() *MockPaymentService {
	return &MockPaymentService{
		payments: make(map[string]*domain.Payment),
	}
}

func (m *MockPaymentService) Pay(ctx context.Context, req *dto.CreatePaymentRequest) (*domain.Payment, error) {
	if m.payErr != nil {
		return nil, m.payErr
	}
	now := time.Now()
	payment := &domain.Payment{
		ID:             "pay-123",
		RegistrationID: req.RegistrationID,
		Amount:         500,
		Method:         req.Method,
		TransactionID:  "mock_txn_deadbeef",
		CreatedAt:      now,
	}
	if m.declined {
		payment.Status = domain.PaymentStatusFailed
		m.payments[req.RegistrationID] = payment
		return payment, domain.ErrPaymentDeclined
	}
	payment.Status = domain.PaymentStatusCompleted
	payment.PaymentDate = &now
	m.payments[req.RegistrationID] = payment
	return payment, nil
}

func (m *MockPaymentService) GetByRegistration(ctx context.Context, registrationID string) (*domain.Payment, error) {
	payment, ok := m.payments[registrationID]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	return payment, nil
}

func setupPaymentRouter(h *PaymentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authed := router.Group("", identity("user-1", domain.RoleParticipant))
	{
		authed.POST("/payments", h.Create)
		authed.GET("/registrations/:id/payment", h.GetByRegistration)
	}

	return router
}

func TestPaymentHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]interface{}
		payErr     error
		wantStatus int
	}{
		{
			name:       "successful payment",
			body:       map[string]interface{}{"registration_id": "reg-1", "method": "credit_card"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown method",
			body:       map[string]interface{}{"registration_id": "reg-1", "method": "cash"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing registration id",
			body:       map[string]interface{}{"method": "credit_card"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "registration not found",
			body:       map[string]interface{}{"registration_id": "missing", "method": "credit_card"},
			payErr:     domain.ErrRegistrationNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "already paid",
			body:       map[string]interface{}{"registration_id": "reg-1", "method": "credit_card"},
			payErr:     domain.ErrPaymentAlreadyMade,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPaymentService()
			mockSvc.payErr = tt.payErr
			handler := NewPaymentHandler(mockSvc)
			router := setupPaymentRouter(handler)

			body, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestPaymentHandler_Create_Declined(t *testing.T) {
	mockSvc := NewMockPaymentService()
	mockSvc.declined = true
	handler := NewPaymentHandler(mockSvc)
	router := setupPaymentRouter(handler)

	body, _ := json.Marshal(map[string]interface{}{"registration_id": "reg-1", "method": "credit_card"})
	req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusPaymentRequired {
		t.Fatalf("expected status %d, got %d: %s", http.StatusPaymentRequired, resp.Code, resp.Body.String())
	}

	var envelope struct {
		Success bool                 `json:"success"`
		Data    *dto.PaymentResponse `json:"data"`
		Error   *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if envelope.Success {
		t.Error("expected error envelope")
	}
	if envelope.Error == nil || envelope.Error.Code != "PAYMENT_DECLINED" {
		t.Error("expected PAYMENT_DECLINED error code")
	}
	if envelope.Data == nil || envelope.Data.Status != domain.PaymentStatusFailed {
		t.Error("expected the failed payment attempt in the response")
	}
}

func TestPaymentHandler_GetByRegistration(t *testing.T) {
	mockSvc := NewMockPaymentService()
	handler := NewPaymentHandler(mockSvc)
	router := setupPaymentRouter(handler)

	now := time.Now()
	mockSvc.payments["reg-1"] = &domain.Payment{
		ID:             "pay-1",
		RegistrationID: "reg-1",
		Amount:         500,
		Method:         "credit_card",
		Status:         domain.PaymentStatusCompleted,
		PaymentDate:    &now,
		CreatedAt:      now,
	}

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{
			name:       "existing payment",
			id:         "reg-1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "no payment yet",
			id:         "reg-2",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/registrations/"+tt.id+"/payment", nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, resp.Code)
			}
		})
	}
}
