package dto

import (
	"strings"
)

// Supported mock payment methods
var paymentMethods = map[string]bool{
	"credit_card":   true,
	"bank_transfer": true,
	"promptpay":     true,
}

// CreatePaymentRequest represents the request to pay for a registration
type CreatePaymentRequest struct {
	RegistrationID string `json:"registration_id" binding:"required"`
	Method         string `json:"method" binding:"required"`
	UserID         string `json:"-"` // Set from context
}

// Validate validates the CreatePaymentRequest
func (r *CreatePaymentRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.RegistrationID) == "" {
		return false, "Registration id is required"
	}
	if !paymentMethods[r.Method] {
		return false, "Method must be one of credit_card, bank_transfer, promptpay"
	}
	return true, ""
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID             string  `json:"id"`
	RegistrationID string  `json:"registration_id"`
	Amount         float64 `json:"amount"`
	Method         string  `json:"method"`
	Status         string  `json:"status"`
	TransactionID  string  `json:"transaction_id,omitempty"`
	PaymentDate    *string `json:"payment_date,omitempty"`
	CreatedAt      string  `json:"created_at"`
}
