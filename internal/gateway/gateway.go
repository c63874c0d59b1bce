package gateway

import (
	"context"
)

// PaymentGateway defines the interface for payment processing
type PaymentGateway interface {
	// Charge processes a payment charge
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error)

	// Refund processes a refund
	Refund(ctx context.Context, transactionID string, amount float64) error

	// Name returns the gateway name
	Name() string
}

// ChargeRequest represents a charge request
type ChargeRequest struct {
	PaymentID   string
	Amount      float64
	Currency    string
	Method      string
	Description string
}

// ChargeResponse represents a charge response
type ChargeResponse struct {
	Success       bool
	TransactionID string
	Status        string
	FailureReason string
}
