package domain

import (
	"time"
)

// Payment status values
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Payment represents a payment for a registration
type Payment struct {
	ID             string     `json:"id"`
	RegistrationID string     `json:"registration_id"`
	Amount         float64    `json:"amount"`
	Method         string     `json:"method"`
	Status         string     `json:"status"`
	TransactionID  string     `json:"transaction_id,omitempty"`
	PaymentDate    *time.Time `json:"payment_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
