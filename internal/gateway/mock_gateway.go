package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockGateway implements PaymentGateway with simulated outcomes
type MockGateway struct {
	config       *MockGatewayConfig
	transactions sync.Map
	mu           sync.RWMutex
}

// MockGatewayConfig holds configuration for the mock gateway
type MockGatewayConfig struct {
	// SuccessRate is the probability of successful payment (0.0 to 1.0)
	SuccessRate float64

	// DelayMs is the simulated processing delay in milliseconds
	DelayMs int

	// FailureReasons is a list of possible failure reasons
	FailureReasons []string
}

// DefaultMockGatewayConfig returns default configuration
func DefaultMockGatewayConfig() *MockGatewayConfig {
	return &MockGatewayConfig{
		SuccessRate: 0.95,
		DelayMs:     100,
		FailureReasons: []string{
			"insufficient_funds",
			"card_declined",
			"expired_card",
			"processing_error",
		},
	}
}

// NewMockGateway creates a new mock gateway
func NewMockGateway(config *MockGatewayConfig) *MockGateway {
	if config == nil {
		config = DefaultMockGatewayConfig()
	}

	if config.SuccessRate < 0 {
		config.SuccessRate = 0
	}
	if config.SuccessRate > 1 {
		config.SuccessRate = 1
	}
	if len(config.FailureReasons) == 0 {
		config.FailureReasons = DefaultMockGatewayConfig().FailureReasons
	}

	return &MockGateway{
		config: config,
	}
}

// Charge processes a mock payment charge
func (g *MockGateway) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("charge request is required")
	}

	// Simulate processing delay
	if g.config.DelayMs > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(g.config.DelayMs) * time.Millisecond):
		}
	}

	transactionID := fmt.Sprintf("mock_txn_%s", uuid.New().String()[:8])

	g.mu.RLock()
	successRate := g.config.SuccessRate
	g.mu.RUnlock()

	success := rand.Float64() < successRate

	resp := &ChargeResponse{
		TransactionID: transactionID,
	}

	if success {
		resp.Success = true
		resp.Status = "completed"

		g.transactions.Store(transactionID, req.Amount)
	} else {
		resp.Success = false
		resp.Status = "failed"
		resp.FailureReason = g.config.FailureReasons[rand.Intn(len(g.config.FailureReasons))]
	}

	return resp, nil
}

// Refund processes a mock refund
func (g *MockGateway) Refund(ctx context.Context, transactionID string, amount float64) error {
	if transactionID == "" {
		return fmt.Errorf("transaction ID is required")
	}

	if g.config.DelayMs > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(g.config.DelayMs) * time.Millisecond):
		}
	}

	if _, ok := g.transactions.Load(transactionID); !ok {
		return fmt.Errorf("transaction not found: %s", transactionID)
	}

	g.transactions.Delete(transactionID)
	return nil
}

// Name returns the gateway name
func (g *MockGateway) Name() string {
	return "mock"
}

// SetSuccessRate updates the success rate (for testing)
func (g *MockGateway) SetSuccessRate(rate float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	g.config.SuccessRate = rate
}
