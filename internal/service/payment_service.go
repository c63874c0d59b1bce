package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sporthub/sporthub-api/internal/domain"
	"github.com/sporthub/sporthub-api/internal/dto"
	"github.com/sporthub/sporthub-api/internal/gateway"
	"github.com/sporthub/sporthub-api/internal/metrics"
	"github.com/sporthub/sporthub-api/internal/repository"
)

// paymentService implements PaymentService
type paymentService struct {
	paymentRepo repository.PaymentRepository
	regRepo     repository.RegistrationRepository
	eventRepo   repository.EventRepository
	gateway     gateway.PaymentGateway
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	regRepo repository.RegistrationRepository,
	eventRepo repository.EventRepository,
	gw gateway.PaymentGateway,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		regRepo:     regRepo,
		eventRepo:   eventRepo,
		gateway:     gw,
	}
}

// Pay charges the fee for a registration through the payment gateway. The
// amount is taken from the event fee, never from the request. A failed
// charge is recorded as a failed payment and surfaced as ErrPaymentDeclined.
func (s *paymentService) Pay(ctx context.Context, req *dto.CreatePaymentRequest) (*domain.Payment, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	reg, err := s.regRepo.GetByID(ctx, req.RegistrationID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, domain.ErrRegistrationNotFound
	}

	existing, err := s.paymentRepo.GetByRegistrationID(ctx, req.RegistrationID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == domain.PaymentStatusCompleted {
		return nil, domain.ErrPaymentAlreadyMade
	}

	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}

	start := time.Now()
	resp, err := s.gateway.Charge(ctx, &gateway.ChargeRequest{
		PaymentID:   uuid.New().String(),
		Amount:      event.Fee,
		Currency:    "THB",
		Method:      req.Method,
		Description: "Registration fee for " + event.Name,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payment := &domain.Payment{
		ID:             uuid.New().String(),
		RegistrationID: reg.ID,
		Amount:         event.Fee,
		Method:         req.Method,
		Status:         resp.Status,
		TransactionID:  resp.TransactionID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if resp.Success {
		payment.PaymentDate = &now
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	if resp.Success {
		metrics.RecordPaymentCompleted(ctx, req.Method, event.Fee, time.Since(start).Seconds())

		// A paid registration is confirmed
		if err := s.regRepo.UpdateStatus(ctx, reg.ID, domain.RegistrationStatusConfirmed); err != nil {
			return nil, err
		}
	} else {
		metrics.RecordPaymentFailed(ctx, req.Method, resp.FailureReason)
		return payment, domain.ErrPaymentDeclined
	}

	return payment, nil
}

// GetByRegistration retrieves the latest payment for a registration
func (s *paymentService) GetByRegistration(ctx context.Context, registrationID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByRegistrationID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrPaymentNotFound
	}
	return payment, nil
}
