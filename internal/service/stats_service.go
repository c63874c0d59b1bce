package service

import (
	"context"

	"github.com/sporthub/sporthub-api/internal/dto"
	"github.com/sporthub/sporthub-api/internal/repository"
)

// statsService implements StatsService
type statsService struct {
	userRepo    repository.UserRepository
	eventRepo   repository.EventRepository
	teamRepo    repository.TeamRepository
	regRepo     repository.RegistrationRepository
	paymentRepo repository.PaymentRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
	teamRepo repository.TeamRepository,
	regRepo repository.RegistrationRepository,
	paymentRepo repository.PaymentRepository,
) StatsService {
	return &statsService{
		userRepo:    userRepo,
		eventRepo:   eventRepo,
		teamRepo:    teamRepo,
		regRepo:     regRepo,
		paymentRepo: paymentRepo,
	}
}

// Overview returns platform-wide counters and revenue. Revenue counts only
// completed payments.
func (s *statsService) Overview(ctx context.Context) (*dto.StatsOverviewResponse, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	registrations, err := s.regRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.paymentRepo.TotalCompletedAmount(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsOverviewResponse{
		TotalUsers:         users,
		TotalEvents:        events,
		TotalTeams:         teams,
		TotalRegistrations: registrations,
		TotalRevenue:       revenue,
	}, nil
}
