package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sporthub/sporthub-api/internal/domain"
	"github.com/sporthub/sporthub-api/internal/dto"
	"github.com/sporthub/sporthub-api/internal/metrics"
	"github.com/sporthub/sporthub-api/internal/repository"
)

// registrationService implements RegistrationService
type registrationService struct {
	regRepo     repository.RegistrationRepository
	eventRepo   repository.EventRepository
	teamRepo    repository.TeamRepository
	paymentRepo repository.PaymentRepository
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(
	regRepo repository.RegistrationRepository,
	eventRepo repository.EventRepository,
	teamRepo repository.TeamRepository,
	paymentRepo repository.PaymentRepository,
) RegistrationService {
	return &registrationService{
		regRepo:     regRepo,
		eventRepo:   eventRepo,
		teamRepo:    teamRepo,
		paymentRepo: paymentRepo,
	}
}

// Register creates a registration for an event, individually or for a team.
// The stored row carries exactly one of user_id and team_id: a team
// registration belongs to the team, not to the manager who submitted it.
func (s *registrationService) Register(ctx context.Context, req *dto.CreateRegistrationRequest) (*domain.Registration, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	event, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}

	if !event.RegistrationOpen(time.Now()) {
		return nil, domain.ErrRegistrationClosed
	}

	if event.MaxParticipants > 0 {
		count, err := s.regRepo.CountByEvent(ctx, req.EventID)
		if err != nil {
			return nil, err
		}
		if count >= int64(event.MaxParticipants) {
			return nil, domain.ErrEventFull
		}
	}

	if req.IsTeam() {
		team, err := s.teamRepo.GetByID(ctx, req.TeamID)
		if err != nil {
			return nil, err
		}
		if team == nil {
			return nil, domain.ErrTeamNotFound
		}
		if team.CreatedBy != req.UserID {
			return nil, domain.ErrNotTeamManager
		}
	}

	// A duplicate exists when the event already has a registration by the
	// caller directly or by any team the caller belongs to or manages
	memberTeamIDs, err := s.teamRepo.TeamIDsByMember(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	managedTeamIDs, err := s.teamRepo.TeamIDsByCreator(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	teamIDs := append(memberTeamIDs, managedTeamIDs...)

	exists, err := s.regRepo.ExistsForEvent(ctx, req.EventID, req.UserID, teamIDs)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyRegistered
	}

	now := time.Now()
	reg := &domain.Registration{
		ID:               uuid.New().String(),
		EventID:          req.EventID,
		Status:           domain.RegistrationStatusPending,
		RegistrationDate: now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if req.IsTeam() {
		teamID := req.TeamID
		reg.TeamID = &teamID
	} else {
		userID := req.UserID
		reg.UserID = &userID
	}

	if err := s.regRepo.Create(ctx, reg); err != nil {
		return nil, err
	}

	if reg.IsTeam() {
		metrics.RecordRegistrationCreated(ctx, string(domain.RegistrationTypeTeam))
	} else {
		metrics.RecordRegistrationCreated(ctx, string(domain.RegistrationTypeIndividual))
	}

	return reg, nil
}

// MyRegistrations returns the aggregated per-user registration view
func (s *registrationService) MyRegistrations(ctx context.Context, userID string) ([]*domain.RegistrationView, error) {
	individual, err := s.regRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	teamIDs, err := s.teamRepo.TeamIDsByMember(ctx, userID)
	if err != nil {
		return nil, err
	}
	teamRegs, err := s.regRepo.ListByTeamIDs(ctx, teamIDs)
	if err != nil {
		return nil, err
	}

	registrations := append(individual, teamRegs...)
	if len(registrations) == 0 {
		return []*domain.RegistrationView{}, nil
	}

	memberships := make([]*domain.TeamMember, 0, len(teamIDs))
	for _, id := range teamIDs {
		memberships = append(memberships, &domain.TeamMember{TeamID: id, UserID: userID})
	}

	teams, err := s.teamRepo.GetByIDs(ctx, teamIDs)
	if err != nil {
		return nil, err
	}

	eventIDs := make([]string, 0, len(registrations))
	regIDs := make([]string, 0, len(registrations))
	for _, reg := range registrations {
		eventIDs = append(eventIDs, reg.EventID)
		regIDs = append(regIDs, reg.ID)
	}

	events, err := s.eventRepo.GetByIDs(ctx, eventIDs)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByRegistrationIDs(ctx, regIDs)
	if err != nil {
		return nil, err
	}

	return BuildRegistrationViews(userID, registrations, memberships, teams, events, payments, time.Now()), nil
}

// ListByEvent retrieves registrations for an event
func (s *registrationService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	return s.regRepo.ListByEvent(ctx, eventID)
}

// UpdateStatus changes a registration's stored status on behalf of the caller
func (s *registrationService) UpdateStatus(ctx context.Context, id, status string, callerID string, callerRole domain.Role) (*domain.Registration, error) {
	if !domain.ValidRegistrationStatus(status) {
		return nil, errors.New("invalid registration status")
	}

	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, domain.ErrRegistrationNotFound
	}

	if callerRole != domain.RoleAdmin {
		event, err := s.eventRepo.GetByID(ctx, reg.EventID)
		if err != nil {
			return nil, err
		}
		if event == nil || event.OrganizerID != callerID {
			return nil, domain.ErrEventNotEditable
		}
	}

	if err := s.regRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	reg.Status = status
	return reg, nil
}
