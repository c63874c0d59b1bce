package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sporthub/sporthub-api/internal/domain"
	"github.com/sporthub/sporthub-api/internal/dto"
	"github.com/sporthub/sporthub-api/internal/repository"
)

// eventService implements EventService
type eventService struct {
	eventRepo repository.EventRepository
	teamRepo  repository.TeamRepository
	regRepo   repository.RegistrationRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repository.EventRepository, teamRepo repository.TeamRepository, regRepo repository.RegistrationRepository) EventService {
	return &eventService{
		eventRepo: eventRepo,
		teamRepo:  teamRepo,
		regRepo:   regRepo,
	}
}

// CreateEvent creates a new event owned by the caller
func (s *eventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*domain.Event, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	now := time.Now()
	event := &domain.Event{
		ID:                   uuid.New().String(),
		Name:                 req.Name,
		Description:          req.Description,
		Category:             req.Category,
		Venue:                req.Venue,
		EventDate:            req.EventDate,
		RegistrationDeadline: req.RegistrationDeadline,
		Fee:                  req.Fee,
		MaxParticipants:      req.MaxParticipants,
		OrganizerID:          req.OrganizerID,
		Status:               domain.EventStatusUpcoming,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// GetEvent retrieves an event by ID
func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

// GetEventForUser retrieves an event together with whether the given user
// already holds a registration for it. The registration check covers both
// the user directly and any team the user created, fetched as two
// parameterized queries.
func (s *eventService) GetEventForUser(ctx context.Context, id, userID string) (*domain.Event, bool, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if userID == "" {
		return event, false, nil
	}

	teamIDs, err := s.teamRepo.TeamIDsByCreator(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	registered, err := s.regRepo.ExistsForEvent(ctx, id, userID, teamIDs)
	if err != nil {
		return nil, false, err
	}

	return event, registered, nil
}

// ListEvents lists events with filters and pagination
func (s *eventService) ListEvents(ctx context.Context, filter *dto.EventListFilter) ([]*domain.Event, int, error) {
	filter.SetDefaults()

	repoFilter := &repository.EventFilter{
		Status:      filter.Status,
		Category:    filter.Category,
		OrganizerID: filter.OrganizerID,
		Search:      filter.Search,
	}

	return s.eventRepo.List(ctx, repoFilter, filter.Limit, filter.Offset)
}

// UpdateEvent updates an event on behalf of the caller
func (s *eventService) UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest, callerID string, callerRole domain.Role) (*domain.Event, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}

	if callerRole != domain.RoleAdmin && event.OrganizerID != callerID {
		return nil, domain.ErrEventNotEditable
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}
	if req.RegistrationDeadline != nil {
		event.RegistrationDeadline = *req.RegistrationDeadline
	}
	if req.Fee != nil {
		event.Fee = *req.Fee
	}
	if req.MaxParticipants != nil {
		event.MaxParticipants = *req.MaxParticipants
	}
	if req.Status != nil {
		event.Status = *req.Status
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent soft deletes an event on behalf of the caller
func (s *eventService) DeleteEvent(ctx context.Context, id string, callerID string, callerRole domain.Role) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrEventNotFound
	}

	if callerRole != domain.RoleAdmin && event.OrganizerID != callerID {
		return domain.ErrEventNotEditable
	}

	return s.eventRepo.Delete(ctx, id)
}
