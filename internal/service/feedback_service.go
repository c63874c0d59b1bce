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

// feedbackService implements FeedbackService
type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	resultRepo   repository.ResultRepository
	eventRepo    repository.EventRepository
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(
	feedbackRepo repository.FeedbackRepository,
	resultRepo repository.ResultRepository,
	eventRepo repository.EventRepository,
) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		resultRepo:   resultRepo,
		eventRepo:    eventRepo,
	}
}

// CreateFeedback records feedback for an event
func (s *feedbackService) CreateFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*domain.Feedback, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	if err := s.requireEvent(ctx, req.EventID); err != nil {
		return nil, err
	}

	feedback := &domain.Feedback{
		ID:        uuid.New().String(),
		EventID:   req.EventID,
		UserID:    req.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

// ListFeedback retrieves feedback for an event
func (s *feedbackService) ListFeedback(ctx context.Context, eventID string) ([]*domain.Feedback, error) {
	if err := s.requireEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return s.feedbackRepo.ListByEvent(ctx, eventID)
}

// CreateResult records a final standing for an event
func (s *feedbackService) CreateResult(ctx context.Context, req *dto.CreateResultRequest) (*domain.Result, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	if err := s.requireEvent(ctx, req.EventID); err != nil {
		return nil, err
	}

	result := &domain.Result{
		ID:        uuid.New().String(),
		EventID:   req.EventID,
		UserID:    req.UserID,
		TeamID:    req.TeamID,
		Position:  req.Position,
		Score:     req.Score,
		CreatedAt: time.Now(),
	}

	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// ListResults retrieves results for an event ordered by position
func (s *feedbackService) ListResults(ctx context.Context, eventID string) ([]*domain.Result, error) {
	if err := s.requireEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return s.resultRepo.ListByEvent(ctx, eventID)
}

func (s *feedbackService) requireEvent(ctx context.Context, eventID string) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrEventNotFound
	}
	return nil
}
