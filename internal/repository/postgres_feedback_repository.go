package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sporthub/sporthub-api/internal/domain"
)

// PostgresFeedbackRepository implements FeedbackRepository using PostgreSQL
type PostgresFeedbackRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresFeedbackRepository creates a new PostgresFeedbackRepository
func NewPostgresFeedbackRepository(pool *pgxpool.Pool) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{pool: pool}
}

// Create creates new feedback
func (r *PostgresFeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	query := `
		INSERT INTO feedback (id, event_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		feedback.ID,
		feedback.EventID,
		feedback.UserID,
		feedback.Rating,
		feedback.Comment,
		feedback.CreatedAt,
	)
	return err
}

// ListByEvent retrieves feedback for an event
func (r *PostgresFeedbackRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Feedback, error) {
	query := `
		SELECT id, event_id, user_id, rating, COALESCE(comment, '') as comment, created_at
		FROM feedback
		WHERE event_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.Feedback
	for rows.Next() {
		fb := &domain.Feedback{}
		if err := rows.Scan(&fb.ID, &fb.EventID, &fb.UserID, &fb.Rating, &fb.Comment, &fb.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, fb)
	}
	return items, rows.Err()
}
