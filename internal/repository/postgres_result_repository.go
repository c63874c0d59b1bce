package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sporthub/sporthub-api/internal/domain"
)

// PostgresResultRepository implements ResultRepository using PostgreSQL
type PostgresResultRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresResultRepository creates a new PostgresResultRepository
func NewPostgresResultRepository(pool *pgxpool.Pool) *PostgresResultRepository {
	return &PostgresResultRepository{pool: pool}
}

// Create creates a new result
func (r *PostgresResultRepository) Create(ctx context.Context, result *domain.Result) error {
	query := `
		INSERT INTO results (id, event_id, user_id, team_id, position, score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		result.ID,
		result.EventID,
		result.UserID,
		result.TeamID,
		result.Position,
		result.Score,
		result.CreatedAt,
	)
	return err
}

// ListByEvent retrieves results for an event ordered by position
func (r *PostgresResultRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Result, error) {
	query := `
		SELECT id, event_id, user_id, team_id, position, COALESCE(score, '') as score, created_at
		FROM results
		WHERE event_id = $1
		ORDER BY position ASC
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.Result
	for rows.Next() {
		res := &domain.Result{}
		if err := rows.Scan(&res.ID, &res.EventID, &res.UserID, &res.TeamID, &res.Position, &res.Score, &res.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	return items, rows.Err()
}
