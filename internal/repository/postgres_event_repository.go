package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sporthub/sporthub-api/internal/domain"
)

// PostgresEventRepository implements EventRepository using PostgreSQL
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

// eventColumns defines the columns to select for events
// Using COALESCE for nullable string columns to avoid scan errors
const eventColumns = `id, name,
	COALESCE(description, '') as description,
	COALESCE(category, '') as category,
	COALESCE(venue, '') as venue,
	event_date, registration_deadline, fee, max_participants,
	organizer_id, status, created_at, updated_at`

func (r *PostgresEventRepository) scanEvent(row pgx.Row) (*domain.Event, error) {
	event := &domain.Event{}
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.Category,
		&event.Venue,
		&event.EventDate,
		&event.RegistrationDeadline,
		&event.Fee,
		&event.MaxParticipants,
		&event.OrganizerID,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *PostgresEventRepository) scanEvents(rows pgx.Rows) ([]*domain.Event, error) {
	var events []*domain.Event
	for rows.Next() {
		event, err := r.scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// Create creates a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (
			id, name, description, category, venue, event_date,
			registration_deadline, fee, max_participants, organizer_id,
			status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
	`
	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Description,
		event.Category,
		event.Venue,
		event.EventDate,
		event.RegistrationDeadline,
		event.Fee,
		event.MaxParticipants,
		event.OrganizerID,
		event.Status,
		event.CreatedAt,
		event.UpdatedAt,
	)
	return err
}

// GetByID retrieves an event by ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1 AND deleted_at IS NULL`, eventColumns)
	event, err := r.scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

// GetByIDs retrieves events by their IDs
func (r *PostgresEventRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = ANY($1) AND deleted_at IS NULL`, eventColumns)
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// List lists events with filters and pagination
func (r *PostgresEventRepository) List(ctx context.Context, filter *EventFilter, limit, offset int) ([]*domain.Event, int, error) {
	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	argNum := 1

	if filter != nil {
		if filter.Status != "" {
			conditions = append(conditions, fmt.Sprintf("status = $%d", argNum))
			args = append(args, filter.Status)
			argNum++
		}
		if filter.Category != "" {
			conditions = append(conditions, fmt.Sprintf("category = $%d", argNum))
			args = append(args, filter.Category)
			argNum++
		}
		if filter.OrganizerID != "" {
			conditions = append(conditions, fmt.Sprintf("organizer_id = $%d", argNum))
			args = append(args, filter.OrganizerID)
			argNum++
		}
		if filter.Search != "" {
			conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argNum, argNum))
			args = append(args, "%"+filter.Search+"%")
			argNum++
		}
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM events WHERE %s`, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM events
		WHERE %s
		ORDER BY event_date ASC
		LIMIT $%d OFFSET $%d
	`, eventColumns, where, argNum, argNum+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events, err := r.scanEvents(rows)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// Update updates an event
func (r *PostgresEventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events SET
			name = $2, description = $3, category = $4, venue = $5,
			event_date = $6, registration_deadline = $7, fee = $8,
			max_participants = $9, status = $10, updated_at = $11
		WHERE id = $1 AND deleted_at IS NULL
	`
	event.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Description,
		event.Category,
		event.Venue,
		event.EventDate,
		event.RegistrationDeadline,
		event.Fee,
		event.MaxParticipants,
		event.Status,
		event.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// Delete soft deletes an event by ID
func (r *PostgresEventRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE events SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.pool.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// Count returns the total number of events
func (r *PostgresEventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events WHERE deleted_at IS NULL`).Scan(&count)
	return count, err
}
