package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sporthub/sporthub-api/internal/domain"
)

// PostgresRegistrationRepository implements RegistrationRepository using PostgreSQL
type PostgresRegistrationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRegistrationRepository creates a new PostgresRegistrationRepository
func NewPostgresRegistrationRepository(pool *pgxpool.Pool) *PostgresRegistrationRepository {
	return &PostgresRegistrationRepository{pool: pool}
}

const registrationColumns = `id, event_id, user_id, team_id, status,
	registration_date, created_at, updated_at`

func (r *PostgresRegistrationRepository) scanRegistration(row pgx.Row) (*domain.Registration, error) {
	reg := &domain.Registration{}
	err := row.Scan(
		&reg.ID,
		&reg.EventID,
		&reg.UserID,
		&reg.TeamID,
		&reg.Status,
		&reg.RegistrationDate,
		&reg.CreatedAt,
		&reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func (r *PostgresRegistrationRepository) scanRegistrations(rows pgx.Rows) ([]*domain.Registration, error) {
	var regs []*domain.Registration
	for rows.Next() {
		reg, err := r.scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

// Create creates a new registration
func (r *PostgresRegistrationRepository) Create(ctx context.Context, registration *domain.Registration) error {
	query := `
		INSERT INTO registrations (
			id, event_id, user_id, team_id, status,
			registration_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		registration.ID,
		registration.EventID,
		registration.UserID,
		registration.TeamID,
		registration.Status,
		registration.RegistrationDate,
		registration.CreatedAt,
		registration.UpdatedAt,
	)
	return err
}

// GetByID retrieves a registration by ID
func (r *PostgresRegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE id = $1`, registrationColumns)
	reg, err := r.scanRegistration(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return reg, nil
}

// UpdateStatus updates the stored status of a registration
func (r *PostgresRegistrationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE registrations SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}

// ListByUser retrieves individual registrations made by the user
func (r *PostgresRegistrationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM registrations
		WHERE user_id = $1
		ORDER BY registration_date ASC
	`, registrationColumns)
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanRegistrations(rows)
}

// ListByTeamIDs retrieves team registrations for the given team ids
func (r *PostgresRegistrationRepository) ListByTeamIDs(ctx context.Context, teamIDs []string) ([]*domain.Registration, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`
		SELECT %s FROM registrations
		WHERE team_id = ANY($1)
		ORDER BY registration_date ASC
	`, registrationColumns)
	rows, err := r.pool.Query(ctx, query, teamIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanRegistrations(rows)
}

// ListByEvent retrieves registrations for an event
func (r *PostgresRegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM registrations
		WHERE event_id = $1
		ORDER BY registration_date ASC
	`, registrationColumns)
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanRegistrations(rows)
}

// ExistsForEvent reports whether the event already has a registration by the
// user directly or by any of the given teams. Cancelled registrations do not
// block a new attempt.
func (r *PostgresRegistrationRepository) ExistsForEvent(ctx context.Context, eventID, userID string, teamIDs []string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM registrations
			WHERE event_id = $1
			  AND status <> $2
			  AND (user_id = $3 OR team_id = ANY($4))
		)
	`
	var exists bool
	err := r.pool.QueryRow(ctx, query, eventID, domain.RegistrationStatusCancelled, userID, teamIDs).Scan(&exists)
	return exists, err
}

// CountByEvent returns the number of non-cancelled registrations for an event
func (r *PostgresRegistrationRepository) CountByEvent(ctx context.Context, eventID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status <> $2`
	err := r.pool.QueryRow(ctx, query, eventID, domain.RegistrationStatusCancelled).Scan(&count)
	return count, err
}

// Count returns the total number of registrations
func (r *PostgresRegistrationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&count)
	return count, err
}
