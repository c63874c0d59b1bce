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

// PostgresTeamRepository implements TeamRepository using PostgreSQL
type PostgresTeamRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTeamRepository creates a new PostgresTeamRepository
func NewPostgresTeamRepository(pool *pgxpool.Pool) *PostgresTeamRepository {
	return &PostgresTeamRepository{pool: pool}
}

const teamColumns = `id, name,
	COALESCE(sport, '') as sport,
	event_id, created_by, created_at, updated_at`

func (r *PostgresTeamRepository) scanTeam(row pgx.Row) (*domain.Team, error) {
	team := &domain.Team{}
	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.Sport,
		&team.EventID,
		&team.CreatedBy,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (r *PostgresTeamRepository) scanTeams(rows pgx.Rows) ([]*domain.Team, error) {
	var teams []*domain.Team
	for rows.Next() {
		team, err := r.scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// Create creates a new team
func (r *PostgresTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (id, name, sport, event_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		team.ID,
		team.Name,
		team.Sport,
		team.EventID,
		team.CreatedBy,
		team.CreatedAt,
		team.UpdatedAt,
	)
	return err
}

// GetByID retrieves a team by ID
func (r *PostgresTeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query := fmt.Sprintf(`SELECT %s FROM teams WHERE id = $1`, teamColumns)
	team, err := r.scanTeam(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return team, nil
}

// GetByIDs retrieves teams by their IDs
func (r *PostgresTeamRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Team, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM teams WHERE id = ANY($1)`, teamColumns)
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanTeams(rows)
}

// List lists teams with pagination
func (r *PostgresTeamRepository) List(ctx context.Context, limit, offset int) ([]*domain.Team, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM teams`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM teams
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, teamColumns)
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	teams, err := r.scanTeams(rows)
	if err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

// ListByManager retrieves teams created by the given user
func (r *PostgresTeamRepository) ListByManager(ctx context.Context, userID string) ([]*domain.Team, error) {
	query := fmt.Sprintf(`SELECT %s FROM teams WHERE created_by = $1 ORDER BY created_at DESC`, teamColumns)
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanTeams(rows)
}

// Update updates a team
func (r *PostgresTeamRepository) Update(ctx context.Context, team *domain.Team) error {
	query := `
		UPDATE teams SET name = $2, sport = $3, event_id = $4, updated_at = $5
		WHERE id = $1
	`
	team.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		team.ID,
		team.Name,
		team.Sport,
		team.EventID,
		team.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}

// Delete deletes a team and its memberships
func (r *PostgresTeamRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1`, id); err != nil {
		return err
	}
	result, err := tx.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTeamNotFound
	}

	return tx.Commit(ctx)
}

// AddMember adds a user to a team
func (r *PostgresTeamRepository) AddMember(ctx context.Context, member *domain.TeamMember) error {
	query := `
		INSERT INTO team_members (team_id, user_id, joined_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (team_id, user_id) DO NOTHING
	`
	result, err := r.pool.Exec(ctx, query, member.TeamID, member.UserID, member.JoinedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAlreadyTeamMember
	}
	return nil
}

// RemoveMember removes a user from a team
func (r *PostgresTeamRepository) RemoveMember(ctx context.Context, teamID, userID string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`, teamID, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotTeamMember
	}
	return nil
}

// ListMembers retrieves the members of a team
func (r *PostgresTeamRepository) ListMembers(ctx context.Context, teamID string) ([]*domain.TeamMember, error) {
	query := `SELECT team_id, user_id, joined_at FROM team_members WHERE team_id = $1 ORDER BY joined_at ASC`
	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.TeamMember
	for rows.Next() {
		member := &domain.TeamMember{}
		if err := rows.Scan(&member.TeamID, &member.UserID, &member.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

// TeamIDsByMember retrieves the ids of teams the user belongs to
func (r *PostgresTeamRepository) TeamIDsByMember(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT team_id FROM team_members WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}

// TeamIDsByCreator retrieves the ids of teams the user created
func (r *PostgresTeamRepository) TeamIDsByCreator(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM teams WHERE created_by = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}

// Count returns the total number of teams
func (r *PostgresTeamRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count)
	return count, err
}

func scanIDs(rows pgx.Rows) ([]string, error) {
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
