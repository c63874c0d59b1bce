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

// PostgresPaymentRepository implements PaymentRepository using PostgreSQL
type PostgresPaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPaymentRepository creates a new PostgresPaymentRepository
func NewPostgresPaymentRepository(pool *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{pool: pool}
}

const paymentColumns = `id, registration_id, amount,
	COALESCE(method, '') as method,
	status,
	COALESCE(transaction_id, '') as transaction_id,
	payment_date, created_at, updated_at`

func (r *PostgresPaymentRepository) scanPayment(row pgx.Row) (*domain.Payment, error) {
	payment := &domain.Payment{}
	err := row.Scan(
		&payment.ID,
		&payment.RegistrationID,
		&payment.Amount,
		&payment.Method,
		&payment.Status,
		&payment.TransactionID,
		&payment.PaymentDate,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// Create creates a new payment
func (r *PostgresPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
			id, registration_id, amount, method, status,
			transaction_id, payment_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		payment.ID,
		payment.RegistrationID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.TransactionID,
		payment.PaymentDate,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	return err
}

// GetByID retrieves a payment by ID
func (r *PostgresPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE id = $1`, paymentColumns)
	payment, err := r.scanPayment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return payment, nil
}

// GetByRegistrationID retrieves the latest payment for a registration
func (r *PostgresPaymentRepository) GetByRegistrationID(ctx context.Context, registrationID string) (*domain.Payment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM payments
		WHERE registration_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, paymentColumns)
	payment, err := r.scanPayment(r.pool.QueryRow(ctx, query, registrationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return payment, nil
}

// ListByRegistrationIDs retrieves the latest payment per registration
func (r *PostgresPaymentRepository) ListByRegistrationIDs(ctx context.Context, registrationIDs []string) ([]*domain.Payment, error) {
	if len(registrationIDs) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`
		SELECT DISTINCT ON (registration_id) %s
		FROM payments
		WHERE registration_id = ANY($1)
		ORDER BY registration_id, created_at DESC
	`, paymentColumns)
	rows, err := r.pool.Query(ctx, query, registrationIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		payment, err := r.scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

// Update updates a payment
func (r *PostgresPaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	query := `
		UPDATE payments SET
			status = $2, transaction_id = $3, payment_date = $4, updated_at = $5
		WHERE id = $1
	`
	payment.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		payment.ID,
		payment.Status,
		payment.TransactionID,
		payment.PaymentDate,
		payment.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

// TotalCompletedAmount returns the sum of completed payment amounts
func (r *PostgresPaymentRepository) TotalCompletedAmount(ctx context.Context) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = $1`
	err := r.pool.QueryRow(ctx, query, domain.PaymentStatusCompleted).Scan(&total)
	return total, err
}
