package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nivasahq/nivasa-portal/internal/domain"
	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
	"github.com/nivasahq/nivasa-portal/internal/domain/repository"
)

var _ repository.CheckoutRepository = (*CheckoutRepo)(nil)

// CheckoutRepo implementación del puerto CheckoutRepository sobre
// PostgreSQL (auditoría local de intentos de pago).
type CheckoutRepo struct {
	pool *pgxpool.Pool
}

// NewCheckoutRepository construye el adaptador de auditoría de checkouts.
func NewCheckoutRepository(pool *pgxpool.Pool) *CheckoutRepo {
	return &CheckoutRepo{pool: pool}
}

// Create persiste un intento de checkout.
func (r *CheckoutRepo) Create(ctx context.Context, a *entity.CheckoutAttempt) error {
	query := `
		INSERT INTO checkout_attempts (id, user_id, invoice_id, amount, currency, upstream_order_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.UserID, a.InvoiceID, a.Amount, a.Currency, a.UpstreamOrderID, a.Status, a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert checkout attempt: %w", err)
	}
	return nil
}

// ListByUser lista los intentos de un usuario, más recientes primero.
func (r *CheckoutRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.CheckoutAttempt, error) {
	query := `
		SELECT id, user_id, invoice_id, amount, currency, upstream_order_id, status, created_at
		FROM checkout_attempts WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list checkout attempts: %w", err)
	}
	defer rows.Close()
	var list []*entity.CheckoutAttempt
	for rows.Next() {
		var a entity.CheckoutAttempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.InvoiceID, &a.Amount, &a.Currency, &a.UpstreamOrderID, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan checkout attempt: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
