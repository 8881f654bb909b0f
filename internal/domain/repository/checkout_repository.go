package repository

import (
	"context"

	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
)

// CheckoutRepository define el puerto de persistencia para la auditoría
// local de intentos de checkout.
type CheckoutRepository interface {
	Create(ctx context.Context, attempt *entity.CheckoutAttempt) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.CheckoutAttempt, error)
}
