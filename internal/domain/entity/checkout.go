package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados locales de un intento de checkout.
const (
	CheckoutCreated = "created"
	CheckoutFailed  = "failed"
)

// CheckoutAttempt es el registro de auditoría local de un intento de pago:
// qué factura se entregó al widget de checkout y con qué orden remota.
// El cobro real lo orquesta el API remoto; aquí solo queda la traza.
type CheckoutAttempt struct {
	ID              string
	UserID          string
	InvoiceID       string
	Amount          decimal.Decimal
	Currency        string
	UpstreamOrderID string
	Status          string
	CreatedAt       time.Time
}
