package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura según el API remoto.
const (
	InvoicePending = "pending"
	InvoicePaid    = "paid"
	InvoiceOverdue = "overdue"
)

// Invoice es una factura de renta/servicios calculada por el API remoto.
// Los montos viajan como string decimal en el wire y se materializan como
// decimal.Decimal para la vista (el gateway nunca recalcula la factura).
type Invoice struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	PropertyID string          `json:"propertyId,omitempty"`
	Period     string          `json:"period"` // "2026-08"
	Concept    string          `json:"concept"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"` // "INR"
	Status     string          `json:"status"`
	DueDate    time.Time       `json:"dueDate"`
	PaidAt     *time.Time      `json:"paidAt,omitempty"`
}

// Outstanding informa si la factura sigue adeudada.
func (i Invoice) Outstanding() bool {
	return i.Status == InvoicePending || i.Status == InvoiceOverdue
}
