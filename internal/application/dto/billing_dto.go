package dto

import (
	"github.com/shopspring/decimal"

	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
)

// BillingViewResponse vista de facturación: facturas del API remoto más
// el total adeudado derivado para la cabecera (suma de presentación; el
// cálculo de cada factura es del API remoto).
type BillingViewResponse struct {
	Invoices []entity.Invoice `json:"invoices"`
	TotalDue decimal.Decimal  `json:"totalDue"`
	Currency string           `json:"currency"`
}

// CheckoutRequest entrada para iniciar el checkout de una factura.
type CheckoutRequest struct {
	InvoiceID string `json:"invoiceId" validate:"required"`
}

// CheckoutResponse salida con la orden remota que consume el widget de
// pago en el navegador.
type CheckoutResponse struct {
	OrderID   string          `json:"orderId"`
	InvoiceID string          `json:"invoiceId"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
}
