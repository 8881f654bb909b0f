package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nivasahq/nivasa-portal/internal/application/dto"
	"github.com/nivasahq/nivasa-portal/internal/domain"
	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
	"github.com/nivasahq/nivasa-portal/internal/domain/repository"
	"github.com/nivasahq/nivasa-portal/internal/infrastructure/upstream"
	"github.com/nivasahq/nivasa-portal/pkg/logger"
)

// API operaciones de facturación del API remoto.
type API interface {
	ListInvoices(ctx context.Context, token string) ([]entity.Invoice, error)
	CreateCheckoutOrder(ctx context.Context, token, invoiceID string) (*upstream.CheckoutOrder, error)
}

// UseCase arma la vista de facturación y orquesta el arranque de un
// checkout. El cálculo de facturas y el cobro son del API remoto; aquí
// solo se suma el total adeudado para la cabecera y se deja la traza de
// auditoría local de cada intento.
type UseCase struct {
	api    API
	audits repository.CheckoutRepository
	log    *logger.Logger
}

// NewUseCase construye el caso de uso de facturación.
func NewUseCase(api API, audits repository.CheckoutRepository, log *logger.Logger) *UseCase {
	return &UseCase{api: api, audits: audits, log: log}
}

// View devuelve las facturas del usuario más el total adeudado (suma de
// las facturas pendientes o vencidas, solo para presentación).
func (uc *UseCase) View(ctx context.Context, token string) (*dto.BillingViewResponse, error) {
	invoices, err := uc.api.ListInvoices(ctx, token)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	currency := "INR"
	for _, inv := range invoices {
		if inv.Currency != "" {
			currency = inv.Currency
		}
		if inv.Outstanding() {
			total = total.Add(inv.Amount)
		}
	}
	return &dto.BillingViewResponse{Invoices: invoices, TotalDue: total, Currency: currency}, nil
}

// StartCheckout pide la orden de pago al API remoto y registra el intento
// en la auditoría local. La auditoría es best-effort: si falla se
// registra en el log y el checkout continúa.
func (uc *UseCase) StartCheckout(ctx context.Context, token string, user *entity.User, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if in.InvoiceID == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.api.CreateCheckoutOrder(ctx, token, in.InvoiceID)
	if err != nil {
		uc.recordAttempt(ctx, user, in.InvoiceID, decimal.Zero, "", "", entity.CheckoutFailed)
		return nil, err
	}
	amount, convErr := decimal.NewFromString(order.Amount)
	if convErr != nil {
		uc.log.Warn().Err(convErr).Str("order_id", order.OrderID).Msg("monto de orden ilegible")
		amount = decimal.Zero
	}
	uc.recordAttempt(ctx, user, in.InvoiceID, amount, order.Currency, order.OrderID, entity.CheckoutCreated)
	return &dto.CheckoutResponse{
		OrderID:   order.OrderID,
		InvoiceID: order.InvoiceID,
		Amount:    amount,
		Currency:  order.Currency,
	}, nil
}

// History devuelve los intentos de checkout registrados para el usuario.
func (uc *UseCase) History(ctx context.Context, userID string, page dto.PageRequest) ([]*entity.CheckoutAttempt, error) {
	page.DefaultPage()
	return uc.audits.ListByUser(ctx, userID, page.Limit, page.Offset)
}

func (uc *UseCase) recordAttempt(ctx context.Context, user *entity.User, invoiceID string, amount decimal.Decimal, currency, orderID, status string) {
	if currency == "" {
		currency = "INR"
	}
	attempt := &entity.CheckoutAttempt{
		ID:              uuid.New().String(),
		UserID:          user.ID,
		InvoiceID:       invoiceID,
		Amount:          amount,
		Currency:        currency,
		UpstreamOrderID: orderID,
		Status:          status,
		CreatedAt:       time.Now(),
	}
	if err := uc.audits.Create(ctx, attempt); err != nil {
		uc.log.Error().Err(err).Str("invoice_id", invoiceID).Msg("auditoría de checkout")
	}
}
