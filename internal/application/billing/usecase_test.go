package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivasahq/nivasa-portal/internal/application/billing"
	"github.com/nivasahq/nivasa-portal/internal/application/dto"
	"github.com/nivasahq/nivasa-portal/internal/domain"
	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
	"github.com/nivasahq/nivasa-portal/internal/infrastructure/memory"
	"github.com/nivasahq/nivasa-portal/internal/infrastructure/upstream"
	"github.com/nivasahq/nivasa-portal/pkg/logger"
)

type fakeBillingAPI struct {
	invoices []entity.Invoice
	listErr  error
	order    *upstream.CheckoutOrder
	orderErr error
}

func (f *fakeBillingAPI) ListInvoices(_ context.Context, _ string) ([]entity.Invoice, error) {
	return f.invoices, f.listErr
}

func (f *fakeBillingAPI) CreateCheckoutOrder(_ context.Context, _, _ string) (*upstream.CheckoutOrder, error) {
	return f.order, f.orderErr
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var testUser = &entity.User{ID: "u1", Role: entity.RolePGTenant}

// ──────────────────────────────────────────────────────────────────────────────
// View
// ──────────────────────────────────────────────────────────────────────────────

func TestView_SumaSoloLoAdeudado(t *testing.T) {
	api := &fakeBillingAPI{invoices: []entity.Invoice{
		{ID: "f1", Amount: dec("8500.00"), Currency: "INR", Status: entity.InvoicePending},
		{ID: "f2", Amount: dec("1200.50"), Currency: "INR", Status: entity.InvoiceOverdue},
		{ID: "f3", Amount: dec("9999.99"), Currency: "INR", Status: entity.InvoicePaid},
	}}
	uc := billing.NewUseCase(api, memory.NewCheckoutRepository(), logger.Nop())

	view, err := uc.View(context.Background(), "tok")
	require.NoError(t, err)

	assert.Len(t, view.Invoices, 3, "la vista muestra todas las facturas, pagadas incluidas")
	assert.True(t, view.TotalDue.Equal(dec("9700.50")), "total adeudado %s", view.TotalDue)
	assert.Equal(t, "INR", view.Currency)
}

func TestView_SinFacturas_TotalCero(t *testing.T) {
	uc := billing.NewUseCase(&fakeBillingAPI{}, memory.NewCheckoutRepository(), logger.Nop())

	view, err := uc.View(context.Background(), "tok")
	require.NoError(t, err)
	assert.True(t, view.TotalDue.IsZero())
	assert.Equal(t, "INR", view.Currency)
}

func TestView_ErrorDelAPISePropaga(t *testing.T) {
	uc := billing.NewUseCase(&fakeBillingAPI{listErr: errors.New("api caída")},
		memory.NewCheckoutRepository(), logger.Nop())

	_, err := uc.View(context.Background(), "tok")
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// StartCheckout
// ──────────────────────────────────────────────────────────────────────────────

func TestStartCheckout_OrdenCreadaYAuditada(t *testing.T) {
	api := &fakeBillingAPI{order: &upstream.CheckoutOrder{
		OrderID: "ord-1", InvoiceID: "f1", Amount: "8500.00", Currency: "INR",
	}}
	audits := memory.NewCheckoutRepository()
	uc := billing.NewUseCase(api, audits, logger.Nop())

	resp, err := uc.StartCheckout(context.Background(), "tok", testUser, dto.CheckoutRequest{InvoiceID: "f1"})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", resp.OrderID)
	assert.True(t, resp.Amount.Equal(dec("8500.00")))

	attempts, err := audits.ListByUser(context.Background(), testUser.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, entity.CheckoutCreated, attempts[0].Status)
	assert.Equal(t, "ord-1", attempts[0].UpstreamOrderID)
	assert.True(t, attempts[0].Amount.Equal(dec("8500.00")))
}

func TestStartCheckout_FalloRemotoQuedaAuditado(t *testing.T) {
	api := &fakeBillingAPI{orderErr: errors.New("pasarela caída")}
	audits := memory.NewCheckoutRepository()
	uc := billing.NewUseCase(api, audits, logger.Nop())

	_, err := uc.StartCheckout(context.Background(), "tok", testUser, dto.CheckoutRequest{InvoiceID: "f1"})
	require.Error(t, err)

	attempts, err := audits.ListByUser(context.Background(), testUser.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, entity.CheckoutFailed, attempts[0].Status)
}

func TestStartCheckout_SinFactura(t *testing.T) {
	uc := billing.NewUseCase(&fakeBillingAPI{}, memory.NewCheckoutRepository(), logger.Nop())

	_, err := uc.StartCheckout(context.Background(), "tok", testUser, dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// History
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_MasRecientesPrimero(t *testing.T) {
	api := &fakeBillingAPI{order: &upstream.CheckoutOrder{OrderID: "ord-1", InvoiceID: "f1", Amount: "100", Currency: "INR"}}
	audits := memory.NewCheckoutRepository()
	uc := billing.NewUseCase(api, audits, logger.Nop())

	_, err := uc.StartCheckout(context.Background(), "tok", testUser, dto.CheckoutRequest{InvoiceID: "f1"})
	require.NoError(t, err)
	api.order = &upstream.CheckoutOrder{OrderID: "ord-2", InvoiceID: "f2", Amount: "200", Currency: "INR"}
	_, err = uc.StartCheckout(context.Background(), "tok", testUser, dto.CheckoutRequest{InvoiceID: "f2"})
	require.NoError(t, err)

	got, err := uc.History(context.Background(), testUser.ID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ord-2", got[0].UpstreamOrderID)
	assert.Equal(t, "ord-1", got[1].UpstreamOrderID)
}
