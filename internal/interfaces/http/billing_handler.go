package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nivasahq/nivasa-portal/internal/application/billing"
	"github.com/nivasahq/nivasa-portal/internal/application/dto"
)

// BillingHandler vista de facturación y arranque de checkout.
type BillingHandler struct {
	uc *billing.UseCase
}

// NewBillingHandler construye el handler de facturación.
func NewBillingHandler(uc *billing.UseCase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// View godoc
// @Summary      Facturas del usuario con total adeudado
// @Tags         billing
// @Produce      json
// @Success      200  {object}  dto.BillingViewResponse
// @Router       /api/billing/invoices [get]
func (h *BillingHandler) View(c *fiber.Ctx) error {
	out, err := h.uc.View(c.Context(), Snapshot(c).Token)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Iniciar el checkout de una factura
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "invoiceId"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/billing/checkout [post]
func (h *BillingHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	snap := Snapshot(c)
	out, err := h.uc.StartCheckout(c.Context(), snap.Token, snap.User, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Intentos de checkout registrados
// @Tags         billing
// @Produce      json
// @Param        limit   query  int  false  "por página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200
// @Router       /api/billing/history [get]
func (h *BillingHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	snap := Snapshot(c)
	list, err := h.uc.History(c.Context(), snap.User.ID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"attempts": list})
}
