package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nivasahq/nivasa-portal/internal/application/dto"
	"github.com/nivasahq/nivasa-portal/internal/application/usecase"
)

// ComplaintHandler registro y seguimiento de quejas.
type ComplaintHandler struct {
	uc *usecase.ComplaintUseCase
}

// NewComplaintHandler construye el handler de quejas.
func NewComplaintHandler(uc *usecase.ComplaintUseCase) *ComplaintHandler {
	return &ComplaintHandler{uc: uc}
}

// List godoc
// @Summary      Quejas visibles para la sesión
// @Tags         complaints
// @Produce      json
// @Param        limit   query  int  false  "por página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200
// @Router       /api/complaints [get]
func (h *ComplaintHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	list, err := h.uc.List(c.Context(), Snapshot(c).Token, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"complaints": list})
}

// Create godoc
// @Summary      Registrar una queja
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateComplaintRequest  true  "category, subject, description"
// @Success      201
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/complaints [post]
func (h *ComplaintHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateComplaintRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), Snapshot(c).Token, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Detalle de una queja
// @Tags         complaints
// @Produce      json
// @Param        id  path  string  true  "id de la queja"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/complaints/{id} [get]
func (h *ComplaintHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), Snapshot(c).Token, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
