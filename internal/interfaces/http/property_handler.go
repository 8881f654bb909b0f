package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nivasahq/nivasa-portal/internal/application/usecase"
)

// PropertyHandler listado de propiedades del propietario.
type PropertyHandler struct {
	uc *usecase.PropertyUseCase
}

// NewPropertyHandler construye el handler de propiedades.
func NewPropertyHandler(uc *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{uc: uc}
}

// List godoc
// @Summary      Propiedades del usuario de la sesión
// @Tags         properties
// @Produce      json
// @Param        type  query  string  false  "flat | pg"
// @Success      200
// @Router       /api/properties [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), Snapshot(c).Token, c.Query("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"properties": list})
}
