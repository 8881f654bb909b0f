package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nivasahq/nivasa-portal/internal/application/dto"
	"github.com/nivasahq/nivasa-portal/internal/application/nav"
	"github.com/nivasahq/nivasa-portal/pkg/logger"
)

// NavHandler entrega el menú visible de la sesión actual.
type NavHandler struct {
	grants GrantsProvider
	log    *logger.Logger
}

// NewNavHandler construye el handler de navegación.
func NewNavHandler(grants GrantsProvider, log *logger.Logger) *NavHandler {
	return &NavHandler{grants: grants, log: log}
}

// Links godoc
// @Summary      Menú de navegación visible para la sesión
// @Tags         nav
// @Produce      json
// @Success      200  {object}  dto.NavResponse
// @Router       /api/nav [get]
func (h *NavHandler) Links(c *fiber.Ctx) error {
	snap := Snapshot(c)
	granted := grantsFor(c.Context(), h.grants, h.log, snap)
	return c.JSON(dto.NavResponse{Links: nav.VisibleLinks(snap, granted)})
}
