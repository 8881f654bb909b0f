package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nivasahq/nivasa-portal/internal/application/dto"
	"github.com/nivasahq/nivasa-portal/internal/application/usecase"
	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
)

// NavAccessHandler pantalla admin de edición de grants por rol.
type NavAccessHandler struct {
	svc *usecase.NavAccessService
}

// NewNavAccessHandler construye el handler de NavAccess.
func NewNavAccessHandler(svc *usecase.NavAccessService) *NavAccessHandler {
	return &NavAccessHandler{svc: svc}
}

// List godoc
// @Summary      Grants de navegación por rol
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.RoleAccessResponse
// @Router       /api/admin/role-access [get]
func (h *NavAccessHandler) List(c *fiber.Ctx) error {
	snap := Snapshot(c)
	access, err := h.svc.List(c.Context(), snap.Token)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.RoleAccessResponse{Access: access})
}

// Update godoc
// @Summary      Reemplazar los grants de un rol
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateRoleAccessRequest  true  "role, navItems"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/role-access [put]
func (h *NavAccessHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRoleAccessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	navItems := make([]entity.NavKey, 0, len(in.NavItems))
	for _, k := range in.NavItems {
		navItems = append(navItems, entity.NavKey(k))
	}
	snap := Snapshot(c)
	if err := h.svc.Update(c.Context(), snap.Token, entity.Role(in.Role), navItems); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
