package dto

import "github.com/nivasahq/nivasa-portal/internal/domain/entity"

// NavResponse menú visible para la sesión actual.
type NavResponse struct {
	Links []entity.NavLink `json:"links"`
}

// RoleAccessResponse listado completo de grants por rol (pantalla admin).
type RoleAccessResponse struct {
	Access []entity.RoleAccess `json:"access"`
}

// UpdateRoleAccessRequest entrada para editar los grants de un rol.
type UpdateRoleAccessRequest struct {
	Role     string   `json:"role" validate:"required"`
	NavItems []string `json:"navItems" validate:"required"`
}
