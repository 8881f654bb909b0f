// Package policy contiene las funciones puras de autorización del portal:
// ruta por defecto de cada rol, pertenencia a listas de roles y permisos
// por clave de navegación. Sin estado, sin efectos: todo lo que necesitan
// llega por parámetro, lo que las hace testeables en aislamiento.
package policy

import "github.com/nivasahq/nivasa-portal/internal/domain/entity"

// DefaultRouteForRole devuelve la ruta de aterrizaje de un rol. Es función
// total: el switch es exhaustivo sobre el enum cerrado y cualquier rol
// restante (PG_TENANT, CITIZEN o un valor no normalizado) cae al
// dashboard genérico.
func DefaultRouteForRole(role entity.Role) string {
	switch role {
	case entity.RoleAdmin:
		return RouteAdminDashboard
	case entity.RoleOfficer:
		return RouteOfficerDashboard
	case entity.RoleFlatOwner:
		return RouteFlatDashboard
	case entity.RolePGOwner:
		return RoutePGDashboard
	case entity.RolePGTenant, entity.RoleCitizen:
		return RouteDashboard
	default:
		return RouteDashboard
	}
}

// IsPermitted decide si un rol puede usar una clave de navegación.
// ADMIN tiene bypass incondicional; el resto de roles solo pasa si la
// clave aparece en sus grants (vacío si el NavAccess no trae nada).
func IsPermitted(role entity.Role, granted []entity.NavKey, key entity.NavKey) bool {
	if role == entity.RoleAdmin {
		return true
	}
	for _, k := range granted {
		if k == key {
			return true
		}
	}
	return false
}

// RoleMatches informa si role es no vacío y está en la lista permitida.
func RoleMatches(role entity.Role, allowed []entity.Role) bool {
	if role == "" {
		return false
	}
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}
