// Package nav deriva el menú visible del portal a partir de la sesión y
// los grants de NavAccess. Es derivación pura sobre tablas fijas: sin
// caché, sin estado y sin fetch propio; se recalcula en cada render.
package nav

import (
	"github.com/nivasahq/nivasa-portal/internal/application/policy"
	"github.com/nivasahq/nivasa-portal/internal/application/session"
	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
)

// Tablas estáticas de enlaces candidatos por familia de rol. El orden de
// cada tabla es el orden de despliegue en el menú.
var (
	adminLinks = []entity.NavLink{
		{Key: entity.NavAdminDashboard, Path: policy.RouteAdminDashboard, Label: "Panel de administración"},
		{Key: entity.NavAdminUsers, Path: "/admin/users", Label: "Usuarios"},
		{Key: entity.NavAdminProperties, Path: "/admin/properties", Label: "Propiedades"},
		{Key: entity.NavAdminNavAccess, Path: "/admin/nav-access", Label: "Accesos de navegación"},
	}

	officerLinks = []entity.NavLink{
		{Key: entity.NavOfficerDashboard, Path: policy.RouteOfficerDashboard, Label: "Panel de oficial"},
		{Key: entity.NavOfficerComplaints, Path: "/officer/complaints", Label: "Quejas asignadas"},
	}

	flatOwnerLinks = []entity.NavLink{
		{Key: entity.NavOwnerFlatDashboard, Path: policy.RouteFlatDashboard, Label: "Panel de departamentos"},
		{Key: entity.NavOwnerFlatProps, Path: "/owner/flat-properties", Label: "Mis departamentos"},
	}

	pgOwnerLinks = []entity.NavLink{
		{Key: entity.NavOwnerPGDashboard, Path: policy.RoutePGDashboard, Label: "Panel PG"},
		{Key: entity.NavOwnerPGProps, Path: "/owner/pg-properties", Label: "Mis PG"},
		{Key: entity.NavOwnerPGTenants, Path: "/owner/pg-tenants", Label: "Inquilinos"},
	}

	pgTenantLinks = []entity.NavLink{
		{Key: entity.NavTenantDashboard, Path: policy.RouteDashboard, Label: "Mi panel"},
		{Key: entity.NavTenantOnboarding, Path: policy.RouteOnboarding, Label: "Onboarding"},
	}

	// sharedLinks se muestran a cualquier rol, cada uno gateado
	// individualmente por IsPermitted.
	sharedLinks = []entity.NavLink{
		{Key: entity.NavDashboard, Path: policy.RouteDashboard, Label: "Inicio"},
		{Key: entity.NavBilling, Path: policy.RouteBilling, Label: "Facturación"},
		{Key: entity.NavComplaints, Path: policy.RouteComplaints, Label: "Quejas"},
	}
)

// PathFor devuelve la ruta asociada a una clave de navegación, o vacío si
// la clave no figura en ninguna tabla.
func PathFor(key entity.NavKey) string {
	for _, table := range [][]entity.NavLink{adminLinks, officerLinks, flatOwnerLinks, pgOwnerLinks, pgTenantLinks, sharedLinks} {
		for _, l := range table {
			if l.Key == key {
				return l.Path
			}
		}
	}
	return ""
}

// VisibleLinks calcula el menú para la sesión dada. ADMIN ve la tabla de
// administración completa sin filtrar por grants (bypass de la policy);
// el resto de familias se filtra enlace a enlace con IsPermitted. Sin
// sesión autenticada el menú es vacío.
func VisibleLinks(snap session.Snapshot, granted []entity.NavKey) []entity.NavLink {
	if !snap.IsAuthenticated() {
		return nil
	}
	role := snap.Role()
	if role == entity.RoleAdmin {
		out := make([]entity.NavLink, 0, len(adminLinks)+len(sharedLinks))
		out = append(out, adminLinks...)
		out = append(out, sharedLinks...)
		return out
	}

	var candidates []entity.NavLink
	switch role {
	case entity.RoleOfficer:
		candidates = officerLinks
	case entity.RoleFlatOwner:
		candidates = flatOwnerLinks
	case entity.RolePGOwner:
		candidates = pgOwnerLinks
	case entity.RolePGTenant:
		candidates = pgTenantLinks
	}

	out := make([]entity.NavLink, 0, len(candidates)+len(sharedLinks))
	for _, l := range candidates {
		if policy.IsPermitted(role, granted, l.Key) {
			out = append(out, l)
		}
	}
	for _, l := range sharedLinks {
		if policy.IsPermitted(role, granted, l.Key) {
			out = append(out, l)
		}
	}
	return out
}
