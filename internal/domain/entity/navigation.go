package entity

// NavKey identifica una entrada de navegación del portal. El conjunto es
// cerrado: toda decisión de permisos se expresa en términos de estas claves.
type NavKey string

// Claves de navegación del portal.
const (
	NavDashboard          NavKey = "DASHBOARD"
	NavBilling            NavKey = "BILLING"
	NavComplaints         NavKey = "COMPLAINTS"
	NavAdminDashboard     NavKey = "ADMIN_DASHBOARD"
	NavAdminUsers         NavKey = "ADMIN_USERS"
	NavAdminNavAccess     NavKey = "ADMIN_NAV_ACCESS"
	NavAdminProperties    NavKey = "ADMIN_PROPERTIES"
	NavOfficerDashboard   NavKey = "OFFICER_DASHBOARD"
	NavOfficerComplaints  NavKey = "OFFICER_COMPLAINTS"
	NavOwnerFlatDashboard NavKey = "OWNER_FLAT_DASHBOARD"
	NavOwnerFlatProps     NavKey = "OWNER_FLAT_PROPERTIES"
	NavOwnerPGDashboard   NavKey = "OWNER_PG_DASHBOARD"
	NavOwnerPGProps       NavKey = "OWNER_PG_PROPERTIES"
	NavOwnerPGTenants     NavKey = "OWNER_PG_TENANTS"
	NavTenantDashboard    NavKey = "TENANT_DASHBOARD"
	NavTenantOnboarding   NavKey = "TENANT_ONBOARDING"
)

// NavLink es una entrada visible del menú: clave, ruta y etiqueta (1:1).
type NavLink struct {
	Key   NavKey `json:"key"`
	Path  string `json:"path"`
	Label string `json:"label"`
}

// RoleAccess es el grant persistido en el API remoto: qué claves de
// navegación tiene habilitadas cada rol (el orden no es significativo).
// ADMIN nunca se filtra por este grant (bypass total en la policy).
type RoleAccess struct {
	Role     Role     `json:"role"`
	NavItems []NavKey `json:"navItems"`
}
