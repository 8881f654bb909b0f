package policy

// Rutas contractuales del portal. Los guards comparan contra estas
// constantes por identidad exacta, nunca por substring.
const (
	RouteLogin            = "/auth/login"
	RouteRegister         = "/auth/register"
	RouteDashboard        = "/dashboard"
	RouteAdminDashboard   = "/admin/dashboard"
	RouteOfficerDashboard = "/officer/dashboard"
	RouteFlatDashboard    = "/owner/flat-dashboard"
	RoutePGDashboard      = "/owner/pg-dashboard"
	RouteOnboarding       = "/tenant/onboarding"
	RouteBilling          = "/billing"
	RouteComplaints       = "/complaints"
)
