package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nivasahq/nivasa-portal/internal/application/auth"
	"github.com/nivasahq/nivasa-portal/internal/application/billing"
	"github.com/nivasahq/nivasa-portal/internal/application/policy"
	"github.com/nivasahq/nivasa-portal/internal/application/session"
	"github.com/nivasahq/nivasa-portal/internal/application/usecase"
	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
	"github.com/nivasahq/nivasa-portal/pkg/config"
	"github.com/nivasahq/nivasa-portal/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions     *session.Manager
	AuthUC       *auth.UseCase
	NavAccess    *usecase.NavAccessService
	ComplaintUC  *usecase.ComplaintUseCase
	OnboardingUC *usecase.OnboardingUseCase
	PropertyUC   *usecase.PropertyUseCase
	BillingUC    *billing.UseCase
	Cookie       config.CookieConfig
	Log          *logger.Logger
}

// Router registra las rutas del gateway: las vistas guardadas (con la
// decisión allow/redirect/pending por navegación) y el API JSON que
// consumen.
func Router(app *fiber.App, deps RouterDeps) {
	withSession := SessionMiddleware(deps.Cookie, deps.Sessions, deps.Log)

	// ── Vistas guardadas ──────────────────────────────────────────────
	pages := app.Group("/", withSession)

	// Públicas: un autenticado rebota a su ruta por defecto.
	pages.Get(policy.RouteLogin, PublicOnly(), Page("login"))
	pages.Get(policy.RouteRegister, PublicOnly(), Page("register"))
	pages.Get("/auth/reset-password", PublicOnly(), Page("reset-password"))

	// Genéricas autenticadas.
	pages.Get(policy.RouteDashboard, RequireAuthenticated(), Page("dashboard"))
	pages.Get(policy.RouteComplaints, RequireAuthenticated(), Page("complaints"))

	// Facturación: multi-rol.
	pages.Get(policy.RouteBilling,
		RequireAnyRole(entity.RoleFlatOwner, entity.RolePGOwner, entity.RolePGTenant, entity.RoleCitizen),
		Page("billing"))

	// Administración: solo ADMIN.
	pages.Get(policy.RouteAdminDashboard, RequireAdmin(), Page("admin-dashboard"))
	pages.Get("/admin/users", RequireAdmin(), Page("admin-users"))
	pages.Get("/admin/properties", RequireAdmin(), Page("admin-properties"))
	pages.Get("/admin/nav-access", RequireAdmin(), Page("admin-nav-access"))

	// Oficial: solo OFFICER.
	pages.Get(policy.RouteOfficerDashboard, RequireOfficer(), Page("officer-dashboard"))
	pages.Get("/officer/complaints", RequireOfficer(), Page("officer-complaints"))

	// Propietarios: rol + grant de NavAccess por clave de navegación.
	pages.Get(policy.RouteFlatDashboard,
		RequirePermitted(entity.NavOwnerFlatDashboard, deps.NavAccess, deps.Log, entity.RoleFlatOwner),
		Page("flat-dashboard"))
	pages.Get("/owner/flat-properties",
		RequirePermitted(entity.NavOwnerFlatProps, deps.NavAccess, deps.Log, entity.RoleFlatOwner),
		Page("flat-properties"))
	pages.Get(policy.RoutePGDashboard,
		RequirePermitted(entity.NavOwnerPGDashboard, deps.NavAccess, deps.Log, entity.RolePGOwner),
		Page("pg-dashboard"))
	pages.Get("/owner/pg-properties",
		RequirePermitted(entity.NavOwnerPGProps, deps.NavAccess, deps.Log, entity.RolePGOwner),
		Page("pg-properties"))
	pages.Get("/owner/pg-tenants",
		RequirePermitted(entity.NavOwnerPGTenants, deps.NavAccess, deps.Log, entity.RolePGOwner),
		Page("pg-tenants"))

	// Onboarding: el destino está exento del chequeo de onboarding
	// (si no, un PG_TENANT incompleto entraría en bucle de redirección).
	pages.Get(policy.RouteOnboarding,
		RequireAnyRole(entity.RolePGTenant),
		Page("tenant-onboarding"))

	// ── API JSON ──────────────────────────────────────────────────────
	api := app.Group("/api", withSession)

	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, deps.Cookie)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)
	authGroup.Post("/refresh", RequireAuthenticated(), authHandler.Refresh)

	navHandler := NewNavHandler(deps.NavAccess, deps.Log)
	api.Get("/nav", navHandler.Links)

	navAccessHandler := NewNavAccessHandler(deps.NavAccess)
	admin := api.Group("/admin", RequireAdmin())
	admin.Get("/role-access", navAccessHandler.List)
	admin.Put("/role-access", navAccessHandler.Update)

	billingHandler := NewBillingHandler(deps.BillingUC)
	billingGroup := api.Group("/billing",
		RequireAnyRole(entity.RoleFlatOwner, entity.RolePGOwner, entity.RolePGTenant, entity.RoleCitizen))
	billingGroup.Get("/invoices", billingHandler.View)
	billingGroup.Post("/checkout", billingHandler.Checkout)
	billingGroup.Get("/history", billingHandler.History)

	complaintHandler := NewComplaintHandler(deps.ComplaintUC)
	complaints := api.Group("/complaints", RequireAuthenticated())
	complaints.Get("/", complaintHandler.List)
	complaints.Post("/", complaintHandler.Create)
	complaints.Get("/:id", complaintHandler.Get)

	// Los pasos del onboarding heredan la exención del destino
	// /tenant/onboarding: sin ella, el guard redirigiría los POST del
	// propio flujo que intenta completarse.
	onboardingHandler := NewOnboardingHandler(deps.OnboardingUC)
	onboarding := api.Group("/tenant/onboarding",
		RequireAnyRoleAt(policy.RouteOnboarding, entity.RolePGTenant))
	onboarding.Post("/profile", onboardingHandler.Profile)
	onboarding.Post("/kyc", onboardingHandler.KYC)
	onboarding.Post("/agreement", onboardingHandler.Agreement)

	propertyHandler := NewPropertyHandler(deps.PropertyUC)
	api.Get("/properties",
		RequireAnyRole(entity.RoleAdmin, entity.RoleFlatOwner, entity.RolePGOwner),
		propertyHandler.List)
}
