package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/nivasahq/nivasa-portal/internal/application/dto"
	"github.com/nivasahq/nivasa-portal/internal/application/guard"
	"github.com/nivasahq/nivasa-portal/internal/application/session"
	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
	"github.com/nivasahq/nivasa-portal/pkg/logger"
)

// GrantsProvider entrega los grants de navegación de un rol. Lo
// implementa *usecase.NavAccessService; la interfaz evita el import
// circular y permite mocks en tests.
type GrantsProvider interface {
	GrantsFor(ctx context.Context, token string, role entity.Role) ([]entity.NavKey, error)
}

// grantsFor resuelve los grants de navegación del snapshot. ADMIN no los
// necesita (bypass de la policy) y un fallo al obtenerlos degrada a lista
// vacía: el gate se cierra para roles no ADMIN y el menú queda vacío,
// nunca una página de error.
func grantsFor(ctx context.Context, provider GrantsProvider, log *logger.Logger, snap session.Snapshot) []entity.NavKey {
	if !snap.IsAuthenticated() || snap.Role() == entity.RoleAdmin {
		return nil
	}
	granted, err := provider.GrantsFor(ctx, snap.Token, snap.Role())
	if err != nil {
		log.Warn().Err(err).Str("role", string(snap.Role())).Msg("grants de navegación inaccesibles")
		return nil
	}
	return granted
}

// applyDecision traduce el veredicto de un guard al plano HTTP:
// PENDING -> 202 con el placeholder de carga, redirect -> 302, allow ->
// continúa la cadena. Una denegación nunca es una página de error.
func applyDecision(c *fiber.Ctx, d guard.Decision) error {
	switch d.Outcome {
	case guard.OutcomePending:
		return c.Status(fiber.StatusAccepted).JSON(dto.PendingResponse{Status: "loading"})
	case guard.OutcomeRedirect:
		return c.Redirect(d.Target, fiber.StatusFound)
	default:
		return c.Next()
	}
}

// RequireAuthenticated guard genérico: sesión autenticada, con la
// redirección por onboarding incompleto de PG_TENANT incluida.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return applyDecision(c, guard.Authenticated(Snapshot(c), c.Path()))
	}
}

// RequireOfficer restringe a OFFICER; otros autenticados rebotan a su
// propia ruta por defecto, no a login.
func RequireOfficer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return applyDecision(c, guard.OfficerOnly(Snapshot(c)))
	}
}

// RequireAdmin restringe a ADMIN.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return applyDecision(c, guard.AdminOnly(Snapshot(c)))
	}
}

// RequireAnyRole guard multi-rol sobre la ruta de la petición.
func RequireAnyRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return applyDecision(c, guard.AnyRole(Snapshot(c), roles, c.Path()))
	}
}

// RequireAnyRoleAt guard multi-rol con destino lógico fijo. Lo usan los
// endpoints API del onboarding: pertenecen al destino /tenant/onboarding
// y deben heredar su exención del chequeo de onboarding.
func RequireAnyRoleAt(dest string, roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return applyDecision(c, guard.AnyRole(Snapshot(c), roles, dest))
	}
}

// RequirePermitted guard multi-rol más gate por clave de navegación
// contra los grants de NavAccess. Si los grants no se pueden obtener se
// asume lista vacía (se cierra el paso); ADMIN no se ve afectado por el
// bypass de la policy.
func RequirePermitted(key entity.NavKey, grants GrantsProvider, log *logger.Logger, roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := Snapshot(c)
		granted := grantsFor(c.Context(), grants, log, snap)
		return applyDecision(c, guard.Permitted(snap, roles, granted, key, c.Path()))
	}
}

// PublicOnly protege login/registro: un autenticado rebota a su ruta por
// defecto y nunca ve el formulario.
func PublicOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return applyDecision(c, guard.PublicOnly(Snapshot(c)))
	}
}
