// Package guard implementa la capa de guards de ruta: por cada intento de
// navegación decide, de forma síncrona y pura, si se renderiza el
// contenido, se redirige, o se muestra el placeholder de carga.
//
// Orden de decisión fijo en todas las variantes:
//
//	carga → autenticación → rol → permiso de navegación → onboarding
//
// El chequeo de carga gana siempre (evita el "flash" de redirect a login
// durante el arranque). El chequeo de onboarding se omite únicamente
// cuando el destino ES la ruta de onboarding, comparada por identidad
// exacta y no por substring.
package guard

import (
	"github.com/nivasahq/nivasa-portal/internal/application/policy"
	"github.com/nivasahq/nivasa-portal/internal/application/session"
	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
)

// Outcome es el resultado terminal de un guard.
type Outcome int

const (
	// OutcomePending indica sesión aún resolviéndose: placeholder de carga.
	OutcomePending Outcome = iota
	// OutcomeAllow indica que el contenido protegido se renderiza.
	OutcomeAllow
	// OutcomeRedirect indica redirección a Decision.Target.
	OutcomeRedirect
)

// Decision es el veredicto de un guard para un intento de navegación.
type Decision struct {
	Outcome Outcome
	Target  string // ruta destino, solo cuando Outcome == OutcomeRedirect
}

func pending() Decision { return Decision{Outcome: OutcomePending} }
func allow() Decision   { return Decision{Outcome: OutcomeAllow} }
func redirect(to string) Decision {
	return Decision{Outcome: OutcomeRedirect, Target: to}
}

// onboardingExempt es el conjunto explícito de destinos exentos del
// chequeo de onboarding (identidad exacta de ruta, nunca substring: una
// ruta que meramente contenga el texto no queda exenta).
var onboardingExempt = map[string]bool{
	policy.RouteOnboarding: true,
}

// onboardingCheck aplica la redirección por onboarding incompleto de un
// PG_TENANT, salvo que el destino esté exento (la propia ruta de
// onboarding, para no entrar en bucle de auto-redirección).
func onboardingCheck(snap session.Snapshot, dest string) Decision {
	if onboardingExempt[dest] {
		return allow()
	}
	if snap.User.OnboardingIncomplete() {
		return redirect(policy.RouteOnboarding)
	}
	return allow()
}

// Authenticated es el guard genérico: exige sesión autenticada. Aunque la
// ruta no pida un rol concreto, un PG_TENANT con onboarding incompleto es
// redirigido igualmente a /tenant/onboarding.
func Authenticated(snap session.Snapshot, dest string) Decision {
	if snap.Loading {
		return pending()
	}
	if !snap.IsAuthenticated() {
		return redirect(policy.RouteLogin)
	}
	return onboardingCheck(snap, dest)
}

// RoleOnly exige sesión autenticada con exactamente el rol dado. Un
// autenticado con otro rol se redirige a SU ruta por defecto, no a login.
func RoleOnly(snap session.Snapshot, role entity.Role) Decision {
	if snap.Loading {
		return pending()
	}
	if !snap.IsAuthenticated() {
		return redirect(policy.RouteLogin)
	}
	if snap.Role() != role {
		return redirect(policy.DefaultRouteForRole(snap.Role()))
	}
	return allow()
}

// OfficerOnly restringe a OFFICER.
func OfficerOnly(snap session.Snapshot) Decision {
	return RoleOnly(snap, entity.RoleOfficer)
}

// AdminOnly restringe a ADMIN.
func AdminOnly(snap session.Snapshot) Decision {
	return RoleOnly(snap, entity.RoleAdmin)
}

// AnyRole exige sesión autenticada con rol dentro de la allow-list, y
// después aplica el chequeo de onboarding (con la exención por destino).
func AnyRole(snap session.Snapshot, allowed []entity.Role, dest string) Decision {
	if snap.Loading {
		return pending()
	}
	if !snap.IsAuthenticated() {
		return redirect(policy.RouteLogin)
	}
	if !policy.RoleMatches(snap.Role(), allowed) {
		return redirect(policy.DefaultRouteForRole(snap.Role()))
	}
	return onboardingCheck(snap, dest)
}

// Permitted es AnyRole más el gate por clave de navegación: roles no ADMIN
// solo pasan si la clave del destino figura en sus grants de NavAccess;
// la denegación redirige a la ruta por defecto del rol, nunca a login.
func Permitted(snap session.Snapshot, allowed []entity.Role, granted []entity.NavKey, key entity.NavKey, dest string) Decision {
	if snap.Loading {
		return pending()
	}
	if !snap.IsAuthenticated() {
		return redirect(policy.RouteLogin)
	}
	if !policy.RoleMatches(snap.Role(), allowed) {
		return redirect(policy.DefaultRouteForRole(snap.Role()))
	}
	if !policy.IsPermitted(snap.Role(), granted, key) {
		return redirect(policy.DefaultRouteForRole(snap.Role()))
	}
	return onboardingCheck(snap, dest)
}

// PublicOnly protege las pantallas públicas (login/registro/reset): un
// usuario ya autenticado rebota a su ruta por defecto y nunca ve el
// formulario. Sin chequeo de onboarding: un no autenticado siempre ve el
// contenido público.
func PublicOnly(snap session.Snapshot) Decision {
	if snap.Loading {
		return pending()
	}
	if snap.IsAuthenticated() {
		return redirect(policy.DefaultRouteForRole(snap.Role()))
	}
	return allow()
}
