package entity

import "time"

// Role es el enum cerrado de roles del portal. Cualquier valor desconocido
// se normaliza a RoleCitizen en ParseRole.
type Role string

// Roles válidos para User.
const (
	RoleAdmin     Role = "ADMIN"
	RoleOfficer   Role = "OFFICER"
	RoleFlatOwner Role = "FLAT_OWNER"
	RolePGOwner   Role = "PG_OWNER"
	RolePGTenant  Role = "PG_TENANT"
	RoleCitizen   Role = "CITIZEN"
)

// ParseRole normaliza un rol recibido del API remoto. Un rol vacío o
// desconocido cae a RoleCitizen: un ciudadano solo tiene el dashboard
// genérico, sin pantallas propias.
func ParseRole(s string) Role {
	r := Role(s)
	if r.IsValid() {
		return r
	}
	return RoleCitizen
}

// IsValid informa si el rol pertenece al enum cerrado.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOfficer, RoleFlatOwner, RolePGOwner, RolePGTenant, RoleCitizen:
		return true
	}
	return false
}

// OnboardingCompleted es el único estado terminal del onboarding PG_TENANT.
// Cualquier otro valor no vacío significa onboarding incompleto.
const OnboardingCompleted = "completed"

// User representa la identidad autenticada que entrega el API remoto.
// OnboardingStatus solo aplica a RolePGTenant; vacío significa "no aplica".
type User struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone,omitempty"`
	Role             Role              `json:"role"`
	OnboardingStatus string            `json:"onboardingStatus,omitempty"`
	Profile          map[string]string `json:"profile,omitempty"`
	CreatedAt        time.Time         `json:"createdAt,omitempty"`
}

// OnboardingIncomplete informa si el usuario es un PG_TENANT con el
// onboarding pendiente. Para cualquier otro rol siempre es false.
func (u *User) OnboardingIncomplete() bool {
	if u == nil || u.Role != RolePGTenant {
		return false
	}
	return u.OnboardingStatus != "" && u.OnboardingStatus != OnboardingCompleted
}
