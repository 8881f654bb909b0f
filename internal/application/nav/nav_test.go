package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivasahq/nivasa-portal/internal/application/nav"
	"github.com/nivasahq/nivasa-portal/internal/application/policy"
	"github.com/nivasahq/nivasa-portal/internal/application/session"
	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
)

func snapFor(role entity.Role) session.Snapshot {
	return session.Snapshot{User: &entity.User{ID: "u1", Role: role}, Token: "tok"}
}

func keysOf(links []entity.NavLink) []entity.NavKey {
	out := make([]entity.NavKey, 0, len(links))
	for _, l := range links {
		out = append(out, l.Key)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// VisibleLinks
// ──────────────────────────────────────────────────────────────────────────────

func TestVisibleLinks_SinSesion_MenuVacio(t *testing.T) {
	assert.Nil(t, nav.VisibleLinks(session.Snapshot{}, nil))
	assert.Nil(t, nav.VisibleLinks(session.Snapshot{Loading: true}, nil))
}

func TestVisibleLinks_AdminVeTodoSinGrants(t *testing.T) {
	links := nav.VisibleLinks(snapFor(entity.RoleAdmin), nil)

	keys := keysOf(links)
	assert.Contains(t, keys, entity.NavAdminDashboard)
	assert.Contains(t, keys, entity.NavAdminUsers)
	assert.Contains(t, keys, entity.NavAdminNavAccess)
	assert.Contains(t, keys, entity.NavAdminProperties)
	assert.Contains(t, keys, entity.NavBilling, "ADMIN también ve los enlaces compartidos")
	assert.NotContains(t, keys, entity.NavOfficerDashboard, "ADMIN no hereda enlaces de otras familias")
}

func TestVisibleLinks_NoAdminFiltraPorGrants(t *testing.T) {
	granted := []entity.NavKey{entity.NavOwnerPGDashboard, entity.NavDashboard}
	links := nav.VisibleLinks(snapFor(entity.RolePGOwner), granted)

	keys := keysOf(links)
	assert.Contains(t, keys, entity.NavOwnerPGDashboard)
	assert.Contains(t, keys, entity.NavDashboard)
	assert.NotContains(t, keys, entity.NavOwnerPGTenants, "sin grant no hay enlace")
	assert.NotContains(t, keys, entity.NavBilling)
}

func TestVisibleLinks_SinGrants_MenuVacioParaNoAdmin(t *testing.T) {
	links := nav.VisibleLinks(snapFor(entity.RoleOfficer), nil)
	assert.Empty(t, links, "sin grants un rol no ADMIN no ve ningún enlace")
}

func TestVisibleLinks_CitizenSoloEnlacesCompartidos(t *testing.T) {
	granted := []entity.NavKey{entity.NavDashboard, entity.NavBilling, entity.NavComplaints, entity.NavOwnerPGDashboard}
	links := nav.VisibleLinks(snapFor(entity.RoleCitizen), granted)

	keys := keysOf(links)
	assert.Equal(t, []entity.NavKey{entity.NavDashboard, entity.NavBilling, entity.NavComplaints}, keys,
		"CITIZEN no tiene familia propia: solo enlaces compartidos, aunque el grant liste otras claves")
}

func TestVisibleLinks_ConservaElOrdenDeLaTabla(t *testing.T) {
	granted := []entity.NavKey{
		entity.NavOwnerPGTenants, entity.NavOwnerPGDashboard, entity.NavBilling,
	}
	links := nav.VisibleLinks(snapFor(entity.RolePGOwner), granted)

	// El orden lo fija la tabla, no el orden de los grants.
	require.Len(t, links, 3)
	assert.Equal(t, entity.NavOwnerPGDashboard, links[0].Key)
	assert.Equal(t, entity.NavOwnerPGTenants, links[1].Key)
	assert.Equal(t, entity.NavBilling, links[2].Key)
}

// ──────────────────────────────────────────────────────────────────────────────
// PathFor
// ──────────────────────────────────────────────────────────────────────────────

func TestPathFor_ClavesConocidas(t *testing.T) {
	assert.Equal(t, policy.RouteDashboard, nav.PathFor(entity.NavDashboard))
	assert.Equal(t, policy.RouteOnboarding, nav.PathFor(entity.NavTenantOnboarding))
	assert.Equal(t, "/admin/nav-access", nav.PathFor(entity.NavAdminNavAccess))
}

func TestPathFor_ClaveDesconocida_Vacio(t *testing.T) {
	assert.Empty(t, nav.PathFor(entity.NavKey("NO_EXISTE")))
}
