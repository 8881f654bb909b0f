package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nivasahq/nivasa-portal/internal/application/auth"
	"github.com/nivasahq/nivasa-portal/internal/application/dto"
	"github.com/nivasahq/nivasa-portal/internal/application/policy"
	"github.com/nivasahq/nivasa-portal/internal/application/session"
	"github.com/nivasahq/nivasa-portal/internal/domain"
	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
	"github.com/nivasahq/nivasa-portal/internal/infrastructure/memory"
	"github.com/nivasahq/nivasa-portal/internal/infrastructure/upstream"
	"github.com/nivasahq/nivasa-portal/pkg/logger"
)

type fakeAuthAPI struct {
	loginRes    *upstream.LoginResult
	loginErr    error
	registerRes *upstream.LoginResult
	registerErr error
	registered  *upstream.RegisterPayload
}

func (f *fakeAuthAPI) Login(_ context.Context, _, _ string) (*upstream.LoginResult, error) {
	return f.loginRes, f.loginErr
}

func (f *fakeAuthAPI) Register(_ context.Context, in upstream.RegisterPayload) (*upstream.LoginResult, error) {
	f.registered = &in
	return f.registerRes, f.registerErr
}

type noIdentity struct{}

func (noIdentity) GetMe(_ context.Context, _ string) (*entity.User, error) {
	return nil, errors.New("no debería llamarse")
}

func newSessionStore() *session.Store {
	store := session.NewStore(memory.NewSessionStorage(), noIdentity{}, "sesion-auth", logger.Nop())
	store.Initialize(context.Background())
	return store
}

func demoCfg(t *testing.T, password string) auth.DemoConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.DemoConfig{
		Enabled:      true,
		Email:        "demo@nivasa.example",
		PasswordHash: string(hash),
		Name:         "Cuenta demo",
		Role:         "PG_OWNER",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login remoto
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_RemotoExitoso_PueblaLaSesion(t *testing.T) {
	api := &fakeAuthAPI{loginRes: &upstream.LoginResult{
		User:  &entity.User{ID: "u1", Role: entity.RoleOfficer},
		Token: "tok-1",
	}}
	uc := auth.NewUseCase(api, auth.DemoConfig{})
	store := newSessionStore()

	res, err := uc.Login(context.Background(), store, dto.LoginRequest{Email: "o@x.in", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, policy.RouteOfficerDashboard, res.RedirectTo, "sin redirect del API manda la policy")
	snap := store.Current()
	assert.True(t, snap.IsAuthenticated())
	assert.Equal(t, "tok-1", snap.Token)
}

func TestLogin_RespetaElRedirectDelAPI(t *testing.T) {
	api := &fakeAuthAPI{loginRes: &upstream.LoginResult{
		User:       &entity.User{ID: "u1", Role: entity.RoleCitizen},
		Token:      "tok-1",
		RedirectTo: "/bienvenida",
	}}
	uc := auth.NewUseCase(api, auth.DemoConfig{})

	res, err := uc.Login(context.Background(), newSessionStore(), dto.LoginRequest{Email: "c@x.in", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "/bienvenida", res.RedirectTo)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := auth.NewUseCase(&fakeAuthAPI{}, auth.DemoConfig{})

	_, err := uc.Login(context.Background(), newSessionStore(), dto.LoginRequest{Email: "a@x.in"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_RespuestaRemotaIncompleta(t *testing.T) {
	api := &fakeAuthAPI{loginRes: &upstream.LoginResult{User: &entity.User{ID: "u1"}}} // sin token
	uc := auth.NewUseCase(api, auth.DemoConfig{})

	_, err := uc.Login(context.Background(), newSessionStore(), dto.LoginRequest{Email: "a@x.in", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login demo
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_DemoExitoso_SesionEstaticaSinRed(t *testing.T) {
	api := &fakeAuthAPI{loginErr: errors.New("no debería llamarse")}
	uc := auth.NewUseCase(api, demoCfg(t, "clave-demo"))
	store := newSessionStore()

	res, err := uc.Login(context.Background(), store, dto.LoginRequest{
		Email: "DEMO@nivasa.example", Password: "clave-demo", // el email compara sin distinguir mayúsculas
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RolePGOwner, res.User.Role)
	assert.Equal(t, policy.RoutePGDashboard, res.RedirectTo)
	assert.Equal(t, session.StaticToken, store.Current().Token)
}

func TestLogin_DemoPasswordIncorrecto(t *testing.T) {
	uc := auth.NewUseCase(&fakeAuthAPI{}, demoCfg(t, "clave-demo"))

	_, err := uc.Login(context.Background(), newSessionStore(), dto.LoginRequest{
		Email: "demo@nivasa.example", Password: "otra-clave",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_DemoDeshabilitado_VaAlAPI(t *testing.T) {
	cfg := demoCfg(t, "clave-demo")
	cfg.Enabled = false
	api := &fakeAuthAPI{loginErr: errors.New("credenciales inválidas")}
	uc := auth.NewUseCase(api, cfg)

	_, err := uc.Login(context.Background(), newSessionStore(), dto.LoginRequest{
		Email: "demo@nivasa.example", Password: "clave-demo",
	})
	assert.Error(t, err, "sin demo habilitado el email demo se trata como cualquier otro")
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_NormalizaElTelefono(t *testing.T) {
	api := &fakeAuthAPI{registerRes: &upstream.LoginResult{
		User:  &entity.User{ID: "u2", Role: entity.RoleCitizen},
		Token: "tok-2",
	}}
	uc := auth.NewUseCase(api, auth.DemoConfig{})
	store := newSessionStore()

	res, err := uc.Register(context.Background(), store, dto.RegisterRequest{
		Name: "Asha", Email: "asha@x.in", Phone: "098765 43210", Password: "pw",
	})
	require.NoError(t, err)

	require.NotNil(t, api.registered)
	assert.Equal(t, "+919876543210", api.registered.Phone)
	assert.Equal(t, policy.RouteDashboard, res.RedirectTo)
	assert.True(t, store.Current().IsAuthenticated())
}

func TestRegister_TelefonoInvalido(t *testing.T) {
	uc := auth.NewUseCase(&fakeAuthAPI{}, auth.DemoConfig{})

	_, err := uc.Register(context.Background(), newSessionStore(), dto.RegisterRequest{
		Name: "Asha", Email: "asha@x.in", Phone: "12345", Password: "pw",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_DejaLaSesionAnonima(t *testing.T) {
	uc := auth.NewUseCase(&fakeAuthAPI{}, demoCfg(t, "clave-demo"))
	store := newSessionStore()
	_, err := uc.Login(context.Background(), store, dto.LoginRequest{
		Email: "demo@nivasa.example", Password: "clave-demo",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), store))
	assert.False(t, store.Current().IsAuthenticated())
}
