package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivasahq/nivasa-portal/internal/application/dto"
	"github.com/nivasahq/nivasa-portal/internal/application/policy"
	"github.com/nivasahq/nivasa-portal/internal/application/session"
	"github.com/nivasahq/nivasa-portal/internal/application/usecase"
	"github.com/nivasahq/nivasa-portal/internal/domain"
	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
	"github.com/nivasahq/nivasa-portal/internal/infrastructure/memory"
	"github.com/nivasahq/nivasa-portal/pkg/logger"
)

type fakeOnboardingAPI struct {
	status   string
	err      error
	lastStep string
	payload  any
}

func (f *fakeOnboardingAPI) SubmitOnboardingStep(_ context.Context, _, step string, payload any) (string, error) {
	f.lastStep = step
	f.payload = payload
	return f.status, f.err
}

type refreshIdentity struct {
	user  *entity.User
	calls int
}

func (r *refreshIdentity) GetMe(_ context.Context, _ string) (*entity.User, error) {
	r.calls++
	return r.user, nil
}

func tenantStore(t *testing.T, api session.IdentityAPI, user *entity.User) *session.Store {
	t.Helper()
	store := session.NewStore(memory.NewSessionStorage(), api, "sesion-onboarding", logger.Nop())
	store.Initialize(context.Background())
	require.NoError(t, store.Login(context.Background(), user, "tok-tenant"))
	return store
}

func validProfile() dto.OnboardingProfileRequest {
	return dto.OnboardingProfileRequest{FullName: "Asha Rao", Phone: "9876543210"}
}

// ──────────────────────────────────────────────────────────────────────────────
// SubmitProfile
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitProfile_NormalizaYReenvia(t *testing.T) {
	api := &fakeOnboardingAPI{status: "kyc"}
	uc := usecase.NewOnboardingUseCase(api)
	store := tenantStore(t, &refreshIdentity{}, &entity.User{ID: "t1", Role: entity.RolePGTenant, OnboardingStatus: "profile"})

	res, err := uc.SubmitProfile(context.Background(), store, validProfile())
	require.NoError(t, err)

	assert.Equal(t, "kyc", res.Status)
	assert.Empty(t, res.RedirectTo, "el flujo sigue abierto: sin redirect")
	assert.Equal(t, "profile", api.lastStep)
	sent, ok := api.payload.(dto.OnboardingProfileRequest)
	require.True(t, ok)
	assert.Equal(t, "+919876543210", sent.Phone)
}

func TestSubmitProfile_TelefonoInvalido(t *testing.T) {
	uc := usecase.NewOnboardingUseCase(&fakeOnboardingAPI{})
	store := tenantStore(t, &refreshIdentity{}, &entity.User{ID: "t1", Role: entity.RolePGTenant})

	in := validProfile()
	in.Phone = "12345"
	_, err := uc.SubmitProfile(context.Background(), store, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmitProfile_ContactoDeEmergenciaInvalido(t *testing.T) {
	uc := usecase.NewOnboardingUseCase(&fakeOnboardingAPI{})
	store := tenantStore(t, &refreshIdentity{}, &entity.User{ID: "t1", Role: entity.RolePGTenant})

	in := validProfile()
	in.EmergencyContact = "no-es-telefono"
	_, err := uc.SubmitProfile(context.Background(), store, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// SubmitKYC
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitKYC_AadhaarValido(t *testing.T) {
	api := &fakeOnboardingAPI{status: "agreement"}
	uc := usecase.NewOnboardingUseCase(api)
	store := tenantStore(t, &refreshIdentity{}, &entity.User{ID: "t1", Role: entity.RolePGTenant})

	res, err := uc.SubmitKYC(context.Background(), store, dto.OnboardingKYCRequest{
		Aadhaar: "2345 6789 0124",
		PAN:     "ABCPE1234F",
	})
	require.NoError(t, err)
	assert.Equal(t, "agreement", res.Status)
	assert.Equal(t, "kyc", api.lastStep)
}

func TestSubmitKYC_AadhaarInvalido(t *testing.T) {
	uc := usecase.NewOnboardingUseCase(&fakeOnboardingAPI{})
	store := tenantStore(t, &refreshIdentity{}, &entity.User{ID: "t1", Role: entity.RolePGTenant})

	_, err := uc.SubmitKYC(context.Background(), store, dto.OnboardingKYCRequest{Aadhaar: "123456789012"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmitKYC_PANOpcionalPeroValidado(t *testing.T) {
	uc := usecase.NewOnboardingUseCase(&fakeOnboardingAPI{status: "agreement"})
	store := tenantStore(t, &refreshIdentity{}, &entity.User{ID: "t1", Role: entity.RolePGTenant})

	// Sin PAN pasa.
	_, err := uc.SubmitKYC(context.Background(), store, dto.OnboardingKYCRequest{Aadhaar: "234567890124"})
	require.NoError(t, err)

	// Con PAN malformado no.
	_, err = uc.SubmitKYC(context.Background(), store, dto.OnboardingKYCRequest{Aadhaar: "234567890124", PAN: "XXXX"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// AcceptAgreement y cierre del flujo
// ──────────────────────────────────────────────────────────────────────────────

func TestAcceptAgreement_CompletadoRefrescaLaSesion(t *testing.T) {
	api := &fakeOnboardingAPI{status: entity.OnboardingCompleted}
	identity := &refreshIdentity{user: &entity.User{
		ID: "t1", Role: entity.RolePGTenant, OnboardingStatus: entity.OnboardingCompleted,
	}}
	uc := usecase.NewOnboardingUseCase(api)
	store := tenantStore(t, identity, &entity.User{ID: "t1", Role: entity.RolePGTenant, OnboardingStatus: "agreement"})

	res, err := uc.AcceptAgreement(context.Background(), store, dto.OnboardingAgreementRequest{
		AgreementID: "agr-1", Accepted: true,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OnboardingCompleted, res.Status)
	assert.Equal(t, policy.RouteDashboard, res.RedirectTo)
	assert.Equal(t, 1, identity.calls, "el cierre del flujo refresca la identidad")
	assert.Equal(t, entity.OnboardingCompleted, store.Current().User.OnboardingStatus)
}

func TestAcceptAgreement_SinAceptacionExplicita(t *testing.T) {
	uc := usecase.NewOnboardingUseCase(&fakeOnboardingAPI{})
	store := tenantStore(t, &refreshIdentity{}, &entity.User{ID: "t1", Role: entity.RolePGTenant})

	_, err := uc.AcceptAgreement(context.Background(), store, dto.OnboardingAgreementRequest{AgreementID: "agr-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcance por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_SoloPGTenant(t *testing.T) {
	uc := usecase.NewOnboardingUseCase(&fakeOnboardingAPI{})
	store := tenantStore(t, &refreshIdentity{}, &entity.User{ID: "u1", Role: entity.RoleFlatOwner})

	_, err := uc.SubmitProfile(context.Background(), store, validProfile())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSubmit_SinSesion(t *testing.T) {
	uc := usecase.NewOnboardingUseCase(&fakeOnboardingAPI{})
	store := session.NewStore(memory.NewSessionStorage(), &refreshIdentity{}, "s", logger.Nop())
	store.Initialize(context.Background())

	_, err := uc.SubmitProfile(context.Background(), store, validProfile())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
