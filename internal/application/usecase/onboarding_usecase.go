package usecase

import (
	"context"

	"github.com/nivasahq/nivasa-portal/internal/application/dto"
	"github.com/nivasahq/nivasa-portal/internal/application/policy"
	"github.com/nivasahq/nivasa-portal/internal/application/session"
	"github.com/nivasahq/nivasa-portal/internal/domain"
	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
	"github.com/nivasahq/nivasa-portal/pkg/validate"
)

// Pasos del flujo de onboarding en el API remoto.
const (
	onboardingStepProfile   = "profile"
	onboardingStepKYC       = "kyc"
	onboardingStepAgreement = "agreement"
)

// OnboardingAPI operación de onboarding del API remoto.
type OnboardingAPI interface {
	SubmitOnboardingStep(ctx context.Context, token, step string, payload any) (string, error)
}

// OnboardingUseCase conduce el flujo obligatorio de alta de un PG_TENANT:
// perfil → KYC → contrato. Cada paso se valida localmente antes de
// reenviarse; la verificación KYC real la hace el API remoto. Al quedar
// el flujo "completed" se refresca la identidad de la sesión para que los
// guards dejen de redirigir a /tenant/onboarding.
type OnboardingUseCase struct {
	api OnboardingAPI
}

// NewOnboardingUseCase construye el caso de uso de onboarding.
func NewOnboardingUseCase(api OnboardingAPI) *OnboardingUseCase {
	return &OnboardingUseCase{api: api}
}

// SubmitProfile paso 1: datos básicos, teléfono normalizado a +91.
func (uc *OnboardingUseCase) SubmitProfile(ctx context.Context, store *session.Store, in dto.OnboardingProfileRequest) (*dto.OnboardingStatusResponse, error) {
	if in.FullName == "" {
		return nil, domain.ErrInvalidInput
	}
	phone, ok := validate.MobileIN(in.Phone)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	in.Phone = phone
	if in.EmergencyContact != "" {
		if ec, okEC := validate.MobileIN(in.EmergencyContact); okEC {
			in.EmergencyContact = ec
		} else {
			return nil, domain.ErrInvalidInput
		}
	}
	return uc.submit(ctx, store, onboardingStepProfile, in)
}

// SubmitKYC paso 2: Aadhaar con checksum Verhoeff y, si viene, PAN.
func (uc *OnboardingUseCase) SubmitKYC(ctx context.Context, store *session.Store, in dto.OnboardingKYCRequest) (*dto.OnboardingStatusResponse, error) {
	if !validate.Aadhaar(in.Aadhaar) {
		return nil, domain.ErrInvalidInput
	}
	if in.PAN != "" && !validate.PAN(in.PAN) {
		return nil, domain.ErrInvalidInput
	}
	return uc.submit(ctx, store, onboardingStepKYC, in)
}

// AcceptAgreement paso final: aceptación explícita del contrato.
func (uc *OnboardingUseCase) AcceptAgreement(ctx context.Context, store *session.Store, in dto.OnboardingAgreementRequest) (*dto.OnboardingStatusResponse, error) {
	if in.AgreementID == "" || !in.Accepted {
		return nil, domain.ErrInvalidInput
	}
	return uc.submit(ctx, store, onboardingStepAgreement, in)
}

func (uc *OnboardingUseCase) submit(ctx context.Context, store *session.Store, step string, payload any) (*dto.OnboardingStatusResponse, error) {
	snap := store.Current()
	if !snap.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if snap.Role() != entity.RolePGTenant {
		return nil, domain.ErrForbidden
	}
	status, err := uc.api.SubmitOnboardingStep(ctx, snap.Token, step, payload)
	if err != nil {
		return nil, err
	}
	out := &dto.OnboardingStatusResponse{Status: status}
	if status == entity.OnboardingCompleted {
		// El API ya marcó el flujo como completo; refrescar la identidad
		// de la sesión para que el estado viaje en los próximos guards.
		store.RefreshUser(ctx)
		out.RedirectTo = policy.DefaultRouteForRole(snap.Role())
	}
	return out, nil
}
