package dto

// OnboardingProfileRequest paso 1 del onboarding PG_TENANT: datos básicos.
type OnboardingProfileRequest struct {
	FullName         string `json:"fullName" validate:"required,min=1,max=200"`
	Phone            string `json:"phone" validate:"required"`
	EmergencyContact string `json:"emergencyContact" validate:"omitempty"`
}

// OnboardingKYCRequest paso 2: documentos de identidad indios. Se validan
// localmente (Aadhaar con checksum Verhoeff, estructura del PAN) antes de
// reenviar al API remoto; la verificación real contra el proveedor KYC la
// hace el API.
type OnboardingKYCRequest struct {
	Aadhaar string `json:"aadhaar" validate:"required"`
	PAN     string `json:"pan" validate:"omitempty"`
}

// OnboardingAgreementRequest paso final: aceptación del contrato.
type OnboardingAgreementRequest struct {
	AgreementID string `json:"agreementId" validate:"required"`
	Accepted    bool   `json:"accepted" validate:"required"`
}

// OnboardingStatusResponse estado del flujo tras cada paso.
type OnboardingStatusResponse struct {
	Status     string `json:"status"`
	RedirectTo string `json:"redirectTo,omitempty"`
}
