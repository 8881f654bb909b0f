package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nivasahq/nivasa-portal/internal/application/dto"
	"github.com/nivasahq/nivasa-portal/internal/application/usecase"
)

// OnboardingHandler pasos del flujo de alta de un PG_TENANT.
type OnboardingHandler struct {
	uc *usecase.OnboardingUseCase
}

// NewOnboardingHandler construye el handler de onboarding.
func NewOnboardingHandler(uc *usecase.OnboardingUseCase) *OnboardingHandler {
	return &OnboardingHandler{uc: uc}
}

// Profile godoc
// @Summary      Paso 1: datos básicos del inquilino
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OnboardingProfileRequest  true  "fullName, phone"
// @Success      200   {object}  dto.OnboardingStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tenant/onboarding/profile [post]
func (h *OnboardingHandler) Profile(c *fiber.Ctx) error {
	var in dto.OnboardingProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SubmitProfile(c.Context(), SessionStore(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// KYC godoc
// @Summary      Paso 2: documentos de identidad (Aadhaar, PAN)
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OnboardingKYCRequest  true  "aadhaar, pan"
// @Success      200   {object}  dto.OnboardingStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tenant/onboarding/kyc [post]
func (h *OnboardingHandler) KYC(c *fiber.Ctx) error {
	var in dto.OnboardingKYCRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SubmitKYC(c.Context(), SessionStore(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Agreement godoc
// @Summary      Paso final: aceptación del contrato
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OnboardingAgreementRequest  true  "agreementId, accepted"
// @Success      200   {object}  dto.OnboardingStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tenant/onboarding/agreement [post]
func (h *OnboardingHandler) Agreement(c *fiber.Ctx) error {
	var in dto.OnboardingAgreementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AcceptAgreement(c.Context(), SessionStore(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
