package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nivasahq/nivasa-portal/internal/application/dto"
	"github.com/nivasahq/nivasa-portal/internal/domain"
	"github.com/nivasahq/nivasa-portal/internal/infrastructure/upstream"
)

// respondError mapea errores de dominio y del API remoto a HTTP. Los
// errores del API conservan su status y mensaje legible; el gateway no
// interpreta códigos remotos más allá de éxito/fracaso.
func respondError(c *fiber.Ctx, err error) error {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: apiErr.Code, Message: apiErr.Message})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrInvalidRole):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Message: "rol fuera del enum"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// ErrorHandler es la frontera de último recurso del gateway: cualquier
// excepción no manejada se convierte en una pantalla de recuperación
// genérica con las salidas "ir al inicio" o "reintentar". No toca la
// sesión ni la lógica de guards.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":    "UNEXPECTED",
		"message": "algo salió mal; volver al inicio o reintentar",
		"home":    "/dashboard",
	})
}
