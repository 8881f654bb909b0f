package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nivasahq/nivasa-portal/internal/application/auth"
	"github.com/nivasahq/nivasa-portal/internal/application/dto"
	"github.com/nivasahq/nivasa-portal/internal/application/session"
	"github.com/nivasahq/nivasa-portal/pkg/config"
)

// AuthHandler maneja login, registro, logout y /me del gateway.
type AuthHandler struct {
	uc       *auth.UseCase
	sessions *session.Manager
	cookie   config.CookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase, sessions *session.Manager, cookie config.CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions, cookie: cookie}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(c.Context(), SessionStore(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, phone, password"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	out, err := h.uc.Register(c.Context(), SessionStore(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.Context(), SessionStore(c)); err != nil {
		return respondError(c, err)
	}
	// Rotación de sesión: la sesión cerrada se olvida en memoria y la
	// cookie se expira; la siguiente petición estrena un session id.
	h.sessions.Drop(SessionID(c))
	expireCookie(c, h.cookie)
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Identidad de la sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	snap := Snapshot(c)
	if !snap.IsAuthenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sin sesión"})
	}
	return c.JSON(dto.SessionResponse{User: snap.User})
}

// Refresh godoc
// @Summary      Refrescar la identidad desde el API remoto
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	store := SessionStore(c)
	// Fail-open: un refresh fallido conserva la identidad anterior.
	store.RefreshUser(c.Context())
	snap := store.Current()
	if !snap.IsAuthenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sin sesión"})
	}
	return c.JSON(dto.SessionResponse{User: snap.User})
}
