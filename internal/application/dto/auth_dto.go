package dto

import "github.com/nivasahq/nivasa-portal/internal/domain/entity"

// LoginRequest entrada para login contra el API remoto (o la cuenta demo).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest entrada para registro. El teléfono se normaliza a
// formato indio (+91) antes de reenviar al API remoto.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty"`
}

// SessionResponse salida de login/registro/me: identidad más la ruta de
// aterrizaje que el cliente debe seguir.
type SessionResponse struct {
	User       *entity.User `json:"user"`
	RedirectTo string       `json:"redirectTo,omitempty"`
}
