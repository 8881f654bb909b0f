package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrSessionPending     = errors.New("sesión aún resolviéndose")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidRole        = errors.New("rol inválido")
	ErrOnboardingPending  = errors.New("onboarding incompleto")
	ErrUpstream           = errors.New("error del API remoto")
)
