package repository

import "context"

// Claves del almacenamiento persistido de sesión. Solo el Session Store
// puede escribirlas; el resto de componentes las lee a través de él.
const (
	SessionKeyToken      = "token"
	SessionKeyUser       = "user"
	SessionKeyStaticUser = "static_user"
)

// SessionStorage define el puerto de persistencia clave/valor por sesión
// de portal (sobrevive recargas y reinicios del gateway).
type SessionStorage interface {
	// Get devuelve el valor de la clave; ok=false si no existe.
	Get(ctx context.Context, sessionID, key string) (value string, ok bool, err error)
	Set(ctx context.Context, sessionID, key, value string) error
	// Delete elimina las claves indicadas; claves inexistentes no son error.
	Delete(ctx context.Context, sessionID string, keys ...string) error
}
