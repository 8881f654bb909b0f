package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nivasahq/nivasa-portal/internal/domain/repository"
)

var _ repository.SessionStorage = (*SessionStorageRepo)(nil)

// SessionStorageRepo implementación del puerto SessionStorage sobre
// PostgreSQL: un registro (session_id, key) -> value por clave persistida.
// Solo el Session Store escribe aquí.
type SessionStorageRepo struct {
	pool *pgxpool.Pool
}

// NewSessionStorage construye el adaptador de persistencia de sesiones.
func NewSessionStorage(pool *pgxpool.Pool) *SessionStorageRepo {
	return &SessionStorageRepo{pool: pool}
}

// Get devuelve el valor de la clave; ok=false si no existe.
func (r *SessionStorageRepo) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	query := `SELECT value FROM portal_session_values WHERE session_id = $1 AND key = $2`
	var value string
	err := r.pool.QueryRow(ctx, query, sessionID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get session value: %w", err)
	}
	return value, true, nil
}

// Set inserta o reemplaza el valor de la clave.
func (r *SessionStorageRepo) Set(ctx context.Context, sessionID, key, value string) error {
	query := `
		INSERT INTO portal_session_values (session_id, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (session_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := r.pool.Exec(ctx, query, sessionID, key, value); err != nil {
		return fmt.Errorf("set session value: %w", err)
	}
	return nil
}

// Delete elimina las claves indicadas; claves inexistentes no son error.
func (r *SessionStorageRepo) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query := `DELETE FROM portal_session_values WHERE session_id = $1 AND key = ANY($2)`
	if _, err := r.pool.Exec(ctx, query, sessionID, keys); err != nil {
		return fmt.Errorf("delete session values: %w", err)
	}
	return nil
}
