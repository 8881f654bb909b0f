// Package memory contiene adaptadores en memoria para desarrollo y tests
// (el gateway puede arrancar sin PostgreSQL con STORAGE_DRIVER=memory;
// las sesiones no sobreviven al proceso).
package memory

import (
	"context"
	"sync"

	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
	"github.com/nivasahq/nivasa-portal/internal/domain/repository"
)

var _ repository.SessionStorage = (*SessionStorage)(nil)

// SessionStorage implementación en memoria del puerto SessionStorage.
type SessionStorage struct {
	mu   sync.RWMutex
	data map[string]map[string]string // session_id -> key -> value
}

// NewSessionStorage construye el almacenamiento en memoria.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{data: map[string]map[string]string{}}
}

// Get devuelve el valor de la clave; ok=false si no existe.
func (s *SessionStorage) Get(_ context.Context, sessionID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[sessionID][key]
	return v, ok, nil
}

// Set inserta o reemplaza el valor de la clave.
func (s *SessionStorage) Set(_ context.Context, sessionID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[sessionID] == nil {
		s.data[sessionID] = map[string]string{}
	}
	s.data[sessionID][key] = value
	return nil
}

// Delete elimina las claves indicadas; claves inexistentes no son error.
func (s *SessionStorage) Delete(_ context.Context, sessionID string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data[sessionID], k)
	}
	return nil
}

var _ repository.CheckoutRepository = (*CheckoutRepository)(nil)

// CheckoutRepository implementación en memoria del puerto de auditoría.
type CheckoutRepository struct {
	mu       sync.RWMutex
	attempts []*entity.CheckoutAttempt
}

// NewCheckoutRepository construye la auditoría en memoria.
func NewCheckoutRepository() *CheckoutRepository {
	return &CheckoutRepository{}
}

// Create agrega el intento al registro.
func (r *CheckoutRepository) Create(_ context.Context, a *entity.CheckoutAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, a)
	return nil
}

// ListByUser lista los intentos de un usuario, más recientes primero.
func (r *CheckoutRepository) ListByUser(_ context.Context, userID string, limit, offset int) ([]*entity.CheckoutAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []*entity.CheckoutAttempt
	for i := len(r.attempts) - 1; i >= 0; i-- {
		if r.attempts[i].UserID == userID {
			all = append(all, r.attempts[i])
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}
