package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/nivasahq/nivasa-portal/internal/application/nav"
	"github.com/nivasahq/nivasa-portal/internal/domain"
	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
)

// NavAccessAPI es el contrato de persistencia de grants en el API remoto.
type NavAccessAPI interface {
	GetRoleAccess(ctx context.Context, token string) ([]entity.RoleAccess, error)
	UpdateRoleAccess(ctx context.Context, token string, role entity.Role, navItems []entity.NavKey) error
}

// NavAccessService consulta y edita los grants de navegación por rol.
// El API remoto es la fuente de verdad; aquí solo hay una caché corta
// para no pegarle en cada evaluación de guard.
type NavAccessService struct {
	api NavAccessAPI
	ttl time.Duration

	mu        sync.RWMutex
	cache     map[entity.Role][]entity.NavKey
	fetchedAt time.Time
}

// NewNavAccessService construye el servicio. ttl<=0 usa 30s.
func NewNavAccessService(api NavAccessAPI, ttl time.Duration) *NavAccessService {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &NavAccessService{api: api, ttl: ttl, cache: map[entity.Role][]entity.NavKey{}}
}

// GrantsFor devuelve las claves habilitadas para un rol, usando la caché
// si sigue vigente. Un rol sin grant registrado devuelve lista vacía.
// ADMIN no necesita grants (bypass en la policy) pero se sirve igual.
func (s *NavAccessService) GrantsFor(ctx context.Context, token string, role entity.Role) ([]entity.NavKey, error) {
	s.mu.RLock()
	fresh := time.Since(s.fetchedAt) < s.ttl && len(s.cache) > 0
	granted := s.cache[role]
	s.mu.RUnlock()
	if fresh {
		return granted, nil
	}

	access, err := s.api.GetRoleAccess(ctx, token)
	if err != nil {
		return nil, err
	}
	byRole := make(map[entity.Role][]entity.NavKey, len(access))
	for _, a := range access {
		byRole[a.Role] = a.NavItems
	}
	s.mu.Lock()
	s.cache = byRole
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	return byRole[role], nil
}

// List devuelve todos los grants (pantalla de edición admin). Siempre va
// al API remoto: la pantalla de edición no debe mostrar caché vencida.
func (s *NavAccessService) List(ctx context.Context, token string) ([]entity.RoleAccess, error) {
	access, err := s.api.GetRoleAccess(ctx, token)
	if err != nil {
		return nil, err
	}
	return access, nil
}

// Update reemplaza los grants de un rol y descarta la caché. Rechaza
// roles fuera del enum y claves que no existen en las tablas de
// navegación.
func (s *NavAccessService) Update(ctx context.Context, token string, role entity.Role, navItems []entity.NavKey) error {
	if !role.IsValid() {
		return domain.ErrInvalidRole
	}
	for _, k := range navItems {
		if nav.PathFor(k) == "" {
			return domain.ErrInvalidInput
		}
	}
	if err := s.api.UpdateRoleAccess(ctx, token, role, navItems); err != nil {
		return err
	}
	s.mu.Lock()
	s.fetchedAt = time.Time{} // fuerza refetch
	s.mu.Unlock()
	return nil
}
