// Package session implementa el Session Store del portal: fuente única de
// verdad sobre "quién está autenticado" en una sesión de navegador, con
// resolución única al arranque contra el almacenamiento persistido y el
// API remoto. Los guards y el renderer de navegación solo leen snapshots;
// toda mutación pasa por este paquete.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
	"github.com/nivasahq/nivasa-portal/internal/domain/repository"
	"github.com/nivasahq/nivasa-portal/pkg/logger"
)

// StaticToken es el token sintético de la sesión demo/offline: el override
// static_user se adopta con este token sin validar contra el API remoto.
const StaticToken = "static-token"

// IdentityAPI es el contrato mínimo que el store necesita del API remoto.
// Lo implementa *upstream.Client; la interfaz evita el import circular y
// permite inyectar mocks en tests.
type IdentityAPI interface {
	// GetMe valida el token y devuelve la identidad vigente.
	GetMe(ctx context.Context, token string) (*entity.User, error)
}

// Snapshot es la vista inmutable de la sesión en un instante. User y Token
// se establecen y limpian siempre juntos; Loading solo es true durante la
// resolución inicial.
type Snapshot struct {
	User    *entity.User
	Token   string
	Loading bool
}

// IsAuthenticated informa si hay sesión válida: token Y usuario presentes.
func (s Snapshot) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// Role devuelve el rol de la sesión, o vacío si no hay usuario.
func (s Snapshot) Role() entity.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// Subscriber recibe cada snapshot nuevo tras una mutación del store.
type Subscriber func(Snapshot)

// Store mantiene la sesión de un cliente del portal. Se construye
// explícitamente y se inyecta a los consumidores; no hay estado global.
type Store struct {
	storage   repository.SessionStorage
	api       IdentityAPI
	sessionID string
	log       *logger.Logger

	mu       sync.RWMutex
	cur      Snapshot
	subs     []Subscriber
	initOnce sync.Once
}

// NewStore construye un store vacío en estado Loading: ningún guard puede
// pasar de PENDING hasta que Initialize resuelva.
func NewStore(storage repository.SessionStorage, api IdentityAPI, sessionID string, log *logger.Logger) *Store {
	return &Store{
		storage:   storage,
		api:       api,
		sessionID: sessionID,
		log:       log,
		cur:       Snapshot{Loading: true},
	}
}

// Current devuelve el snapshot vigente.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Subscribe registra un observador que recibirá cada snapshot nuevo.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Initialize resuelve la sesión una única vez:
//
//  1. Si existe el override static_user, se adopta de inmediato como
//     autenticado con StaticToken, sin validación de red.
//  2. Si hay par token+user persistido, se valida contra GetMe. Éxito:
//     se adopta el usuario refrescado y se re-persiste. Cualquier fallo:
//     la sesión se invalida y el almacenamiento se limpia (fail-closed).
//  3. En todos los casos termina con Loading=false exactamente una vez.
//
// Llamadas posteriores no hacen nada.
func (s *Store) Initialize(ctx context.Context) {
	s.initOnce.Do(func() { s.initialize(ctx) })
}

func (s *Store) initialize(ctx context.Context) {
	if raw, ok, err := s.storage.Get(ctx, s.sessionID, repository.SessionKeyStaticUser); err == nil && ok {
		var u entity.User
		if jsonErr := json.Unmarshal([]byte(raw), &u); jsonErr == nil {
			u.Role = entity.ParseRole(string(u.Role))
			s.set(Snapshot{User: &u, Token: StaticToken})
			return
		}
		// Override corrupto: se ignora y sigue el flujo normal.
		s.log.Warn().Str("session_id", s.sessionID).Msg("static_user ilegible, se ignora")
	}

	token, okTok, errTok := s.storage.Get(ctx, s.sessionID, repository.SessionKeyToken)
	rawUser, okUser, errUser := s.storage.Get(ctx, s.sessionID, repository.SessionKeyUser)
	if errTok != nil || errUser != nil || !okTok || !okUser || token == "" {
		s.set(Snapshot{})
		return
	}

	// Compat: el user persistido solo sirve de pista; la identidad que
	// manda es la que devuelve GetMe.
	_ = rawUser

	user, err := s.api.GetMe(ctx, token)
	if err != nil || user == nil {
		// Fail-closed: token inválido o API inaccesible al arranque
		// invalida la sesión por completo. Es una recuperación local,
		// nunca un error fatal para el caller.
		s.log.Info().Err(err).Str("session_id", s.sessionID).Msg("sesión persistida inválida, se limpia")
		if delErr := s.storage.Delete(ctx, s.sessionID, repository.SessionKeyToken, repository.SessionKeyUser); delErr != nil {
			s.log.Error().Err(delErr).Msg("limpieza de sesión persistida")
		}
		s.set(Snapshot{})
		return
	}

	user.Role = entity.ParseRole(string(user.Role))
	s.persistUser(ctx, user)
	s.set(Snapshot{User: user, Token: token})
}

// Login sobreescribe la sesión completa con el par entregado y lo
// persiste. No valida nada: el caller ya obtuvo el par de un login
// exitoso contra el API remoto.
func (s *Store) Login(ctx context.Context, user *entity.User, token string) error {
	user.Role = entity.ParseRole(string(user.Role))
	if err := s.storage.Set(ctx, s.sessionID, repository.SessionKeyToken, token); err != nil {
		return err
	}
	s.persistUser(ctx, user)
	s.mu.Lock()
	s.cur = Snapshot{User: user, Token: token, Loading: s.cur.Loading}
	s.mu.Unlock()
	s.notify()
	return nil
}

// Logout limpia la sesión y todas las claves persistidas, incluido el
// override static_user.
func (s *Store) Logout(ctx context.Context) error {
	err := s.storage.Delete(ctx, s.sessionID,
		repository.SessionKeyToken,
		repository.SessionKeyUser,
		repository.SessionKeyStaticUser,
	)
	s.mu.Lock()
	s.cur = Snapshot{Loading: s.cur.Loading}
	s.mu.Unlock()
	s.notify()
	return err
}

// RefreshUser re-consulta la identidad al API remoto y reemplaza User en
// su lugar. A diferencia de Initialize, un fallo aquí se registra y se
// ignora (fail-open): un refresh transitorio que falla no debe desloguear
// al usuario; se conserva el usuario anterior aunque esté desactualizado.
func (s *Store) RefreshUser(ctx context.Context) {
	cur := s.Current()
	if !cur.IsAuthenticated() || cur.Token == StaticToken {
		return
	}
	user, err := s.api.GetMe(ctx, cur.Token)
	if err != nil || user == nil {
		s.log.Warn().Err(err).Str("session_id", s.sessionID).Msg("refresh de usuario falló, se conserva el anterior")
		return
	}
	user.Role = entity.ParseRole(string(user.Role))
	s.persistUser(ctx, user)
	s.mu.Lock()
	s.cur.User = user
	s.mu.Unlock()
	s.notify()
}

// AdoptStaticUser persiste el override demo y adopta la sesión estática
// de inmediato (mismo efecto que un Initialize con static_user presente).
func (s *Store) AdoptStaticUser(ctx context.Context, user *entity.User) error {
	user.Role = entity.ParseRole(string(user.Role))
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.storage.Set(ctx, s.sessionID, repository.SessionKeyStaticUser, string(raw)); err != nil {
		return err
	}
	s.mu.Lock()
	s.cur = Snapshot{User: user, Token: StaticToken, Loading: s.cur.Loading}
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *Store) persistUser(ctx context.Context, user *entity.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		s.log.Error().Err(err).Msg("serializar usuario de sesión")
		return
	}
	if err := s.storage.Set(ctx, s.sessionID, repository.SessionKeyUser, string(raw)); err != nil {
		s.log.Error().Err(err).Msg("persistir usuario de sesión")
	}
}

// set instala un snapshot terminal de Initialize (Loading pasa a false).
func (s *Store) set(snap Snapshot) {
	snap.Loading = false
	s.mu.Lock()
	s.cur = snap
	s.mu.Unlock()
	s.notify()
}

func (s *Store) notify() {
	s.mu.RLock()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	cur := s.cur
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(cur)
	}
}
