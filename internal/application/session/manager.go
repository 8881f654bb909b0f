package session

import (
	"sync"
	"time"

	"github.com/nivasahq/nivasa-portal/internal/domain/repository"
	"github.com/nivasahq/nivasa-portal/pkg/logger"
)

const (
	// storeIdleTTL tiempo sin peticiones tras el cual el Store de una
	// sesión se expulsa de memoria. El estado persistido no se toca: la
	// siguiente petición de esa sesión reconstruye el Store y lo vuelve
	// a resolver desde el SessionStorage.
	storeIdleTTL = 30 * time.Minute
	// sweepInterval frecuencia máxima del barrido de stores ociosos.
	sweepInterval = 5 * time.Minute
)

type managedStore struct {
	store    *Store
	lastSeen time.Time
}

// Manager entrega el Store de cada sesión de portal (identificada por la
// cookie firmada). Un Store por sesión, creado perezosamente; los stores
// ociosos se expulsan para que el tráfico sin cookie (cada petición
// estrena un session id) no crezca la memoria sin límite.
type Manager struct {
	storage repository.SessionStorage
	api     IdentityAPI
	log     *logger.Logger

	mu        sync.Mutex
	stores    map[string]*managedStore
	lastSweep time.Time
}

// NewManager construye el manager de sesiones.
func NewManager(storage repository.SessionStorage, api IdentityAPI, log *logger.Logger) *Manager {
	return &Manager{
		storage:   storage,
		api:       api,
		log:       log,
		stores:    map[string]*managedStore{},
		lastSweep: time.Now(),
	}
}

// StoreFor devuelve el Store de la sesión, creándolo si es la primera
// vez que este proceso la ve. El Store nuevo arranca en Loading y se
// resuelve con Initialize en el middleware de sesión. De paso barre los
// stores ociosos.
func (m *Manager) StoreFor(sessionID string) *Store {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked(now)
	if e, ok := m.stores[sessionID]; ok {
		e.lastSeen = now
		return e.store
	}
	s := NewStore(m.storage, m.api, sessionID, m.log)
	m.stores[sessionID] = &managedStore{store: s, lastSeen: now}
	return s
}

// Drop olvida el Store en memoria (la persistencia no se toca). Lo llama
// el logout al rotar la cookie: la sesión cerrada no debe seguir viva en
// el mapa.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sessionID)
}

// sweepLocked expulsa los stores sin actividad reciente. Se llama con el
// lock tomado y como mucho una vez por sweepInterval.
func (m *Manager) sweepLocked(now time.Time) {
	if now.Sub(m.lastSweep) < sweepInterval {
		return
	}
	m.lastSweep = now
	evicted := 0
	for id, e := range m.stores {
		if now.Sub(e.lastSeen) > storeIdleTTL {
			delete(m.stores, id)
			evicted++
		}
	}
	if evicted > 0 {
		m.log.Debug().Int("evicted", evicted).Int("alive", len(m.stores)).Msg("barrido de stores de sesión ociosos")
	}
}
