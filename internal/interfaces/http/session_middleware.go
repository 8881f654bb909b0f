package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nivasahq/nivasa-portal/internal/application/session"
	"github.com/nivasahq/nivasa-portal/pkg/config"
	"github.com/nivasahq/nivasa-portal/pkg/jwt"
	"github.com/nivasahq/nivasa-portal/pkg/logger"
)

// Locals keys del middleware de sesión.
const (
	LocalSessionStore = "portal_session_store"
	LocalSessionID    = "portal_session_id"
)

// SessionMiddleware resuelve la sesión de portal de cada petición:
// lee la cookie firmada (o emite una nueva si falta o es inválida),
// obtiene el Store correspondiente y ejecuta Initialize. Initialize es
// síncrono y de una sola vez, así que ningún guard aguas abajo evalúa
// más allá de PENDING antes de que la resolución inicial termine.
func SessionMiddleware(cfg config.CookieConfig, manager *session.Manager, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := ""
		if raw := c.Cookies(cfg.Name); raw != "" {
			if sid, err := jwt.Parse(cfg.Secret, raw); err == nil {
				sessionID = sid
			} else {
				log.Debug().Err(err).Msg("cookie de sesión inválida, se emite una nueva")
			}
		}
		if sessionID == "" {
			sessionID = uuid.New().String()
			if err := issueCookie(c, cfg, sessionID); err != nil {
				return err
			}
		}

		store := manager.StoreFor(sessionID)
		store.Initialize(c.Context())

		c.Locals(LocalSessionID, sessionID)
		c.Locals(LocalSessionStore, store)
		return c.Next()
	}
}

func issueCookie(c *fiber.Ctx, cfg config.CookieConfig, sessionID string) error {
	token, err := jwt.Generate(cfg.Secret, sessionID, cfg.Issuer, cfg.Expiration)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     cfg.Name,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(time.Duration(cfg.Expiration) * time.Minute),
	})
	return nil
}

// expireCookie invalida la cookie de sesión del cliente (logout).
func expireCookie(c *fiber.Ctx, cfg config.CookieConfig) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.Name,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
}

// SessionStore devuelve el Store de la petición (después del middleware).
func SessionStore(c *fiber.Ctx) *session.Store {
	v := c.Locals(LocalSessionStore)
	if v == nil {
		return nil
	}
	s, _ := v.(*session.Store)
	return s
}

// SessionID devuelve el id de sesión de la petición.
func SessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Snapshot devuelve la vista de sesión vigente de la petición. Sin
// middleware de sesión devuelve un snapshot en Loading: los guards
// responden PENDING en vez de redirigir en falso.
func Snapshot(c *fiber.Ctx) session.Snapshot {
	if s := SessionStore(c); s != nil {
		return s.Current()
	}
	return session.Snapshot{Loading: true}
}
