package http

import (
	"github.com/gofiber/fiber/v2"
)

// Page devuelve el handler del "shell" de una vista guardada: el guard
// aguas arriba ya decidió que la sesión puede verla, aquí solo se entrega
// el descriptor que el cliente usa para montar la página.
func Page(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := Snapshot(c)
		out := fiber.Map{
			"page": name,
			"path": c.Path(),
		}
		if snap.User != nil {
			out["role"] = snap.User.Role
			out["user"] = snap.User.Name
		}
		return c.JSON(out)
	}
}
