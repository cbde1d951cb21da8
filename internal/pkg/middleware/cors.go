package middleware

import (
	"github.com/gofiber/fiber/v2"

	"brand-directory-api/internal/pkg/env"
	"brand-directory-api/internal/pkg/geo"
)

// CORS answers cross-origin requests for the single configured admin page
// origin. Preflight OPTIONS requests short-circuit with a bare 200.
func CORS() fiber.Handler {
	origin := env.GetEnv("CORS_ORIGIN", "http://localhost:3000")

	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS")
		c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, X-Requested-With, Accept, Authorization, "+geo.HeaderName)
		c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
		c.Set(fiber.HeaderAccessControlMaxAge, "86400")

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusOK)
		}

		return c.Next()
	}
}
