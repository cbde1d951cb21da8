package router

import (
	"github.com/gofiber/fiber/v2"
)

type HttpRouter struct {
}

// InstallRouter registers the non-API routes. The admin page itself is
// served as static files from public/ in the app bootstrap; here we only
// expose a health probe.
func (h HttpRouter) InstallRouter(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
