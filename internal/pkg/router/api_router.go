package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"brand-directory-api/app/controllers"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{Max: 120}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"service": "brand-directory-api",
			"status":  "ok",
		})
	})

	// Brand directory resource
	controllers.InitializeBrandController()
	bc := controllers.GetBrandController()

	brands := api.Group("/brands")
	brands.Get("/", bc.HandleListBrands)
	brands.Post("/", bc.HandleCreateBrand)
	brands.Get("/:id", bc.HandleGetBrand)
	brands.Put("/:id", bc.HandleUpdateBrand)
	brands.Delete("/:id", bc.HandleDeleteBrand)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
