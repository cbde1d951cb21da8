package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"brand-directory-api/app/repository"
	"brand-directory-api/internal/pkg/cache"
	"brand-directory-api/internal/pkg/database"
	"brand-directory-api/internal/pkg/env"
	"brand-directory-api/internal/pkg/middleware"
	"brand-directory-api/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "8080")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())

	return newFiberApp(findBasePath())
}

// findBasePath locates the project root relative to the working directory
func findBasePath() string {
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/brandapi to project root
		"../../../", // Fallback
	}

	for _, path := range basePaths {
		if _, err := os.Stat(path + "public"); !os.IsNotExist(err) {
			return path
		}
	}

	panic("Could not find project root directory")
}

func newFiberApp(basePath string) *fiber.App {
	// init fiber app
	app := fiber.New(fiber.Config{
		AppName: "brand-directory-api",
	})

	// no favicon asset shipped, the middleware answers /favicon.ico with 204
	app.Use(favicon.New())

	// recovery and logging
	app.Use(recover.New(), logger.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS())

	// fiber metrics, only exposed when a password is configured
	if password := env.GetEnv("METRICS_PASSWORD", ""); password != "" {
		app.Get("/metrics", basicauth.New(basicauth.Config{
			Users: map[string]string{
				"admin": password,
			},
		}), monitor.New())
	}

	// admin page
	app.Static("/", basePath+"public", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// ROUTER
	router.InstallRouter(app)

	return app
}
