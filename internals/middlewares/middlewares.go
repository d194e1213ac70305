package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares wires the global middleware chain. Order matters:
// recovery first so panics in later handlers are caught.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
}
