package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"fbofuel_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the ambient middleware stack in order.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
