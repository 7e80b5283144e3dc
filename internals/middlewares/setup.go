package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"lesku_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware dasar dengan urutan yang benar:
// recover paling luar, lalu CORS, logger, dan rate limiter global.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
