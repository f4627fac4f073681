package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "alkareem_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global (urutan penting:
// recovery paling luar, lalu logging, CORS, dan rate limit).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
