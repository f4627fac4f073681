// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	authMiddleware "alkareem_backend/internals/middlewares/auth"

	arrangementRoute "alkareem_backend/internals/features/ramadan/arrangements/route"
	prayerRoute "alkareem_backend/internals/features/prayer/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group (Auth)...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(),
	)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Arrangement routes...")
	arrangementRoute.ArrangementPublicRoutes(public, db)
	arrangementRoute.ArrangementUserRoutes(private, db)
	arrangementRoute.ArrangementAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Prayer routes...")
	prayerRoute.PrayerPublicRoutes(public)

	// uptime sederhana untuk monitoring
	app.Get("/api/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"uptime": time.Since(startTime).String(),
		})
	})
}
