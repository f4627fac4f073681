package route

import (
	"github.com/gofiber/fiber/v2"

	"alkareem_backend/internals/features/prayer/controller"
)

// 🕌 Endpoint ibadah publik (tanpa login)
func PrayerPublicRoutes(api fiber.Router) {
	qiblaCtrl := controller.NewQiblaController()

	api.Get("/qibla", qiblaCtrl.GetQiblaDirection)
}
