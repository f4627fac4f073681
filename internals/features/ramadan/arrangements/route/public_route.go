package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alkareem_backend/internals/features/ramadan/arrangements/controller"
	"alkareem_backend/internals/features/ramadan/arrangements/repository"
	"alkareem_backend/internals/features/ramadan/arrangements/service"
)

// buildControllers merakit repo → service → controller dari koneksi DB.
func buildControllers(db *gorm.DB) (*controller.ArrangementController, *controller.ArrangementAdminController) {
	repo := repository.NewGormArrangementRepository(db)
	moderation := service.NewModerationService(repo)
	query := service.NewQueryService(repo)
	return controller.NewArrangementController(moderation, query),
		controller.NewArrangementAdminController(moderation, query)
}

// Public routes (tanpa login): hanya record published yang terlihat
func ArrangementPublicRoutes(api fiber.Router, db *gorm.DB) {
	arrangementCtrl, _ := buildControllers(db)

	// 🕌 Group: /arrangements
	ar := api.Group("/arrangements")
	ar.Get("/map-data", arrangementCtrl.GetMapData) // daftarkan sebelum /:id
	ar.Get("/", arrangementCtrl.GetAllArrangements)
	ar.Get("/:id", arrangementCtrl.GetArrangementByID)
}
