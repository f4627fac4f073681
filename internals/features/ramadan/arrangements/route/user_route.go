package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alkareem_backend/internals/constants"
	middlewares "alkareem_backend/internals/middlewares"
	authMiddleware "alkareem_backend/internals/middlewares/auth"
)

// Arranger routes (CUD arrangement miliknya sendiri).
// Guard: login + role arranger/admin; ownership dicek di service.
func ArrangementUserRoutes(api fiber.Router, db *gorm.DB) {
	arrangementCtrl, _ := buildControllers(db)

	user := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorArranger("mengelola arrangement"),
			constants.ArrangerAndAbove,
		),
	)

	ar := user.Group("/arrangements")
	ar.Post("/", middlewares.SubmitArrangementRateLimiter(), arrangementCtrl.CreateArrangement)
	ar.Put("/:id", arrangementCtrl.UpdateArrangement)
	ar.Delete("/:id", arrangementCtrl.DeleteArrangement)
}
