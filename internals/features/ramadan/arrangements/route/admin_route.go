package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alkareem_backend/internals/constants"
	authMiddleware "alkareem_backend/internals/middlewares/auth"
)

// Admin routes (moderasi + dashboard)
func ArrangementAdminRoutes(api fiber.Router, db *gorm.DB) {
	_, adminCtrl := buildControllers(db)

	admin := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("moderasi arrangement"),
			constants.AdminOnly,
		),
	)

	ar := admin.Group("/arrangements")
	ar.Get("/pending", adminCtrl.GetPendingArrangements)
	ar.Patch("/:id/approve", adminCtrl.ApproveArrangement)
	ar.Patch("/:id/reject", adminCtrl.RejectArrangement)

	admin.Get("/dashboard", adminCtrl.GetDashboard)
}
