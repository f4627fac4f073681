package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alkareem_backend/internals/features/ramadan/arrangements/dto"
	"alkareem_backend/internals/features/ramadan/arrangements/service"
	helper "alkareem_backend/internals/helpers"
)

var validate = validator.New()

// ArrangementController: endpoint publik (list/get/map-data) +
// endpoint arranger (create/update/delete). Tidak pegang *gorm.DB,
// semua lewat service & repository interface.
type ArrangementController struct {
	Moderation *service.ModerationService
	Query      *service.QueryService
}

func NewArrangementController(moderation *service.ModerationService, query *service.QueryService) *ArrangementController {
	return &ArrangementController{Moderation: moderation, Query: query}
}

// actorFromLocals merakit (principal_id, role) hasil auth middleware.
func actorFromLocals(c *fiber.Ctx) (service.Actor, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return service.Actor{}, err
	}
	role, err := helper.GetUserRole(c)
	if err != nil {
		return service.Actor{}, err
	}
	return service.Actor{ID: userID, Role: role}, nil
}

// parseArrangementID membaca :id dari path.
func parseArrangementID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Arrangement ID tidak valid")
	}
	return id, nil
}

// =============================
// 📥 GET /arrangements (public)
// =============================
func (ctrl *ArrangementController) GetAllArrangements(c *fiber.Ctx) error {
	kind := c.Query("type")
	city := c.Query("city")

	records, err := ctrl.Query.PublicList(c.Context(), kind, city)
	if err != nil {
		return helper.Error(c, service.StatusCode(err), err.Error())
	}

	return helper.Success(c, "Daftar arrangement berhasil diambil", fiber.Map{
		"arrangements": dto.ToArrangementDTOs(records),
		"total":        len(records),
		"filters": fiber.Map{
			"type": kind,
			"city": city,
		},
	})
}

// =============================
// 📥 GET /arrangements/:id (public)
// =============================
func (ctrl *ArrangementController) GetArrangementByID(c *fiber.Ctx) error {
	id, err := parseArrangementID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	arr, err := ctrl.Query.GetPublic(c.Context(), id)
	if err != nil {
		return helper.Error(c, service.StatusCode(err), err.Error())
	}
	return helper.Success(c, "Arrangement ditemukan", dto.ToArrangementDTO(*arr))
}

// =============================
// 🗺️ GET /arrangements/map-data (public)
// =============================
func (ctrl *ArrangementController) GetMapData(c *fiber.Ctx) error {
	markers, err := ctrl.Query.MapMarkers(c.Context())
	if err != nil {
		return helper.Error(c, service.StatusCode(err), err.Error())
	}

	return helper.Success(c, "Data peta berhasil diambil", fiber.Map{
		"markers": markers,
		"total":   len(markers),
		// default center peta: tengah India
		"center": fiber.Map{"lat": 20.5937, "lng": 78.9629},
	})
}

// =============================
// ➕ POST /arrangements (arranger/admin)
// =============================
func (ctrl *ArrangementController) CreateArrangement(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateArrangementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	arr, err := ctrl.Moderation.Create(c.Context(), actor, req)
	if err != nil {
		return helper.Error(c, service.StatusCode(err), err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Arrangement berhasil dibuat, menunggu approval admin",
		dto.ToArrangementDTO(*arr))
}

// =============================
// ✏️ PUT /arrangements/:id (creator/admin)
// =============================
func (ctrl *ArrangementController) UpdateArrangement(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseArrangementID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateArrangementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	arr, err := ctrl.Moderation.Edit(c.Context(), actor, id, req)
	if err != nil {
		return helper.Error(c, service.StatusCode(err), err.Error())
	}
	return helper.Success(c, "Arrangement berhasil diperbarui", dto.ToArrangementDTO(*arr))
}

// =============================
// 🗑️ DELETE /arrangements/:id (creator/admin, soft delete)
// =============================
func (ctrl *ArrangementController) DeleteArrangement(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseArrangementID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	arr, err := ctrl.Moderation.Delete(c.Context(), actor, id)
	if err != nil {
		return helper.Error(c, service.StatusCode(err), err.Error())
	}
	return helper.Success(c, "Arrangement berhasil dihapus", dto.ToArrangementDTO(*arr))
}
