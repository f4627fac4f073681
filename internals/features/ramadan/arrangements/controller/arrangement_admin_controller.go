package controller

import (
	"github.com/gofiber/fiber/v2"

	"alkareem_backend/internals/features/ramadan/arrangements/dto"
	"alkareem_backend/internals/features/ramadan/arrangements/service"
	helper "alkareem_backend/internals/helpers"
)

// ArrangementAdminController: antrean moderasi + keputusan
// approve/reject + dashboard. Route group-nya sudah digate role admin,
// tapi keputusan final tetap di service.Authorize.
type ArrangementAdminController struct {
	Moderation *service.ModerationService
	Query      *service.QueryService
}

func NewArrangementAdminController(moderation *service.ModerationService, query *service.QueryService) *ArrangementAdminController {
	return &ArrangementAdminController{Moderation: moderation, Query: query}
}

// =============================
// 📋 GET /arrangements/pending (admin)
// =============================
func (ctrl *ArrangementAdminController) GetPendingArrangements(c *fiber.Ctx) error {
	records, err := ctrl.Query.PendingList(c.Context())
	if err != nil {
		return helper.Error(c, service.StatusCode(err), err.Error())
	}

	// paging sederhana di atas hasil in-order (antrean moderasi kecil)
	paging := helper.ResolvePaging(c, 20, 100)
	total := int64(len(records))
	start := paging.Offset
	if start > len(records) {
		start = len(records)
	}
	end := start + paging.Limit
	if end > len(records) {
		end = len(records)
	}
	page := records[start:end]

	return helper.Success(c, "Antrean moderasi berhasil diambil", fiber.Map{
		"arrangements": dto.ToArrangementDTOs(page),
		"pagination":   helper.BuildPagination(paging, total, len(page)),
	})
}

// =============================
// ✅ PATCH /arrangements/:id/approve (admin)
// =============================
func (ctrl *ArrangementAdminController) ApproveArrangement(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseArrangementID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	arr, err := ctrl.Moderation.Approve(c.Context(), actor, id)
	if err != nil {
		return helper.Error(c, service.StatusCode(err), err.Error())
	}
	return helper.Success(c, "Arrangement berhasil di-approve", dto.ToArrangementDTO(*arr))
}

// =============================
// ❌ PATCH /arrangements/:id/reject (admin)
// =============================
func (ctrl *ArrangementAdminController) RejectArrangement(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseArrangementID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.RejectArrangementRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	arr, err := ctrl.Moderation.Reject(c.Context(), actor, id, req.Reason)
	if err != nil {
		return helper.Error(c, service.StatusCode(err), err.Error())
	}
	return helper.Success(c, "Arrangement ditolak", dto.ToArrangementDTO(*arr))
}

// =============================
// 📊 GET /dashboard (admin)
// =============================
func (ctrl *ArrangementAdminController) GetDashboard(c *fiber.Ctx) error {
	stats, err := ctrl.Query.DashboardStats(c.Context())
	if err != nil {
		return helper.Error(c, service.StatusCode(err), err.Error())
	}
	return helper.Success(c, "Statistik arrangement berhasil diambil", stats)
}
