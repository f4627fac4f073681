package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alkareem_backend/internals/constants"
	"alkareem_backend/internals/features/ramadan/arrangements/repository"
	"alkareem_backend/internals/features/ramadan/arrangements/service"
)

// injectIdentity meniru hasil auth middleware: user_id + userRole di locals.
func injectIdentity(userID uuid.UUID, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		c.Locals("userRole", role)
		return c.Next()
	}
}

func newTestApp(userID uuid.UUID, role string) *fiber.App {
	repo := repository.NewMemoryArrangementRepository()
	moderation := service.NewModerationService(repo)
	query := service.NewQueryService(repo)

	ctrl := NewArrangementController(moderation, query)
	adminCtrl := NewArrangementAdminController(moderation, query)

	app := fiber.New()

	public := app.Group("/api/public/arrangements")
	public.Get("/map-data", ctrl.GetMapData)
	public.Get("/", ctrl.GetAllArrangements)
	public.Get("/:id", ctrl.GetArrangementByID)

	private := app.Group("/api/u/arrangements", injectIdentity(userID, role))
	private.Post("/", ctrl.CreateArrangement)
	private.Put("/:id", ctrl.UpdateArrangement)
	private.Delete("/:id", ctrl.DeleteArrangement)

	admin := app.Group("/api/a", injectIdentity(userID, role))
	admin.Get("/arrangements/pending", adminCtrl.GetPendingArrangements)
	admin.Patch("/arrangements/:id/approve", adminCtrl.ApproveArrangement)
	admin.Patch("/arrangements/:id/reject", adminCtrl.RejectArrangement)
	admin.Get("/dashboard", adminCtrl.GetDashboard)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var payload map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &payload))
	}
	return resp, payload
}

func createBody() map[string]any {
	return map[string]any{
		"arrangement_type":        "Sehri",
		"arrangement_location":    "Jama Masjid, Delhi",
		"arrangement_description": "Free traditional Sehri with parathas and lassi",
		"arrangement_organizer":   "Delhi Muslim Community Center",
		"arrangement_coordinates": map[string]float64{"lat": 28.6507, "lng": 77.2334},
	}
}

func TestCreateAndModerationFlowOverHTTP(t *testing.T) {
	// satu app per role, repo terpisah → pakai app admin untuk seluruh flow
	adminID := uuid.New()
	app := newTestApp(adminID, constants.RoleAdmin)

	// submit
	resp, payload := doJSON(t, app, fiber.MethodPost, "/api/u/arrangements/", createBody())
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", payload["status"])

	data := payload["data"].(map[string]any)
	assert.Equal(t, "pending", data["arrangement_status"])
	id := int(data["arrangement_id"].(float64))
	require.GreaterOrEqual(t, id, 1)

	// belum approve → publik tidak melihat
	resp, payload = doJSON(t, app, fiber.MethodGet, "/api/public/arrangements/", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	listData := payload["data"].(map[string]any)
	assert.Equal(t, float64(0), listData["total"])

	// pending muncul di antrean admin
	resp, payload = doJSON(t, app, fiber.MethodGet, "/api/a/arrangements/pending", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// approve
	resp, payload = doJSON(t, app, fiber.MethodPatch, "/api/a/arrangements/1/approve", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = payload["data"].(map[string]any)
	assert.Equal(t, "published", data["arrangement_status"])

	// sekarang publik melihat
	resp, payload = doJSON(t, app, fiber.MethodGet, "/api/public/arrangements/1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// map-data ikut terisi
	resp, payload = doJSON(t, app, fiber.MethodGet, "/api/public/arrangements/map-data", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	mapData := payload["data"].(map[string]any)
	assert.Equal(t, float64(1), mapData["total"])
	markers := mapData["markers"].([]any)
	marker := markers[0].(map[string]any)
	assert.Equal(t, "mosque", marker["icon"])
	assert.Equal(t, "Sehri - Jama Masjid, Delhi", marker["title"])
}

func TestRejectOverHTTP(t *testing.T) {
	app := newTestApp(uuid.New(), constants.RoleAdmin)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/u/arrangements/", createBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// reject tanpa body → reason default
	resp, payload := doJSON(t, app, fiber.MethodPatch, "/api/a/arrangements/1/reject", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := payload["data"].(map[string]any)
	assert.Equal(t, "rejected", data["arrangement_status"])
	assert.Equal(t, "No reason provided", data["arrangement_moderation_reason"])

	// reject ulang → 409
	resp, _ = doJSON(t, app, fiber.MethodPatch, "/api/a/arrangements/1/reject",
		map[string]string{"reason": "lagi"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestNormalUserCannotCreate(t *testing.T) {
	app := newTestApp(uuid.New(), constants.RoleNormal)

	resp, payload := doJSON(t, app, fiber.MethodPost, "/api/u/arrangements/", createBody())
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "error", payload["status"])
}

func TestCreateValidationOverHTTP(t *testing.T) {
	app := newTestApp(uuid.New(), constants.RoleArranger)

	body := createBody()
	delete(body, "arrangement_location")
	resp, payload := doJSON(t, app, fiber.MethodPost, "/api/u/arrangements/", body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Validasi gagal", payload["message"])
}

func TestGetUnknownArrangementReturns404(t *testing.T) {
	app := newTestApp(uuid.New(), constants.RoleNormal)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/public/arrangements/42", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// id bukan angka → 400
	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/public/arrangements/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDashboardStatsOverHTTP(t *testing.T) {
	app := newTestApp(uuid.New(), constants.RoleAdmin)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/u/arrangements/", createBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, fiber.MethodPatch, "/api/a/arrangements/1/approve", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, payload := doJSON(t, app, fiber.MethodGet, "/api/a/dashboard", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := payload["data"].(map[string]any)
	assert.Equal(t, float64(1), data["published"])
	assert.Equal(t, float64(1), data["total"])
}
