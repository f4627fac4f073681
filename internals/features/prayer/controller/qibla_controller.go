package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	helper "alkareem_backend/internals/helpers"

	"alkareem_backend/internals/features/prayer/service"
)

type QiblaController struct{}

func NewQiblaController() *QiblaController {
	return &QiblaController{}
}

// 🧭 GET /qibla?lat=..&lng=..
func (ctrl *QiblaController) GetQiblaDirection(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter lat dan lng wajib diisi dengan angka")
	}

	result, err := service.QiblaDirection(lat, lng)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Koordinat di luar jangkauan")
	}

	return helper.Success(c, "Arah kiblat berhasil dihitung", fiber.Map{
		"qibla_bearing": result.Bearing,
		"distance_km":   result.DistanceKM,
		"user_location": fiber.Map{"lat": lat, "lng": lng},
		"kaaba_location": fiber.Map{
			"lat": service.KaabaLat,
			"lng": service.KaabaLng,
		},
	})
}
