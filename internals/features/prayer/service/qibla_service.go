package service

import (
	"errors"
	"math"
)

// Koordinat Ka'bah (Masjidil Haram, Makkah)
const (
	KaabaLat = 21.4225
	KaabaLng = 39.8262
)

// radius bumi rata-rata (km) untuk jarak great-circle
const earthRadiusKM = 6371

var ErrInvalidCoordinate = errors.New("lat/lng tidak valid")

type QiblaResult struct {
	Bearing    float64 `json:"qibla_bearing"`
	DistanceKM float64 `json:"distance_km"`
}

// QiblaDirection menghitung initial great-circle bearing dari lokasi
// user ke Ka'bah (derajat dari utara, searah jarum jam) plus jarak km.
func QiblaDirection(lat, lng float64) (QiblaResult, error) {
	if !isFinite(lat) || !isFinite(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return QiblaResult{}, ErrInvalidCoordinate
	}

	lat1 := radians(lat)
	lat2 := radians(KaabaLat)
	deltaLng := radians(KaabaLng - lng)

	y := math.Sin(deltaLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(deltaLng)

	bearing := math.Atan2(y, x) * 180 / math.Pi
	bearing = math.Mod(bearing+360, 360)

	// jarak via spherical law of cosines (cukup akurat untuk tampilan)
	cosD := math.Cos(lat1)*math.Cos(lat2)*math.Cos(radians(KaabaLng)-radians(lng)) +
		math.Sin(lat1)*math.Sin(lat2)
	// jaga-jaga pembulatan floating point di titik yang sama persis
	cosD = math.Max(-1, math.Min(1, cosD))
	distance := earthRadiusKM * math.Acos(cosD)

	return QiblaResult{
		Bearing:    round2(bearing),
		DistanceKM: round2(distance),
	}, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
