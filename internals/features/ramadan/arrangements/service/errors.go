package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Taksonomi error service. Controller mem-branch pakai errors.Is /
// StatusCode, bukan string matching.
var (
	ErrNotFound          = errors.New("arrangement tidak ditemukan")
	ErrForbidden         = errors.New("tidak punya izin untuk aksi ini")
	ErrUnauthenticated   = errors.New("credential tidak ada atau tidak valid")
	ErrInvalidInput      = errors.New("input tidak valid")
	ErrInvalidTransition = errors.New("status arrangement tidak mengizinkan aksi ini")
	ErrStorage           = errors.New("storage error")
)

// StatusCode memetakan error service ke HTTP status.
// Dipakai semua controller supaya mapping-nya satu pintu.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrInvalidTransition):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
