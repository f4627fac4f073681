package dto

import (
	"time"

	"github.com/google/uuid"

	"alkareem_backend/internals/features/ramadan/arrangements/model"
)

// =========================
// Request DTOs: Create & Update
// =========================

type CoordinatesRequest struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lng *float64 `json:"lng" validate:"required"`
}

type CreateArrangementRequest struct {
	ArrangementType        string              `json:"arrangement_type" validate:"required"`
	ArrangementLocation    string              `json:"arrangement_location" validate:"required,min=3"`
	ArrangementDescription string              `json:"arrangement_description" validate:"required"`
	ArrangementOrganizer   string              `json:"arrangement_organizer" validate:"required"`
	ArrangementContact     string              `json:"arrangement_contact"`
	ArrangementMapLink     string              `json:"arrangement_map_link"`
	ArrangementCoordinates *CoordinatesRequest `json:"arrangement_coordinates"`
}

// Field yang boleh diubah setelah create. Type, location, dan
// created_by immutable. Pointer = partial patch.
type UpdateArrangementRequest struct {
	ArrangementDescription *string             `json:"arrangement_description"`
	ArrangementOrganizer   *string             `json:"arrangement_organizer"`
	ArrangementContact     *string             `json:"arrangement_contact"`
	ArrangementMapLink     *string             `json:"arrangement_map_link"`
	ArrangementCoordinates *CoordinatesRequest `json:"arrangement_coordinates"`
}

type RejectArrangementRequest struct {
	Reason string `json:"reason"`
}

// =========================
// Response DTOs
// =========================

type ArrangementDTO struct {
	ArrangementID          int                           `json:"arrangement_id"`
	ArrangementType        string                        `json:"arrangement_type"`
	ArrangementLocation    string                        `json:"arrangement_location"`
	ArrangementDescription string                        `json:"arrangement_description"`
	ArrangementOrganizer   string                        `json:"arrangement_organizer"`
	ArrangementContact     string                        `json:"arrangement_contact"`
	ArrangementMapLink     string                        `json:"arrangement_map_link"`
	ArrangementCoordinates *model.ArrangementCoordinates `json:"arrangement_coordinates"`
	ArrangementCreatedBy   uuid.UUID                     `json:"arrangement_created_by"`
	ArrangementStatus      model.ArrangementStatus       `json:"arrangement_status"`
	ArrangementIsActive    bool                          `json:"arrangement_is_active"`
	ArrangementIsApproved  bool                          `json:"arrangement_is_approved"`

	// Audit moderasi terakhir (nil sebelum ada keputusan)
	ArrangementModeratedAction  *string    `json:"arrangement_moderated_action,omitempty"`
	ArrangementModeratedBy      *uuid.UUID `json:"arrangement_moderated_by,omitempty"`
	ArrangementModeratedAt      *time.Time `json:"arrangement_moderated_at,omitempty"`
	ArrangementModerationReason *string    `json:"arrangement_moderation_reason,omitempty"`

	ArrangementCreatedAt time.Time  `json:"arrangement_created_at"`
	ArrangementUpdatedAt *time.Time `json:"arrangement_updated_at"`
}

// Marker untuk Google Maps (hanya arrangement published + berkoordinat)
type MapMarkerDTO struct {
	ArrangementID int                          `json:"id"`
	Type          string                       `json:"type"`
	Title         string                       `json:"title"`
	Description   string                       `json:"description"`
	Organizer     string                       `json:"organizer"`
	Coordinates   model.ArrangementCoordinates `json:"coordinates"`
	Contact       string                       `json:"contact"`
	Icon          string                       `json:"icon"`
}

// Ringkasan jumlah arrangement per state (dashboard admin)
type ArrangementStatsDTO struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Published int64 `json:"published"`
	Rejected  int64 `json:"rejected"`
	Withdrawn int64 `json:"withdrawn"`
}

// =========================
// Model → DTO
// =========================

func ToArrangementDTO(m model.ArrangementModel) ArrangementDTO {
	return ArrangementDTO{
		ArrangementID:          m.ArrangementID,
		ArrangementType:        m.ArrangementType,
		ArrangementLocation:    m.ArrangementLocation,
		ArrangementDescription: m.ArrangementDescription,
		ArrangementOrganizer:   m.ArrangementOrganizer,
		ArrangementContact:     m.ArrangementContact,
		ArrangementMapLink:     m.ArrangementMapLink,
		ArrangementCoordinates: m.Coordinates(),
		ArrangementCreatedBy:   m.ArrangementCreatedBy,
		ArrangementStatus:      m.Status(),
		ArrangementIsActive:    m.ArrangementIsActive,
		ArrangementIsApproved:  m.ArrangementIsApproved,

		ArrangementModeratedAction:  m.ArrangementModeratedAction,
		ArrangementModeratedBy:      m.ArrangementModeratedBy,
		ArrangementModeratedAt:      m.ArrangementModeratedAt,
		ArrangementModerationReason: m.ArrangementModerationReason,

		ArrangementCreatedAt: m.ArrangementCreatedAt,
		ArrangementUpdatedAt: m.ArrangementUpdatedAt,
	}
}

func ToArrangementDTOs(models []model.ArrangementModel) []ArrangementDTO {
	out := make([]ArrangementDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToArrangementDTO(m))
	}
	return out
}
