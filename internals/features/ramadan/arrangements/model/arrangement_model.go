package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Jenis acara Ramadan
const (
	ArrangementTypeSehri  = "Sehri"
	ArrangementTypeIftari = "Iftari"
)

// NormalizeArrangementType menerima input bebas ("sehri", "IFTARI", ...)
// dan mengembalikan bentuk kanonik. Kosong kalau tidak dikenal.
func NormalizeArrangementType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "sehri":
		return ArrangementTypeSehri
	case "iftari":
		return ArrangementTypeIftari
	default:
		return ""
	}
}

// ==========================
// Status lifecycle
// ==========================
// Status diturunkan dari pasangan (is_active, is_approved):
//   pending   → aktif, belum di-approve (state awal)
//   published → aktif + approved, satu-satunya state yang tampil publik
//   rejected  → nonaktif + tidak approved (terminal)
//   withdrawn → nonaktif tapi pernah approved (terminal, hasil delete)
type ArrangementStatus string

const (
	StatusPending   ArrangementStatus = "pending"
	StatusPublished ArrangementStatus = "published"
	StatusRejected  ArrangementStatus = "rejected"
	StatusWithdrawn ArrangementStatus = "withdrawn"
)

// Aksi moderasi terakhir (audit)
const (
	ModerationActionApproved  = "approved"
	ModerationActionRejected  = "rejected"
	ModerationActionWithdrawn = "withdrawn"
)

// Koordinat {lat,lng} disimpan sebagai satu kolom jsonb
type ArrangementCoordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ArrangementModel struct {
	ArrangementID          int    `gorm:"column:arrangement_id;primaryKey;autoIncrement" json:"arrangement_id"`
	ArrangementType        string `gorm:"column:arrangement_type;type:varchar(20);not null" json:"arrangement_type"`
	ArrangementLocation    string `gorm:"column:arrangement_location;type:varchar(255);not null" json:"arrangement_location"`
	ArrangementDescription string `gorm:"column:arrangement_description;type:text" json:"arrangement_description"`
	ArrangementOrganizer   string `gorm:"column:arrangement_organizer;type:varchar(100);not null" json:"arrangement_organizer"`
	ArrangementContact     string `gorm:"column:arrangement_contact;type:varchar(50)" json:"arrangement_contact"`
	ArrangementMapLink     string `gorm:"column:arrangement_map_link;type:text" json:"arrangement_map_link"`

	// 📍 Koordinat opsional (tanpa koordinat = tanpa marker di peta)
	ArrangementCoordinates *datatypes.JSONType[ArrangementCoordinates] `gorm:"column:arrangement_coordinates;type:jsonb" json:"arrangement_coordinates"`

	// 👤 Pembuat (principal id dari identity provider, immutable)
	ArrangementCreatedBy uuid.UUID `gorm:"column:arrangement_created_by;type:uuid;not null" json:"arrangement_created_by"`

	// 📌 Status publikasi
	ArrangementIsActive   bool `gorm:"column:arrangement_is_active;not null;default:true" json:"arrangement_is_active"`
	ArrangementIsApproved bool `gorm:"column:arrangement_is_approved;not null;default:false" json:"arrangement_is_approved"`

	// ✅ Audit keputusan moderasi terakhir
	ArrangementModeratedAction  *string    `gorm:"column:arrangement_moderated_action;type:varchar(20)" json:"arrangement_moderated_action"`
	ArrangementModeratedBy      *uuid.UUID `gorm:"column:arrangement_moderated_by;type:uuid" json:"arrangement_moderated_by"`
	ArrangementModeratedAt      *time.Time `gorm:"column:arrangement_moderated_at" json:"arrangement_moderated_at"`
	ArrangementModerationReason *string    `gorm:"column:arrangement_moderation_reason;type:text" json:"arrangement_moderation_reason"`

	// 🕒 Metadata
	ArrangementCreatedAt time.Time  `gorm:"column:arrangement_created_at;autoCreateTime" json:"arrangement_created_at"`
	ArrangementUpdatedAt *time.Time `gorm:"column:arrangement_updated_at;autoUpdateTime" json:"arrangement_updated_at"`
}

func (ArrangementModel) TableName() string {
	return "arrangements"
}

// Status menurunkan state dari pasangan boolean.
func (m *ArrangementModel) Status() ArrangementStatus {
	switch {
	case m.ArrangementIsActive && m.ArrangementIsApproved:
		return StatusPublished
	case m.ArrangementIsActive:
		return StatusPending
	case m.ArrangementIsApproved:
		return StatusWithdrawn
	default:
		return StatusRejected
	}
}

// IsPublished: satu-satunya kondisi yang boleh tampil ke publik.
func (m *ArrangementModel) IsPublished() bool {
	return m.ArrangementIsActive && m.ArrangementIsApproved
}

// Coordinates membongkar jsonb ke struct, nil kalau tidak ada.
func (m *ArrangementModel) Coordinates() *ArrangementCoordinates {
	if m.ArrangementCoordinates == nil {
		return nil
	}
	c := m.ArrangementCoordinates.Data()
	return &c
}

// NewCoordinates membungkus {lat,lng} menjadi kolom jsonb.
func NewCoordinates(lat, lng float64) *datatypes.JSONType[ArrangementCoordinates] {
	j := datatypes.NewJSONType(ArrangementCoordinates{Lat: lat, Lng: lng})
	return &j
}
