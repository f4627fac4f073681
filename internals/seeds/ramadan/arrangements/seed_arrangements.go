package arrangements

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"alkareem_backend/internals/features/ramadan/arrangements/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Struktur sesuai dengan data_arrangements.json
type ArrangementSeed struct {
	ArrangementType        string                       `json:"arrangement_type"`
	ArrangementLocation    string                       `json:"arrangement_location"`
	ArrangementDescription string                       `json:"arrangement_description"`
	ArrangementOrganizer   string                       `json:"arrangement_organizer"`
	ArrangementMapLink     string                       `json:"arrangement_map_link"`
	ArrangementCoordinates *model.ArrangementCoordinates `json:"arrangement_coordinates"`
	ArrangementContact     string                       `json:"arrangement_contact"`
	ArrangementIsActive    bool                         `json:"arrangement_is_active"`
	ArrangementIsApproved  bool                         `json:"arrangement_is_approved"`
}

func SeedArrangementsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []ArrangementSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	// pemilik seed: satu akun sistem, stabil antar run
	seedOwner := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	for _, s := range seeds {
		var existing model.ArrangementModel
		if err := db.Where("arrangement_location = ?", s.ArrangementLocation).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Arrangement di %s sudah ada, lewati...", s.ArrangementLocation)
			continue
		}

		var coords *datatypes.JSONType[model.ArrangementCoordinates]
		if s.ArrangementCoordinates != nil {
			coords = model.NewCoordinates(s.ArrangementCoordinates.Lat, s.ArrangementCoordinates.Lng)
		}

		now := time.Now()
		newArrangement := model.ArrangementModel{
			ArrangementType:        model.NormalizeArrangementType(s.ArrangementType),
			ArrangementLocation:    s.ArrangementLocation,
			ArrangementDescription: s.ArrangementDescription,
			ArrangementOrganizer:   s.ArrangementOrganizer,
			ArrangementMapLink:     s.ArrangementMapLink,
			ArrangementCoordinates: coords,
			ArrangementContact:     s.ArrangementContact,
			ArrangementIsActive:    s.ArrangementIsActive,
			ArrangementIsApproved:  s.ArrangementIsApproved,
			ArrangementCreatedBy:   seedOwner,
			ArrangementCreatedAt:   now,
			ArrangementUpdatedAt:   &now,
		}

		if err := db.Create(&newArrangement).Error; err != nil {
			log.Printf("❌ Gagal insert arrangement %s: %v", s.ArrangementLocation, err)
		} else {
			log.Printf("✅ Berhasil insert arrangement %s (%s)", newArrangement.ArrangementLocation, newArrangement.ArrangementType)
		}
	}
}
