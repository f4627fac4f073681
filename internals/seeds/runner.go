package seeds

import (
	arrangements "alkareem_backend/internals/seeds/ramadan/arrangements"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {

	//* Ramadan
	arrangements.SeedArrangementsFromJSON(db, "internals/seeds/ramadan/arrangements/data_arrangements.json")
}
