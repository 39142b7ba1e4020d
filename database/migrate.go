package database

import (
	"fmt"

	"github.com/yeremiapane/restaurant-engine/models"
	"github.com/yeremiapane/restaurant-engine/utils"
	"gorm.io/gorm"
)

// Models lists every table owned by the engine, in dependency order.
var Models = []interface{}{
	&models.Customer{},
	&models.Table{},
	&models.MenuItem{},
	&models.Booking{},
	&models.Order{},
	&models.OrderItem{},
	&models.Payment{},
	&models.Feedback{},
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to AutoMigrate: %w", err)
	}

	// Verifikasi index booking
	if !db.Migrator().HasIndex(&models.Booking{}, "idx_bookings_table_time") {
		return fmt.Errorf("index idx_bookings_table_time missing after migration")
	}

	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
