package database

import (
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-engine/models"
	"github.com/yeremiapane/restaurant-engine/utils"
	"gorm.io/gorm"
)

// SeedDemoData fills an empty database with a small floor plan and menu.
// Tables that already hold rows are left untouched.
func SeedDemoData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Table{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			tables := []models.Table{
				{TableNumber: 1, Capacity: 2},
				{TableNumber: 2, Capacity: 2},
				{TableNumber: 3, Capacity: 4},
				{TableNumber: 4, Capacity: 4},
				{TableNumber: 5, Capacity: 6},
				{TableNumber: 6, Capacity: 8},
			}
			if err := tx.Create(&tables).Error; err != nil {
				return err
			}
			utils.InfoLogger.Printf("Seeded %d tables", len(tables))
		}

		if err := tx.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			menu := []models.MenuItem{
				{Name: "Masala Dosa", Category: "Main", Price: decimal.RequireFromString("120.00")},
				{Name: "Paneer Tikka", Category: "Starter", Price: decimal.RequireFromString("180.00")},
				{Name: "Veg Biryani", Category: "Main", Price: decimal.RequireFromString("220.00")},
				{Name: "Filter Coffee", Category: "Beverage", Price: decimal.RequireFromString("45.50")},
				{Name: "Gulab Jamun", Category: "Dessert", Price: decimal.RequireFromString("60.00")},
			}
			if err := tx.Create(&menu).Error; err != nil {
				return err
			}
			utils.InfoLogger.Printf("Seeded %d menu items", len(menu))
		}
		return nil
	})
}
