package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-engine/database"
	"github.com/yeremiapane/restaurant-engine/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testWindow = time.Hour

// dinnerTime is the reference instant most booking tests revolve around.
var dinnerTime = time.Date(2026, 10, 17, 19, 0, 0, 0, time.UTC)

// setupTestDB opens a private in-memory database with four tables, two menu
// items priced 120.00 and 45.50, and two customers.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))

	tables := []models.Table{
		{TableNumber: 1, Capacity: 2},
		{TableNumber: 2, Capacity: 4},
		{TableNumber: 3, Capacity: 6},
		{TableNumber: 4, Capacity: 4},
	}
	require.NoError(t, db.Create(&tables).Error)

	menu := []models.MenuItem{
		{Name: "Thali", Category: "Main", Price: decimal.RequireFromString("120.00")},
		{Name: "Lassi", Category: "Beverage", Price: decimal.RequireFromString("45.50")},
	}
	require.NoError(t, db.Create(&menu).Error)

	customers := []models.Customer{{Name: "Asha"}, {Name: "Ravi"}}
	require.NoError(t, db.Create(&customers).Error)

	return db
}

// placeTestOrder places 2 x Thali + 1 x Lassi (285.50) for customer 1.
func placeTestOrder(t *testing.T, db *gorm.DB) *PlacedOrder {
	t.Helper()
	placed, err := NewOrderService(db, nil).PlaceOrder(context.Background(), 1, []LineItem{
		{MenuItemID: 1, Quantity: 2},
		{MenuItemID: 2, Quantity: 1},
	})
	require.NoError(t, err)
	return placed
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
