package services

import (
	"context"

	"github.com/yeremiapane/restaurant-engine/models"
	"gorm.io/gorm"
)

// CatalogService is the read-only lookup of menu items and tables. Values are
// point-in-time snapshots.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	item, err := newLedger(s.db.WithContext(ctx)).menuItem(id)
	if err != nil {
		return nil, lookupError("menu item", id, err)
	}
	return &item, nil
}

func (s *CatalogService) GetTable(ctx context.Context, number int) (*models.Table, error) {
	table, err := newLedger(s.db.WithContext(ctx)).table(number)
	if err != nil {
		return nil, lookupError("table", number, err)
	}
	return &table, nil
}

// ListMenu returns the menu, cheapest first.
func (s *CatalogService) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.WithContext(ctx).Order("price ASC, id ASC").Find(&items).Error; err != nil {
		return nil, storageError("list menu", err)
	}
	return items, nil
}

func (s *CatalogService) ListTables(ctx context.Context) ([]models.Table, error) {
	tables, err := newLedger(s.db.WithContext(ctx)).tables()
	if err != nil {
		return nil, storageError("list tables", err)
	}
	return tables, nil
}
