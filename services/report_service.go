package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-engine/models"
	"gorm.io/gorm"
)

type PopularItem struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

type Summary struct {
	Customers     int64           `json:"customers"`
	Orders        int64           `json:"orders"`
	PaidOrders    int64           `json:"paid_orders"`
	Bookings      int64           `json:"bookings"`
	Revenue       decimal.Decimal `json:"revenue"`
	AverageRating float64         `json:"average_rating"`
	PopularItems  []PopularItem   `json:"popular_items"`
}

// ReportService aggregates read-only figures for the staff dashboard.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

func (s *ReportService) Summary(ctx context.Context) (*Summary, error) {
	db := s.db.WithContext(ctx)
	summary := Summary{Revenue: decimal.Zero, PopularItems: []PopularItem{}}

	if err := db.Model(&models.Customer{}).Count(&summary.Customers).Error; err != nil {
		return nil, storageError("count customers", err)
	}
	if err := db.Model(&models.Order{}).Count(&summary.Orders).Error; err != nil {
		return nil, storageError("count orders", err)
	}
	if err := db.Model(&models.Booking{}).Count(&summary.Bookings).Error; err != nil {
		return nil, storageError("count bookings", err)
	}

	// Revenue dijumlahkan di Go agar tetap desimal eksak
	var totals []decimal.Decimal
	if err := db.Model(&models.Order{}).Where("paid = ?", true).Pluck("total_amount", &totals).Error; err != nil {
		return nil, storageError("sum revenue", err)
	}
	summary.PaidOrders = int64(len(totals))
	summary.Revenue = decimal.Sum(decimal.Zero, totals...)

	var avg *float64
	if err := db.Model(&models.Feedback{}).Select("AVG(rating)").Row().Scan(&avg); err != nil {
		return nil, storageError("average rating", err)
	}
	if avg != nil {
		summary.AverageRating = *avg
	}

	if err := db.Model(&models.OrderItem{}).
		Select("menu_items.name AS name, SUM(order_items.quantity) AS quantity").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Group("menu_items.id, menu_items.name").
		Order("quantity DESC, menu_items.name ASC").
		Limit(5).
		Scan(&summary.PopularItems).Error; err != nil {
		return nil, storageError("popular items", err)
	}

	return &summary, nil
}
