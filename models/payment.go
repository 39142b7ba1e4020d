package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records the settlement of an order. One row per order at most.
type Payment struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	OrderID        uint            `json:"order_id" gorm:"uniqueIndex;not null"`
	AmountTendered decimal.Decimal `json:"amount_tendered" gorm:"type:decimal(12,2);not null"`
	ChangeDue      decimal.Decimal `json:"change_due" gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time       `json:"created_at"`
}
