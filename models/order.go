package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CustomerID  uint            `gorm:"not null;index" json:"customer_id"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	Paid        bool            `gorm:"not null;default:false" json:"paid"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
	OrderItems  []OrderItem     `gorm:"foreignKey:OrderID" json:"order_items"`
}

// State reports the settlement state of the order.
func (o *Order) State() string {
	if o.Paid {
		return "paid"
	}
	return "unpaid"
}

// ReceiptNumber menghasilkan nomor struk berdasarkan ID order
func (o *Order) ReceiptNumber() string {
	return fmt.Sprintf("RCPT-%d-%06d", o.CustomerID, o.ID)
}
