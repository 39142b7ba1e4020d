package models

import "time"

// Booking reserves a table around BookingTime. Rows are insert-only.
type Booking struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber int       `gorm:"not null;index:idx_bookings_table_time,priority:1" json:"table_number"`
	CustomerID  uint      `gorm:"not null;index" json:"customer_id"`
	BookingTime time.Time `gorm:"not null;index:idx_bookings_table_time,priority:2" json:"booking_time"`
	PartySize   int       `gorm:"not null" json:"party_size"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
