package models

import "time"

type Feedback struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comments   string    `gorm:"type:text" json:"comments"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

// TableName keeps the table singular; "feedbacks" reads wrong.
func (Feedback) TableName() string {
	return "feedback"
}
