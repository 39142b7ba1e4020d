package services

import (
	"time"

	"github.com/yeremiapane/restaurant-engine/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ledger holds the reads and writes the engine issues against the store. It
// wraps either the root handle or a transaction handle, so the same queries
// serve snapshot reads and atomic units.
type ledger struct {
	db *gorm.DB
}

func newLedger(db *gorm.DB) ledger {
	return ledger{db: db}
}

// normalizeTime stores and compares every instant in UTC at second precision.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// conflictWindow returns the inclusive bounds [t-w, t+w].
func conflictWindow(t time.Time, w time.Duration) (time.Time, time.Time) {
	t = normalizeTime(t)
	return t.Add(-w), t.Add(w)
}

func (l ledger) menuItem(id uint) (models.MenuItem, error) {
	var item models.MenuItem
	err := l.db.First(&item, id).Error
	return item, err
}

func (l ledger) menuItems(ids []uint) (map[uint]models.MenuItem, error) {
	var items []models.MenuItem
	if err := l.db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return byID, nil
}

func (l ledger) table(number int) (models.Table, error) {
	var table models.Table
	err := l.db.Where("table_number = ?", number).First(&table).Error
	return table, err
}

// lockTable reads the table row with FOR UPDATE, serialising booking commits
// on that table until the surrounding transaction ends.
func (l ledger) lockTable(number int) (models.Table, error) {
	var table models.Table
	err := l.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("table_number = ?", number).
		First(&table).Error
	return table, err
}

func (l ledger) customer(id uint) (models.Customer, error) {
	var customer models.Customer
	err := l.db.First(&customer, id).Error
	return customer, err
}

// availableTables lists tables seating partySize with no booking in [from, to].
func (l ledger) availableTables(partySize int, from, to time.Time) ([]models.Table, error) {
	booked := l.db.Model(&models.Booking{}).
		Select("table_number").
		Where("booking_time BETWEEN ? AND ?", from, to)

	var tables []models.Table
	err := l.db.Where("capacity >= ?", partySize).
		Where("table_number NOT IN (?)", booked).
		Order("capacity ASC, table_number ASC").
		Find(&tables).Error
	return tables, err
}

func (l ledger) tables() ([]models.Table, error) {
	var tables []models.Table
	err := l.db.Order("table_number ASC").Find(&tables).Error
	return tables, err
}

type bookingRow struct {
	TableNumber  int
	CustomerName string
	PartySize    int
}

// bookingsBetween returns bookings in [from, to] joined with customer names,
// earliest first.
func (l ledger) bookingsBetween(from, to time.Time) ([]bookingRow, error) {
	var rows []bookingRow
	err := l.db.Model(&models.Booking{}).
		Select("bookings.table_number, customers.name AS customer_name, bookings.party_size").
		Joins("LEFT JOIN customers ON customers.id = bookings.customer_id").
		Where("bookings.booking_time BETWEEN ? AND ?", from, to).
		Order("bookings.booking_time ASC, bookings.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (l ledger) countBookings(tableNumber int, from, to time.Time) (int64, error) {
	var n int64
	err := l.db.Model(&models.Booking{}).
		Where("table_number = ? AND booking_time BETWEEN ? AND ?", tableNumber, from, to).
		Count(&n).Error
	return n, err
}

func (l ledger) insertBooking(b *models.Booking) error {
	return l.db.Create(b).Error
}

func (l ledger) insertOrder(o *models.Order) error {
	return l.db.Omit(clause.Associations).Create(o).Error
}

func (l ledger) insertOrderItems(items []models.OrderItem) error {
	return l.db.Omit(clause.Associations).Create(&items).Error
}

func (l ledger) order(id uint) (models.Order, error) {
	var order models.Order
	err := l.db.First(&order, id).Error
	return order, err
}

func (l ledger) orderWithItems(id uint) (models.Order, error) {
	var order models.Order
	err := l.db.Preload("OrderItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.id ASC")
	}).Preload("OrderItems.MenuItem").First(&order, id).Error
	return order, err
}

// markPaid flips paid from false to true. It reports false when no row
// matched, i.e. the order was already paid.
func (l ledger) markPaid(orderID uint, at time.Time) (bool, error) {
	res := l.db.Model(&models.Order{}).
		Where("id = ? AND paid = ?", orderID, false).
		Updates(map[string]interface{}{"paid": true, "paid_at": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (l ledger) insertPayment(p *models.Payment) error {
	return l.db.Create(p).Error
}

func (l ledger) payment(orderID uint) (models.Payment, error) {
	var payment models.Payment
	err := l.db.Where("order_id = ?", orderID).First(&payment).Error
	return payment, err
}
