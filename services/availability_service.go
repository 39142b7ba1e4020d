package services

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type AvailableTable struct {
	TableNumber int `json:"table_number"`
	Capacity    int `json:"capacity"`
}

type TableStatus struct {
	TableNumber  int    `json:"table_number"`
	Capacity     int    `json:"capacity"`
	Booked       bool   `json:"booked"`
	CustomerName string `json:"customer_name,omitempty"`
	PartySize    int    `json:"party_size,omitempty"`
}

// AvailabilityService computes which tables are free around a requested time.
// Reads are plain snapshots; BookingService re-checks at commit.
type AvailabilityService struct {
	db     *gorm.DB
	window time.Duration
}

func NewAvailabilityService(db *gorm.DB, window time.Duration) *AvailabilityService {
	return &AvailabilityService{db: db, window: window}
}

// FindAvailableTables returns tables with capacity >= partySize and no booking
// within the conflict window of requestedTime, smallest table first.
func (s *AvailabilityService) FindAvailableTables(ctx context.Context, partySize int, requestedTime time.Time) ([]AvailableTable, error) {
	if partySize <= 0 {
		return nil, invalidArgument("party size must be positive, got %d", partySize)
	}
	if requestedTime.IsZero() {
		return nil, invalidArgument("requested time is required")
	}

	from, to := conflictWindow(requestedTime, s.window)
	tables, err := newLedger(s.db.WithContext(ctx)).availableTables(partySize, from, to)
	if err != nil {
		return nil, storageError("find available tables", err)
	}

	result := make([]AvailableTable, 0, len(tables))
	for _, t := range tables {
		result = append(result, AvailableTable{TableNumber: t.TableNumber, Capacity: t.Capacity})
	}
	return result, nil
}

// TableStatus reports every table as booked or free at the given time, using
// the same conflict window as FindAvailableTables.
func (s *AvailabilityService) TableStatus(ctx context.Context, at time.Time) ([]TableStatus, error) {
	if at.IsZero() {
		return nil, invalidArgument("time is required")
	}

	l := newLedger(s.db.WithContext(ctx))
	tables, err := l.tables()
	if err != nil {
		return nil, storageError("list tables", err)
	}

	from, to := conflictWindow(at, s.window)
	bookings, err := l.bookingsBetween(from, to)
	if err != nil {
		return nil, storageError("list bookings", err)
	}

	// Earliest booking wins when a table has more than one in the window.
	byTable := make(map[int]bookingRow, len(bookings))
	for _, b := range bookings {
		if _, seen := byTable[b.TableNumber]; !seen {
			byTable[b.TableNumber] = b
		}
	}

	statuses := make([]TableStatus, 0, len(tables))
	for _, t := range tables {
		st := TableStatus{TableNumber: t.TableNumber, Capacity: t.Capacity}
		if b, ok := byTable[t.TableNumber]; ok {
			st.Booked = true
			st.CustomerName = b.CustomerName
			st.PartySize = b.PartySize
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}
