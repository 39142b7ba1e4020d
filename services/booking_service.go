package services

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-engine/kds"
	"github.com/yeremiapane/restaurant-engine/models"
	"github.com/yeremiapane/restaurant-engine/utils"
	"gorm.io/gorm"
)

type BookingRequest struct {
	TableNumber   int
	CustomerID    uint
	RequestedTime time.Time
	PartySize     int
}

// BookingService commits reservations. The availability re-check and the
// insert run in one transaction holding a row lock on the table.
type BookingService struct {
	db        *gorm.DB
	window    time.Duration
	publisher kds.Publisher
}

func NewBookingService(db *gorm.DB, window time.Duration, publisher kds.Publisher) *BookingService {
	if publisher == nil {
		publisher = kds.Nop{}
	}
	return &BookingService{db: db, window: window, publisher: publisher}
}

// CommitBooking re-validates capacity and conflicts for the table and inserts
// the booking. It returns ErrConflict when another booking on the same table
// falls inside the conflict window.
func (s *BookingService) CommitBooking(ctx context.Context, req BookingRequest) (uint, error) {
	if req.PartySize <= 0 {
		return 0, invalidArgument("party size must be positive, got %d", req.PartySize)
	}
	if req.RequestedTime.IsZero() {
		return 0, invalidArgument("requested time is required")
	}

	booking := models.Booking{
		TableNumber: req.TableNumber,
		CustomerID:  req.CustomerID,
		BookingTime: normalizeTime(req.RequestedTime),
		PartySize:   req.PartySize,
	}
	from, to := conflictWindow(req.RequestedTime, s.window)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l := newLedger(tx)

		table, err := l.lockTable(req.TableNumber)
		if err != nil {
			return lookupError("table", req.TableNumber, err)
		}
		if _, err := l.customer(req.CustomerID); err != nil {
			return lookupError("customer", req.CustomerID, err)
		}
		if table.Capacity < req.PartySize {
			return invalidArgument("party of %d exceeds capacity %d of table %d", req.PartySize, table.Capacity, table.TableNumber)
		}

		conflicts, err := l.countBookings(req.TableNumber, from, to)
		if err != nil {
			return storageError("check conflicts", err)
		}
		if conflicts > 0 {
			return &conflictError{tableNumber: req.TableNumber, at: booking.BookingTime}
		}

		if err := l.insertBooking(&booking); err != nil {
			return storageError("insert booking", err)
		}
		return nil
	})
	if err != nil {
		return 0, storageError("commit booking", err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"booking_id":   booking.ID,
		"table_number": booking.TableNumber,
		"customer_id":  booking.CustomerID,
		"booking_time": booking.BookingTime.Format(time.RFC3339),
		"party_size":   booking.PartySize,
	}).Info("booking committed")

	s.publisher.Publish(ctx, kds.Message{
		Event: kds.EventBookingCreated,
		Key:   strconv.Itoa(booking.TableNumber),
		Data:  booking,
	})

	return booking.ID, nil
}

type conflictError struct {
	tableNumber int
	at          time.Time
}

func (e *conflictError) Error() string {
	return "table " + strconv.Itoa(e.tableNumber) + " is already booked around " + e.at.Format(time.RFC3339)
}

func (e *conflictError) Unwrap() error {
	return ErrConflict
}
