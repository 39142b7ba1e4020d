package services

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-engine/kds"
	"github.com/yeremiapane/restaurant-engine/models"
	"github.com/yeremiapane/restaurant-engine/utils"
	"gorm.io/gorm"
)

// Status order
const (
	OrderStatusUnpaid = "unpaid"
	OrderStatusPaid   = "paid"
)

type Settlement struct {
	OrderID        uint            `json:"order_id"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	AmountTendered decimal.Decimal `json:"amount_tendered"`
	ChangeDue      decimal.Decimal `json:"change_due"`
	Status         string          `json:"status"`
}

// PaymentService settles orders. Unpaid -> Paid is the only transition and is
// applied with a conditional update, so concurrent settlements of one order
// cannot both succeed.
type PaymentService struct {
	db        *gorm.DB
	publisher kds.Publisher
	now       func() time.Time
}

func NewPaymentService(db *gorm.DB, publisher kds.Publisher) *PaymentService {
	if publisher == nil {
		publisher = kds.Nop{}
	}
	return &PaymentService{
		db:        db,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SettlePayment marks the order paid and returns the change due.
func (s *PaymentService) SettlePayment(ctx context.Context, orderID uint, amountTendered decimal.Decimal) (decimal.Decimal, error) {
	settlement, err := s.Settle(ctx, orderID, amountTendered)
	if err != nil {
		return decimal.Zero, err
	}
	return settlement.ChangeDue, nil
}

// Settle is SettlePayment returning the full settlement record.
func (s *PaymentService) Settle(ctx context.Context, orderID uint, amountTendered decimal.Decimal) (*Settlement, error) {
	if amountTendered.IsNegative() {
		return nil, invalidArgument("amount tendered must not be negative")
	}
	if !amountTendered.Equal(amountTendered.Round(2)) {
		return nil, invalidArgument("amount tendered %s has more than two decimal places", amountTendered.String())
	}

	var settlement Settlement
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l := newLedger(tx)

		order, err := l.order(orderID)
		if err != nil {
			return lookupError("order", orderID, err)
		}
		if order.Paid {
			return ErrAlreadySettled
		}
		if amountTendered.LessThan(order.TotalAmount) {
			return &insufficientPaymentError{required: order.TotalAmount, tendered: amountTendered}
		}

		// Cek dan tandai lunas dalam satu statement
		now := s.now()
		ok, err := l.markPaid(order.ID, now)
		if err != nil {
			return storageError("mark order paid", err)
		}
		if !ok {
			return ErrAlreadySettled
		}

		change := amountTendered.Sub(order.TotalAmount)
		if err := l.insertPayment(&models.Payment{
			OrderID:        order.ID,
			AmountTendered: amountTendered,
			ChangeDue:      change,
		}); err != nil {
			return storageError("insert payment", err)
		}

		settlement = Settlement{
			OrderID:        order.ID,
			TotalAmount:    order.TotalAmount,
			AmountTendered: amountTendered,
			ChangeDue:      change,
			Status:         OrderStatusPaid,
		}
		return nil
	})
	if err != nil {
		return nil, storageError("settle payment", err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id":        settlement.OrderID,
		"total_amount":    settlement.TotalAmount.StringFixed(2),
		"amount_tendered": settlement.AmountTendered.StringFixed(2),
		"change_due":      settlement.ChangeDue.StringFixed(2),
	}).Info("payment settled")

	s.publisher.Publish(ctx, kds.Message{
		Event: kds.EventPaymentSettled,
		Key:   strconv.FormatUint(uint64(settlement.OrderID), 10),
		Data:  settlement,
	})

	return &settlement, nil
}

type insufficientPaymentError struct {
	required decimal.Decimal
	tendered decimal.Decimal
}

func (e *insufficientPaymentError) Error() string {
	return "insufficient payment: required " + utils.FormatCurrency(e.required) + ", tendered " + utils.FormatCurrency(e.tendered)
}

func (e *insufficientPaymentError) Unwrap() error {
	return ErrInsufficientPayment
}
