package services

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-engine/kds"
	"github.com/yeremiapane/restaurant-engine/models"
	"github.com/yeremiapane/restaurant-engine/utils"
	"gorm.io/gorm"
)

type LineItem struct {
	MenuItemID uint `json:"menu_item_id"`
	Quantity   int  `json:"quantity"`
}

type PlacedOrder struct {
	OrderID     uint            `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// OrderService prices and persists orders. The header and all line items are
// written in one transaction.
type OrderService struct {
	db        *gorm.DB
	publisher kds.Publisher
}

func NewOrderService(db *gorm.DB, publisher kds.Publisher) *OrderService {
	if publisher == nil {
		publisher = kds.Nop{}
	}
	return &OrderService{db: db, publisher: publisher}
}

// PlaceOrder prices every line at the current menu price and stores the order
// with paid=false. Either the header and every item are written or nothing is.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID uint, lines []LineItem) (*PlacedOrder, error) {
	if len(lines) == 0 {
		return nil, invalidArgument("order must contain at least one line item")
	}
	ids := make([]uint, 0, len(lines))
	for i, line := range lines {
		if line.Quantity <= 0 {
			return nil, invalidArgument("line %d: quantity must be positive, got %d", i+1, line.Quantity)
		}
		ids = append(ids, line.MenuItemID)
	}

	var order models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l := newLedger(tx)

		if _, err := l.customer(customerID); err != nil {
			return lookupError("customer", customerID, err)
		}

		menu, err := l.menuItems(ids)
		if err != nil {
			return storageError("load menu items", err)
		}

		// Hitung total dari harga menu saat ini
		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			item, ok := menu[line.MenuItemID]
			if !ok {
				return notFound("menu item %d", line.MenuItemID)
			}
			total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			items = append(items, models.OrderItem{
				MenuItemID: item.ID,
				Quantity:   line.Quantity,
				UnitPrice:  item.Price,
			})
		}

		order = models.Order{
			CustomerID:  customerID,
			TotalAmount: total,
			Paid:        false,
		}
		if err := l.insertOrder(&order); err != nil {
			return storageError("insert order", err)
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := l.insertOrderItems(items); err != nil {
			return storageError("insert order items", err)
		}
		order.OrderItems = items
		return nil
	})
	if err != nil {
		return nil, storageError("place order", err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"customer_id":  customerID,
		"line_items":   len(lines),
		"total_amount": order.TotalAmount.StringFixed(2),
	}).Info("order placed")

	s.publisher.Publish(ctx, kds.Message{
		Event: kds.EventOrderPlaced,
		Key:   strconv.FormatUint(uint64(order.ID), 10),
		Data:  order,
	})

	return &PlacedOrder{OrderID: order.ID, TotalAmount: order.TotalAmount}, nil
}

// GetOrder returns the order with its line items and their menu entries.
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	order, err := newLedger(s.db.WithContext(ctx)).orderWithItems(id)
	if err != nil {
		return nil, lookupError("order", id, err)
	}
	return &order, nil
}
