package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/yeremiapane/restaurant-engine/models"
	"github.com/yeremiapane/restaurant-engine/utils"
	"gorm.io/gorm"
)

// ReceiptService renders PDF receipts for settled orders.
type ReceiptService struct {
	db   *gorm.DB
	Name string // restaurant name printed in the header
}

func NewReceiptService(db *gorm.DB, name string) *ReceiptService {
	return &ReceiptService{db: db, Name: name}
}

func (s *ReceiptService) RenderReceipt(ctx context.Context, orderID uint) ([]byte, error) {
	l := newLedger(s.db.WithContext(ctx))

	order, err := l.orderWithItems(orderID)
	if err != nil {
		return nil, lookupError("order", orderID, err)
	}
	if !order.Paid {
		return nil, invalidArgument("order %d is not paid yet", orderID)
	}
	payment, err := l.payment(orderID)
	if err != nil {
		return nil, lookupError("payment for order", orderID, err)
	}

	return renderReceiptPDF(s.Name, &order, &payment)
}

func renderReceiptPDF(name string, order *models.Order, payment *models.Payment) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("Receipt "+order.ReceiptNumber(), false)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, name, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, order.ReceiptNumber(), "", 1, "C", false, 0, "")
	if order.PaidAt != nil {
		pdf.CellFormat(0, 5, order.PaidAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	// Items
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(60, 6, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(12, 6, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(31, 6, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range order.OrderItems {
		pdf.CellFormat(60, 6, item.MenuItem.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(12, 6, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, utils.FormatCurrency(item.UnitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(31, 6, utils.FormatCurrency(item.Subtotal()), "", 1, "R", false, 0, "")
	}

	// Totals
	pdf.Ln(2)
	totals := []struct {
		label string
		value string
	}{
		{"Total", utils.FormatCurrency(order.TotalAmount)},
		{"Tendered", utils.FormatCurrency(payment.AmountTendered)},
		{"Change", utils.FormatCurrency(payment.ChangeDue)},
	}
	for _, row := range totals {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(97, 6, row.label, "T", 0, "R", false, 0, "")
		pdf.CellFormat(31, 6, row.value, "T", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
