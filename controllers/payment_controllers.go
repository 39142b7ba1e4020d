package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-engine/kds"
	"github.com/yeremiapane/restaurant-engine/services"
	"github.com/yeremiapane/restaurant-engine/utils"
	"gorm.io/gorm"
)

type PaymentController struct {
	Payments *services.PaymentService
	Receipts *services.ReceiptService
}

func NewPaymentController(db *gorm.DB, publisher kds.Publisher, restaurantName string) *PaymentController {
	return &PaymentController{
		Payments: services.NewPaymentService(db, publisher),
		Receipts: services.NewReceiptService(db, restaurantName),
	}
}

// SettlePayment -> POST /orders/:order_id/payments, amount_tendered boleh string atau angka
func (pc *PaymentController) SettlePayment(c *gin.Context) {
	orderID, ok := parseID(c, "order_id")
	if !ok {
		return
	}
	var req struct {
		AmountTendered *decimal.Decimal `json:"amount_tendered"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.AmountTendered == nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("amount_tendered is required"))
		return
	}

	settlement, err := pc.Payments.Settle(c.Request.Context(), orderID, *req.AmountTendered)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment settled, change due "+utils.FormatCurrency(settlement.ChangeDue), settlement)
}

// GetReceipt -> PDF struk untuk order yang sudah dibayar
func (pc *PaymentController) GetReceipt(c *gin.Context) {
	orderID, ok := parseID(c, "order_id")
	if !ok {
		return
	}
	pdf, err := pc.Receipts.RenderReceipt(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=receipt-%d.pdf", orderID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
