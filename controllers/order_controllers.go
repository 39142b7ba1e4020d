package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-engine/kds"
	"github.com/yeremiapane/restaurant-engine/services"
	"github.com/yeremiapane/restaurant-engine/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB, publisher kds.Publisher) *OrderController {
	return &OrderController{Orders: services.NewOrderService(db, publisher)}
}

// CreateOrder -> POST /orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		CustomerID uint `json:"customer_id" binding:"required"`
		Items      []struct {
			MenuItemID uint `json:"menu_item_id"`
			Quantity   int  `json:"quantity"`
		} `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	lines := make([]services.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, services.LineItem{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
	}

	placed, err := oc.Orders.PlaceOrder(c.Request.Context(), req.CustomerID, lines)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order placed", gin.H{
		"order_id":     placed.OrderID,
		"total_amount": placed.TotalAmount,
		"status":       services.OrderStatusUnpaid,
	})
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}
	order, err := oc.Orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}
