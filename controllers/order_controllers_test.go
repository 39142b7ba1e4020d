package controllers_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-engine/controllers"
	"github.com/yeremiapane/restaurant-engine/models"
	"github.com/yeremiapane/restaurant-engine/services"
	"gorm.io/gorm"
)

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	router := newTestRouter()
	orderCtrl := controllers.NewOrderController(db, nil)
	paymentCtrl := controllers.NewPaymentController(db, nil, "Test Kitchen")
	router.POST("/orders", orderCtrl.CreateOrder)
	router.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	router.POST("/orders/:order_id/payments", paymentCtrl.SettlePayment)
	router.GET("/orders/:order_id/receipt", paymentCtrl.GetReceipt)
	return router
}

func createTestOrder(t *testing.T, router *gin.Engine) uint {
	t.Helper()
	w := performRequest(router, http.MethodPost, "/orders", map[string]interface{}{
		"customer_id": 1,
		"items": []map[string]interface{}{
			{"menu_item_id": 1, "quantity": 2},
			{"menu_item_id": 2, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var data struct {
		OrderID     uint            `json:"order_id"`
		TotalAmount decimal.Decimal `json:"total_amount"`
		Status      string          `json:"status"`
	}
	decodeEnvelope(t, w, &data)
	assert.True(t, decimal.RequireFromString("285.50").Equal(data.TotalAmount))
	assert.Equal(t, services.OrderStatusUnpaid, data.Status)
	return data.OrderID
}

func TestCreateAndGetOrder(t *testing.T) {
	router := setupOrderRouter(setupTestDB(t))
	orderID := createTestOrder(t, router)

	w := performRequest(router, http.MethodGet, "/orders/"+uintString(orderID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	decodeEnvelope(t, w, &order)
	assert.False(t, order.Paid)
	require.Len(t, order.OrderItems, 2)
	assert.Equal(t, "Thali", order.OrderItems[0].MenuItem.Name)
}

func TestCreateOrderErrors(t *testing.T) {
	router := setupOrderRouter(setupTestDB(t))

	tests := []struct {
		name string
		body interface{}
		code int
	}{
		{"no items", map[string]interface{}{"customer_id": 1, "items": []interface{}{}}, http.StatusBadRequest},
		{"zero quantity", map[string]interface{}{"customer_id": 1, "items": []map[string]interface{}{{"menu_item_id": 1, "quantity": 0}}}, http.StatusBadRequest},
		{"unknown menu item", map[string]interface{}{"customer_id": 1, "items": []map[string]interface{}{{"menu_item_id": 77, "quantity": 1}}}, http.StatusNotFound},
		{"unknown customer", map[string]interface{}{"customer_id": 5, "items": []map[string]interface{}{{"menu_item_id": 1, "quantity": 1}}}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, performRequest(router, http.MethodPost, "/orders", tt.body).Code)
		})
	}

	assert.Equal(t, http.StatusNotFound, performRequest(router, http.MethodGet, "/orders/123", nil).Code)
	assert.Equal(t, http.StatusBadRequest, performRequest(router, http.MethodGet, "/orders/x", nil).Code)
}

func TestSettlePaymentFlow(t *testing.T) {
	router := setupOrderRouter(setupTestDB(t))
	orderID := createTestOrder(t, router)
	paymentsPath := "/orders/" + uintString(orderID) + "/payments"

	// Receipt belum tersedia sebelum dibayar
	assert.Equal(t, http.StatusBadRequest, performRequest(router, http.MethodGet, "/orders/"+uintString(orderID)+"/receipt", nil).Code)

	w := performRequest(router, http.MethodPost, paymentsPath, `{"amount_tendered": 280}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = performRequest(router, http.MethodPost, paymentsPath, `{"amount_tendered": "300.00"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var settlement services.Settlement
	env := decodeEnvelope(t, w, &settlement)
	assert.True(t, decimal.RequireFromString("14.50").Equal(settlement.ChangeDue))
	assert.Equal(t, services.OrderStatusPaid, settlement.Status)
	assert.Contains(t, env.Message, "14.50")

	w = performRequest(router, http.MethodPost, paymentsPath, `{"amount_tendered": 300}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = performRequest(router, http.MethodGet, "/orders/"+uintString(orderID)+"/receipt", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestSettlePaymentValidation(t *testing.T) {
	router := setupOrderRouter(setupTestDB(t))
	orderID := createTestOrder(t, router)
	paymentsPath := "/orders/" + uintString(orderID) + "/payments"

	assert.Equal(t, http.StatusBadRequest, performRequest(router, http.MethodPost, paymentsPath, `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, performRequest(router, http.MethodPost, paymentsPath, `{"amount_tendered": "abc"}`).Code)
	assert.Equal(t, http.StatusBadRequest, performRequest(router, http.MethodPost, paymentsPath, `{"amount_tendered": -5}`).Code)
	assert.Equal(t, http.StatusBadRequest, performRequest(router, http.MethodPost, paymentsPath, `{"amount_tendered": "285.501"}`).Code)
	assert.Equal(t, http.StatusNotFound, performRequest(router, http.MethodPost, "/orders/999/payments", `{"amount_tendered": 10}`).Code)
}
