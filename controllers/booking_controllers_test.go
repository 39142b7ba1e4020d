package controllers_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-engine/controllers"
	"github.com/yeremiapane/restaurant-engine/kds"
	"gorm.io/gorm"
)

type capturePublisher struct {
	mu       sync.Mutex
	messages []kds.Message
}

func (p *capturePublisher) Publish(_ context.Context, msg kds.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
}

func setupBookingRouter(db *gorm.DB, publisher kds.Publisher) *gin.Engine {
	router := newTestRouter()
	bookingCtrl := controllers.NewBookingController(db, testWindow, publisher)
	router.POST("/bookings", bookingCtrl.CreateBooking)
	return router
}

func TestCreateBooking(t *testing.T) {
	publisher := &capturePublisher{}
	router := setupBookingRouter(setupTestDB(t), publisher)

	w := performRequest(router, http.MethodPost, "/bookings", map[string]interface{}{
		"table_number": 2,
		"customer_id":  1,
		"time":         "2026-10-17T19:00:00Z",
		"party_size":   4,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var data struct {
		BookingID uint `json:"booking_id"`
	}
	env := decodeEnvelope(t, w, &data)
	assert.True(t, env.Status)
	assert.NotZero(t, data.BookingID)

	require.Len(t, publisher.messages, 1)
	assert.Equal(t, kds.EventBookingCreated, publisher.messages[0].Event)
}

func TestCreateBookingConflictReturns409(t *testing.T) {
	router := setupBookingRouter(setupTestDB(t), nil)

	first := map[string]interface{}{"table_number": 2, "customer_id": 1, "time": "2026-10-17T19:00:00Z", "party_size": 2}
	require.Equal(t, http.StatusCreated, performRequest(router, http.MethodPost, "/bookings", first).Code)

	// 45 menit kemudian masih di dalam window
	second := map[string]interface{}{"table_number": 2, "customer_id": 1, "time": "2026-10-17T19:45:00Z", "party_size": 2}
	w := performRequest(router, http.MethodPost, "/bookings", second)
	assert.Equal(t, http.StatusConflict, w.Code)
	env := decodeEnvelope(t, w, nil)
	assert.False(t, env.Status)
	assert.Contains(t, env.Message, "table 2")
}

func TestCreateBookingErrors(t *testing.T) {
	router := setupBookingRouter(setupTestDB(t), nil)

	tests := []struct {
		name string
		body interface{}
		code int
	}{
		{"malformed json", `{"table_number":`, http.StatusBadRequest},
		{"bad time", map[string]interface{}{"table_number": 1, "customer_id": 1, "time": "19:00", "party_size": 2}, http.StatusBadRequest},
		{"zero party", map[string]interface{}{"table_number": 1, "customer_id": 1, "time": "2026-10-17T19:00:00Z", "party_size": 0}, http.StatusBadRequest},
		{"over capacity", map[string]interface{}{"table_number": 1, "customer_id": 1, "time": "2026-10-17T19:00:00Z", "party_size": 3}, http.StatusBadRequest},
		{"unknown table", map[string]interface{}{"table_number": 42, "customer_id": 1, "time": "2026-10-17T19:00:00Z", "party_size": 2}, http.StatusNotFound},
		{"table zero", map[string]interface{}{"table_number": 0, "customer_id": 1, "time": "2026-10-17T19:00:00Z", "party_size": 2}, http.StatusNotFound},
		{"unknown customer", map[string]interface{}{"table_number": 1, "customer_id": 9, "time": "2026-10-17T19:00:00Z", "party_size": 2}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, "/bookings", tt.body)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}
