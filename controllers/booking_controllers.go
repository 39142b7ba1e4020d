package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-engine/kds"
	"github.com/yeremiapane/restaurant-engine/services"
	"github.com/yeremiapane/restaurant-engine/utils"
	"gorm.io/gorm"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(db *gorm.DB, window time.Duration, publisher kds.Publisher) *BookingController {
	return &BookingController{Bookings: services.NewBookingService(db, window, publisher)}
}

// CreateBooking -> POST /bookings
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req struct {
		TableNumber int       `json:"table_number"`
		CustomerID  uint      `json:"customer_id" binding:"required"`
		Time        time.Time `json:"time" binding:"required"`
		PartySize   int       `json:"party_size"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	id, err := bc.Bookings.CommitBooking(c.Request.Context(), services.BookingRequest{
		TableNumber:   req.TableNumber,
		CustomerID:    req.CustomerID,
		RequestedTime: req.Time,
		PartySize:     req.PartySize,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Booking confirmed", gin.H{
		"booking_id":   id,
		"table_number": req.TableNumber,
		"time":         req.Time.UTC().Truncate(time.Second),
		"party_size":   req.PartySize,
	})
}
