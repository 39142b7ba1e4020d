package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-engine/models"
	"github.com/yeremiapane/restaurant-engine/utils"
	"gorm.io/gorm"
)

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

func (fc *FeedbackController) CreateFeedback(c *gin.Context) {
	var req struct {
		CustomerID uint   `json:"customer_id" binding:"required"`
		Rating     int    `json:"rating" binding:"required,min=1,max=5"`
		Comments   string `json:"comments"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	db := fc.DB.WithContext(c.Request.Context())

	// Cek customer
	var customer models.Customer
	if err := db.First(&customer, req.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, fmt.Errorf("customer %d not found", req.CustomerID))
			return
		}
		utils.ErrorLogger.Errorf("Failed to load customer %d: %v", req.CustomerID, err)
		utils.RespondError(c, http.StatusInternalServerError, fmt.Errorf("failed to record feedback"))
		return
	}

	feedback := models.Feedback{
		CustomerID: customer.ID,
		Rating:     req.Rating,
		Comments:   req.Comments,
	}
	if err := db.Create(&feedback).Error; err != nil {
		utils.ErrorLogger.Errorf("Failed to record feedback: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, fmt.Errorf("failed to record feedback"))
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Thank you for your feedback", feedback)
}
