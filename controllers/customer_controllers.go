package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-engine/models"
	"github.com/yeremiapane/restaurant-engine/utils"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// CreateCustomer -> registrasi pelanggan baru
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("name must not be blank"))
		return
	}

	customer := models.Customer{Name: name}
	if err := cc.DB.WithContext(c.Request.Context()).Create(&customer).Error; err != nil {
		utils.ErrorLogger.Errorf("Failed to create customer: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, fmt.Errorf("failed to create customer"))
		return
	}

	utils.InfoLogger.Printf("Customer registered: %d (%s)", customer.ID, customer.Name)
	utils.RespondJSON(c, http.StatusCreated, "Customer registered", customer)
}
