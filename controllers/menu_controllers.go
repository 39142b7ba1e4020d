package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-engine/services"
	"github.com/yeremiapane/restaurant-engine/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	Catalog *services.CatalogService
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{Catalog: services.NewCatalogService(db)}
}

// GetAllMenus -> daftar menu, termurah dulu
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	menus, err := mc.Catalog.ListMenu(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu list", menus)
}

func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id, ok := parseID(c, "menu_id")
	if !ok {
		return
	}
	menu, err := mc.Catalog.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", menu)
}
