package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-engine/services"
	"github.com/yeremiapane/restaurant-engine/utils"
	"gorm.io/gorm"
)

type TableController struct {
	Catalog      *services.CatalogService
	Availability *services.AvailabilityService
}

func NewTableController(db *gorm.DB, window time.Duration) *TableController {
	return &TableController{
		Catalog:      services.NewCatalogService(db),
		Availability: services.NewAvailabilityService(db, window),
	}
}

func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Catalog.ListTables(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table list", tables)
}

func (tc *TableController) GetTableByNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("table_number"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid table_number"))
		return
	}
	table, err := tc.Catalog.GetTable(c.Request.Context(), number)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// GetAvailableTables -> GET /tables/available?party_size=4&time=2026-10-17T19:00:00Z
func (tc *TableController) GetAvailableTables(c *gin.Context) {
	partySize, err := strconv.Atoi(c.Query("party_size"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("party_size must be a number"))
		return
	}
	at, ok := queryTime(c)
	if !ok {
		return
	}

	tables, err := tc.Availability.FindAvailableTables(c.Request.Context(), partySize, at)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Available tables", tables)
}

// GetTableStatus -> status semua meja di sekitar waktu tertentu (default: sekarang)
func (tc *TableController) GetTableStatus(c *gin.Context) {
	at := time.Now()
	if c.Query("time") != "" {
		var ok bool
		if at, ok = queryTime(c); !ok {
			return
		}
	}

	board, err := tc.Availability.TableStatus(c.Request.Context(), at)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table status", board)
}

func queryTime(c *gin.Context) (time.Time, bool) {
	at, err := time.Parse(time.RFC3339, c.Query("time"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("time must be RFC3339, e.g. 2026-10-17T19:00:00Z"))
		return time.Time{}, false
	}
	return at, true
}
