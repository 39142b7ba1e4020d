package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-engine/services"
	"github.com/yeremiapane/restaurant-engine/utils"
	"gorm.io/gorm"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Reports: services.NewReportService(db)}
}

func (rc *ReportController) GetSummary(c *gin.Context) {
	summary, err := rc.Reports.Summary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Summary report", summary)
}
