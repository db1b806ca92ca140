package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MehulChauhan-07/placement-pro/internal/services"
	"github.com/MehulChauhan-07/placement-pro/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler struct {
	BaseHandler
	statsService  services.StatsService
	reportService services.ReportService
}

func NewAdminHandler(statsService services.StatsService, reportService services.ReportService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:   NewBaseHandler(logger),
		statsService:  statsService,
		reportService: reportService,
	}
}

// GetStats returns placement totals and the application status breakdown.
func (h *AdminHandler) GetStats(c *gin.Context) {
	h.LogRequest(c, "getting placement stats")

	stats, err := h.statsService.GetPlacementStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ExportDriveApplications streams a drive's applications as an xlsx download.
func (h *AdminHandler) ExportDriveApplications(c *gin.Context) {
	driveID := c.Param("id")
	h.LogRequest(c, "exporting drive applications", "drive_id", driveID)

	data, filename, err := h.reportService.ExportDriveApplications(c.Request.Context(), driveID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
