package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MehulChauhan-07/placement-pro/internal/services"
	"github.com/MehulChauhan-07/placement-pro/internal/utils"
)

type AnnouncementHandler struct {
	BaseHandler
	announcementService services.AnnouncementService
}

func NewAnnouncementHandler(announcementService services.AnnouncementService, logger utils.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		BaseHandler:         NewBaseHandler(logger),
		announcementService: announcementService,
	}
}

// ListAnnouncements returns the most recent announcements. Public.
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	h.LogRequest(c, "listing announcements")

	announcements, err := h.announcementService.ListRecent(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, announcements)
}

// CreateAnnouncement posts a new announcement. Admin only.
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req services.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "creating announcement", "title", req.Title)

	announcement, err := h.announcementService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, announcement)
}
