package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MehulChauhan-07/placement-pro/internal/services"
	"github.com/MehulChauhan-07/placement-pro/internal/utils"
)

type ApplicationHandler struct {
	BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(applicationService services.ApplicationService, logger utils.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        NewBaseHandler(logger),
		applicationService: applicationService,
	}
}

// Apply submits the caller's application to a drive, given as the drive_id
// query parameter. Duplicate applications are rejected.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authenticated"})
		return
	}

	driveID := c.Query("drive_id")
	if driveID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "drive_id is required"})
		return
	}

	h.LogRequest(c, "applying to drive", "drive_id", driveID, "user_id", userID)

	application, err := h.applicationService.Apply(c.Request.Context(), driveID, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// ListMine returns the caller's applications enriched with drive data.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authenticated"})
		return
	}

	h.LogRequest(c, "listing my applications", "user_id", userID)

	applications, err := h.applicationService.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// ListForDrive returns a drive's applications enriched with applicant user
// and profile. Admin only.
func (h *ApplicationHandler) ListForDrive(c *gin.Context) {
	driveID := c.Param("id")
	h.LogRequest(c, "listing drive applications", "drive_id", driveID)

	applications, err := h.applicationService.ListForDrive(c.Request.Context(), driveID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// UpdateStatus moves an application to a new status. Admin only.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	applicationID := c.Param("id")

	var req services.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "updating application status", "application_id", applicationID, "status", req.Status)

	if err := h.applicationService.UpdateStatus(c.Request.Context(), applicationID, &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Status updated successfully"})
}
