package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MehulChauhan-07/placement-pro/internal/services"
	"github.com/MehulChauhan-07/placement-pro/internal/utils"
)

type DriveHandler struct {
	BaseHandler
	driveService services.DriveService
}

func NewDriveHandler(driveService services.DriveService, logger utils.Logger) *DriveHandler {
	return &DriveHandler{
		BaseHandler:  NewBaseHandler(logger),
		driveService: driveService,
	}
}

// ListDrives returns active drives, newest first. Public.
func (h *DriveHandler) ListDrives(c *gin.Context) {
	h.LogRequest(c, "listing drives")

	drives, err := h.driveService.ListActive(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, drives)
}

// GetDrive returns one drive by id. Public.
func (h *DriveHandler) GetDrive(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "getting drive", "drive_id", id)

	drive, err := h.driveService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, drive)
}

// CreateDrive creates a drive. Admin only.
func (h *DriveHandler) CreateDrive(c *gin.Context) {
	var req services.CreateDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "creating drive", "company", req.CompanyName)

	drive, err := h.driveService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, drive)
}

// UpdateDrive replaces a drive's authored fields. Admin only.
func (h *DriveHandler) UpdateDrive(c *gin.Context) {
	id := c.Param("id")

	var req services.CreateDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "updating drive", "drive_id", id)

	if err := h.driveService.Update(c.Request.Context(), id, &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Drive updated successfully"})
}

// DeleteDrive removes a drive. Admin only.
func (h *DriveHandler) DeleteDrive(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "deleting drive", "drive_id", id)

	if err := h.driveService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Drive deleted successfully"})
}
