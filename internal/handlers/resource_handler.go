package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MehulChauhan-07/placement-pro/internal/services"
	"github.com/MehulChauhan-07/placement-pro/internal/utils"
)

type ResourceHandler struct {
	BaseHandler
	resourceService services.ResourceService
}

func NewResourceHandler(resourceService services.ResourceService, logger utils.Logger) *ResourceHandler {
	return &ResourceHandler{
		BaseHandler:     NewBaseHandler(logger),
		resourceService: resourceService,
	}
}

// ListResources returns all resources, newest first. Public.
func (h *ResourceHandler) ListResources(c *gin.Context) {
	h.LogRequest(c, "listing resources")

	resources, err := h.resourceService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resources)
}

// CreateResource adds a prep resource. Admin only.
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	var req services.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "creating resource", "title", req.Title)

	resource, err := h.resourceService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resource)
}

// DeleteResource removes a resource. Admin only.
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "deleting resource", "resource_id", id)

	if err := h.resourceService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Resource deleted"})
}
