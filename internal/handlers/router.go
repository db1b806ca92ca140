package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/services"
	"github.com/MehulChauhan-07/placement-pro/internal/utils"
)

// HealthChecker reports backing-store connectivity for the health endpoint.
// The repository layer satisfies it.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type HandlerManager struct {
	authHandler         *AuthHandler
	profileHandler      *ProfileHandler
	driveHandler        *DriveHandler
	applicationHandler  *ApplicationHandler
	testHandler         *TestHandler
	resourceHandler     *ResourceHandler
	announcementHandler *AnnouncementHandler
	adminHandler        *AdminHandler
	authMiddleware      *SessionAuthMiddleware
	repo                HealthChecker
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	repo HealthChecker,
	logger utils.Logger,
	secureCookies bool,
) *HandlerManager {
	authMiddleware := NewSessionAuthMiddleware(serviceManager.Auth())

	return &HandlerManager{
		repo:                repo,
		authHandler:         NewAuthHandler(serviceManager.Auth(), authMiddleware, logger, secureCookies),
		profileHandler:      NewProfileHandler(serviceManager.Profile(), logger),
		driveHandler:        NewDriveHandler(serviceManager.Drive(), logger),
		applicationHandler:  NewApplicationHandler(serviceManager.Application(), logger),
		testHandler:         NewTestHandler(serviceManager.Test(), logger),
		resourceHandler:     NewResourceHandler(serviceManager.Resource(), logger),
		announcementHandler: NewAnnouncementHandler(serviceManager.Announcement(), logger),
		adminHandler:        NewAdminHandler(serviceManager.Stats(), serviceManager.Report(), logger),
		authMiddleware:      authMiddleware,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	adminOnly := hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin)

	api := router.Group("/api")
	{
		// Session endpoints; creating a session is the one unauthenticated
		// write in the system.
		auth := api.Group("/auth")
		{
			auth.POST("/session", hm.authHandler.CreateSession)
			auth.GET("/me", hm.authMiddleware.AuthMiddleware(), hm.authHandler.Me)
			auth.POST("/logout", hm.authMiddleware.AuthMiddleware(), hm.authHandler.Logout)
		}

		// Public read endpoints
		api.GET("/drives", hm.driveHandler.ListDrives)
		api.GET("/drives/:id", hm.driveHandler.GetDrive)
		api.GET("/tests", hm.testHandler.ListTests)
		api.GET("/resources", hm.resourceHandler.ListResources)
		api.GET("/announcements", hm.announcementHandler.ListAnnouncements)

		// Authenticated endpoints
		authed := api.Group("")
		authed.Use(hm.authMiddleware.AuthMiddleware())
		{
			authed.GET("/profile", hm.profileHandler.GetProfile)
			authed.PUT("/profile", hm.profileHandler.UpdateProfile)

			authed.POST("/applications", hm.applicationHandler.Apply)
			authed.GET("/applications/my", hm.applicationHandler.ListMine)

			authed.GET("/tests/:id", hm.testHandler.GetTest)
			authed.POST("/tests/submit", hm.testHandler.SubmitTest)
			authed.GET("/tests/attempts/my", hm.testHandler.ListMyAttempts)

			// Admin endpoints
			authed.POST("/drives", adminOnly, hm.driveHandler.CreateDrive)
			authed.PUT("/drives/:id", adminOnly, hm.driveHandler.UpdateDrive)
			authed.DELETE("/drives/:id", adminOnly, hm.driveHandler.DeleteDrive)

			authed.GET("/applications/drive/:id", adminOnly, hm.applicationHandler.ListForDrive)
			authed.PUT("/applications/:id/status", adminOnly, hm.applicationHandler.UpdateStatus)

			authed.POST("/resources", adminOnly, hm.resourceHandler.CreateResource)
			authed.DELETE("/resources/:id", adminOnly, hm.resourceHandler.DeleteResource)

			authed.POST("/announcements", adminOnly, hm.announcementHandler.CreateAnnouncement)

			admin := authed.Group("/admin")
			admin.Use(adminOnly)
			{
				admin.GET("/stats", hm.adminHandler.GetStats)
				admin.GET("/drives/:id/applications/export", hm.adminHandler.ExportDriveApplications)
			}
		}
	}

	// Health check endpoint
	router.GET("/health", hm.healthCheck)
}

// healthCheck reports the database connection state alongside the service
// identity.
func (hm *HandlerManager) healthCheck(c *gin.Context) {
	if hm.repo != nil {
		if err := hm.repo.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"service": "placement-service",
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "placement-service",
	})
}
