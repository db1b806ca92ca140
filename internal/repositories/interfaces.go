package repositories

import (
	"context"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type DriveFilters struct {
	Status *models.DriveStatus
	Limit  int
}

// ===== STATISTICS STRUCTS =====

type StatusCount struct {
	Status models.ApplicationStatus `json:"status"`
	Count  int64                    `json:"count"`
}

type PlacementStats struct {
	TotalStudents     int64         `json:"total_students"`
	TotalDrives       int64         `json:"total_drives"`
	TotalApplications int64         `json:"total_applications"`
	PlacedStudents    int64         `json:"placed_students"`
	StatusBreakdown   []StatusCount `json:"status_breakdown"`
}

// ===== REPOSITORY INTERFACES =====

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.UserSession) error
	GetByToken(ctx context.Context, token string) (*models.UserSession, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.StudentProfile) error
	Update(ctx context.Context, profile *models.StudentProfile) error
	GetByUserID(ctx context.Context, userID string) (*models.StudentProfile, error)
}

type DriveRepository interface {
	Create(ctx context.Context, drive *models.PlacementDrive) error
	Update(ctx context.Context, drive *models.PlacementDrive) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.PlacementDrive, error)
	List(ctx context.Context, filters DriveFilters) ([]*models.PlacementDrive, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	GetByDriveAndUser(ctx context.Context, driveID, userID string) (*models.Application, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Application, error)
	ListByDrive(ctx context.Context, driveID string) ([]*models.Application, error)
}

type MockTestRepository interface {
	Create(ctx context.Context, test *models.MockTest) error
	GetByID(ctx context.Context, id string) (*models.MockTest, error)
	ListMetadata(ctx context.Context) ([]*models.MockTest, error)
}

type AttemptRepository interface {
	Create(ctx context.Context, attempt *models.TestAttempt) error
	ListByUser(ctx context.Context, userID string) ([]*models.TestAttempt, error)
}

type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.Resource, error)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	ListRecent(ctx context.Context, limit int) ([]*models.Announcement, error)
}

type StatsRepository interface {
	GetPlacementStats(ctx context.Context) (*PlacementStats, error)
}
