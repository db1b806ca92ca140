package services

import (
	"context"
	"time"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
	"github.com/MehulChauhan-07/placement-pro/internal/repositories/identity"
	"github.com/MehulChauhan-07/placement-pro/internal/validator"
)

// ===== REQUEST DTOs =====

// Validation rules live with the DTO definitions in the validator package.
type UpdateProfileRequest = validator.ProfileUpdateRequest
type CreateDriveRequest = validator.DriveCreateRequest
type UpdateApplicationStatusRequest = validator.ApplicationStatusUpdateRequest
type SubmitTestRequest = validator.TestSubmissionRequest
type CreateResourceRequest = validator.ResourceCreateRequest
type CreateAnnouncementRequest = validator.AnnouncementCreateRequest

// ===== RESPONSE DTOs =====

type SessionResult struct {
	User         *models.User `json:"user"`
	SessionToken string       `json:"session_token"`
	ExpiresAt    time.Time    `json:"-"`
}

type ProfileResponse struct {
	User    *models.User           `json:"user"`
	Profile *models.StudentProfile `json:"profile"`
}

type ApplicationWithDrive struct {
	*models.Application
	Drive *models.PlacementDrive `json:"drive"`
}

type ApplicationWithApplicant struct {
	*models.Application
	User    *models.User           `json:"user"`
	Profile *models.StudentProfile `json:"profile"`
}

type TestResult struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

type AttemptWithTest struct {
	*models.TestAttempt
	Test *models.MockTest `json:"test"`
}

// ===== SERVICE INTERFACES =====

// IdentityExchanger is implemented by identity.Client; kept as an interface
// so tests can stub the external provider.
type IdentityExchanger interface {
	ExchangeSession(ctx context.Context, sessionID string) (*identity.SessionData, error)
}

type AuthService interface {
	// CreateSession exchanges an external session id for identity data,
	// upserts the user (creating a profile on first sight), and persists a
	// session valid for models.SessionTTL.
	CreateSession(ctx context.Context, sessionID string) (*SessionResult, error)
	// ResolveUser returns the user owning a session token, rejecting
	// absent and expired sessions.
	ResolveUser(ctx context.Context, token string) (*models.User, error)
	// Logout deletes the session; idempotent.
	Logout(ctx context.Context, token string) error
	// CleanupExpiredSessions removes sessions past their expiry and
	// reports how many were deleted. Run opportunistically at startup.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*ProfileResponse, error)
	Update(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.StudentProfile, error)
}

type DriveService interface {
	Create(ctx context.Context, req *CreateDriveRequest) (*models.PlacementDrive, error)
	Update(ctx context.Context, id string, req *CreateDriveRequest) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.PlacementDrive, error)
	ListActive(ctx context.Context) ([]*models.PlacementDrive, error)
}

type ApplicationService interface {
	Apply(ctx context.Context, driveID, userID string) (*models.Application, error)
	ListMine(ctx context.Context, userID string) ([]*ApplicationWithDrive, error)
	ListForDrive(ctx context.Context, driveID string) ([]*ApplicationWithApplicant, error)
	UpdateStatus(ctx context.Context, applicationID string, req *UpdateApplicationStatusRequest) error
}

type TestService interface {
	List(ctx context.Context) ([]*models.MockTest, error)
	// GetForTaking returns the test with correct answers stripped.
	GetForTaking(ctx context.Context, id string) (*models.MockTest, error)
	Submit(ctx context.Context, userID string, req *SubmitTestRequest) (*TestResult, error)
	ListMyAttempts(ctx context.Context, userID string) ([]*AttemptWithTest, error)
}

type ResourceService interface {
	Create(ctx context.Context, req *CreateResourceRequest) (*models.Resource, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.Resource, error)
}

type AnnouncementService interface {
	Create(ctx context.Context, req *CreateAnnouncementRequest) (*models.Announcement, error)
	ListRecent(ctx context.Context) ([]*models.Announcement, error)
}

type StatsService interface {
	GetPlacementStats(ctx context.Context) (*repositories.PlacementStats, error)
}

type ReportService interface {
	// ExportDriveApplications renders a drive's applications as an xlsx
	// workbook and returns the file contents with a suggested filename.
	ExportDriveApplications(ctx context.Context, driveID string) ([]byte, string, error)
}

// ServiceManager wires all services together.
type ServiceManager interface {
	Auth() AuthService
	Profile() ProfileService
	Drive() DriveService
	Application() ApplicationService
	Test() TestService
	Resource() ResourceService
	Announcement() AnnouncementService
	Stats() StatsService
	Report() ReportService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
