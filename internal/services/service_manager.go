package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/MehulChauhan-07/placement-pro/internal/events"
	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
	"github.com/MehulChauhan-07/placement-pro/internal/validator"
)

// ServiceManagerConfig carries the cross-cutting dependencies services
// share.
type ServiceManagerConfig struct {
	Repo      repositories.Repository
	Identity  IdentityExchanger
	Logger    *slog.Logger
	Validator *validator.Validator
	Publisher events.EventPublisher
}

type serviceManager struct {
	config ServiceManagerConfig

	authService         AuthService
	profileService      ProfileService
	driveService        DriveService
	applicationService  ApplicationService
	testService         TestService
	resourceService     ResourceService
	announcementService AnnouncementService
	statsService        StatsService
	reportService       ReportService

	initialized bool
	mu          sync.RWMutex
}

func NewServiceManager(config ServiceManagerConfig) ServiceManager {
	return &serviceManager{config: config}
}

func (m *serviceManager) Initialize(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if m.config.Repo == nil {
		return fmt.Errorf("repository is required")
	}
	if m.config.Identity == nil {
		return fmt.Errorf("identity client is required")
	}

	repo := m.config.Repo
	logger := m.config.Logger
	v := m.config.Validator

	m.authService = NewAuthService(repo, m.config.Identity, logger)
	m.profileService = NewProfileService(repo, logger, v)
	m.driveService = NewDriveService(repo, logger, v)
	m.applicationService = NewApplicationService(repo, logger, v, m.config.Publisher)
	m.testService = NewTestService(repo, logger, v)
	m.resourceService = NewResourceService(repo, logger, v)
	m.announcementService = NewAnnouncementService(repo, logger, v, m.config.Publisher)
	m.statsService = NewStatsService(repo, logger)
	m.reportService = NewReportService(repo, m.applicationService, logger)

	m.initialized = true
	return nil
}

func (m *serviceManager) Shutdown(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config.Publisher != nil {
		if err := m.config.Publisher.Close(); err != nil {
			return fmt.Errorf("failed to close event publisher: %w", err)
		}
	}

	m.initialized = false
	return nil
}

func (m *serviceManager) Auth() AuthService                 { return m.authService }
func (m *serviceManager) Profile() ProfileService           { return m.profileService }
func (m *serviceManager) Drive() DriveService               { return m.driveService }
func (m *serviceManager) Application() ApplicationService   { return m.applicationService }
func (m *serviceManager) Test() TestService                 { return m.testService }
func (m *serviceManager) Resource() ResourceService         { return m.resourceService }
func (m *serviceManager) Announcement() AnnouncementService { return m.announcementService }
func (m *serviceManager) Stats() StatsService               { return m.statsService }
func (m *serviceManager) Report() ReportService             { return m.reportService }
