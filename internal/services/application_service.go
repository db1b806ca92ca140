package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MehulChauhan-07/placement-pro/internal/events"
	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
	"github.com/MehulChauhan-07/placement-pro/internal/validator"
)

type applicationService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewApplicationService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) ApplicationService {
	return &applicationService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

func (s *applicationService) Apply(ctx context.Context, driveID, userID string) (*models.Application, error) {
	if _, err := s.repo.Drive().GetByID(ctx, driveID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrDriveNotFound
		}
		return nil, fmt.Errorf("failed to load drive: %w", err)
	}

	existing, err := s.repo.Application().GetByDriveAndUser(ctx, driveID, userID)
	if err != nil && !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	now := time.Now().UTC()
	application := &models.Application{
		ID:        uuid.New().String(),
		DriveID:   driveID,
		UserID:    userID,
		Status:    models.ApplicationApplied,
		AppliedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Application().Create(ctx, application); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	s.logger.Info("application submitted", "application_id", application.ID, "drive_id", driveID, "user_id", userID)
	return application, nil
}

func (s *applicationService) ListMine(ctx context.Context, userID string) ([]*ApplicationWithDrive, error) {
	applications, err := s.repo.Application().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	out := make([]*ApplicationWithDrive, 0, len(applications))
	for _, app := range applications {
		enriched := &ApplicationWithDrive{Application: app}
		drive, err := s.repo.Drive().GetByID(ctx, app.DriveID)
		if err == nil {
			enriched.Drive = drive
		} else if !repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to load drive for application: %w", err)
		}
		out = append(out, enriched)
	}
	return out, nil
}

func (s *applicationService) ListForDrive(ctx context.Context, driveID string) ([]*ApplicationWithApplicant, error) {
	applications, err := s.repo.Application().ListByDrive(ctx, driveID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	out := make([]*ApplicationWithApplicant, 0, len(applications))
	for _, app := range applications {
		enriched := &ApplicationWithApplicant{Application: app}

		if user, err := s.repo.User().GetByID(ctx, app.UserID); err == nil {
			enriched.User = user
		} else if !repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to load applicant: %w", err)
		}

		if profile, err := s.repo.Profile().GetByUserID(ctx, app.UserID); err == nil {
			enriched.Profile = profile
		} else if !repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to load applicant profile: %w", err)
		}

		out = append(out, enriched)
	}
	return out, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, applicationID string, req *UpdateApplicationStatusRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return err
	}

	status := models.ApplicationStatus(req.Status)
	if err := s.repo.Application().UpdateStatus(ctx, applicationID, status); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrApplicationNotFound
		}
		return fmt.Errorf("failed to update application status: %w", err)
	}

	s.logger.Info("application status updated", "application_id", applicationID, "status", status)
	s.publishStatusChanged(ctx, applicationID, status)
	return nil
}

func (s *applicationService) publishStatusChanged(ctx context.Context, applicationID string, status models.ApplicationStatus) {
	if s.publisher == nil {
		return
	}

	event := events.NewEvent(events.EventApplicationStatusChanged, map[string]interface{}{
		"application_id": applicationID,
		"status":         status,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		// Event delivery is best effort; the status change already landed.
		s.logger.Error("failed to publish status change event", "application_id", applicationID, "error", err)
	}
}
