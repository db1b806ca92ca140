package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
	"github.com/MehulChauhan-07/placement-pro/internal/validator"
)

type driveService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewDriveService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) DriveService {
	return &driveService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *driveService) Create(ctx context.Context, req *CreateDriveRequest) (*models.PlacementDrive, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	drive := driveFromRequest(req)
	drive.ID = uuid.New().String()
	drive.Status = models.DriveActive
	drive.CreatedAt = time.Now().UTC()

	if err := s.repo.Drive().Create(ctx, drive); err != nil {
		return nil, fmt.Errorf("failed to create drive: %w", err)
	}

	s.logger.Info("drive created", "drive_id", drive.ID, "company", drive.CompanyName)
	return drive, nil
}

func (s *driveService) Update(ctx context.Context, id string, req *CreateDriveRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return err
	}

	drive := driveFromRequest(req)
	drive.ID = id

	if err := s.repo.Drive().Update(ctx, drive); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrDriveNotFound
		}
		return fmt.Errorf("failed to update drive: %w", err)
	}

	s.logger.Info("drive updated", "drive_id", id)
	return nil
}

func (s *driveService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Drive().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrDriveNotFound
		}
		return fmt.Errorf("failed to delete drive: %w", err)
	}

	s.logger.Info("drive deleted", "drive_id", id)
	return nil
}

func (s *driveService) GetByID(ctx context.Context, id string) (*models.PlacementDrive, error) {
	drive, err := s.repo.Drive().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrDriveNotFound
		}
		return nil, fmt.Errorf("failed to load drive: %w", err)
	}
	return drive, nil
}

func (s *driveService) ListActive(ctx context.Context) ([]*models.PlacementDrive, error) {
	status := models.DriveActive
	drives, err := s.repo.Drive().List(ctx, repositories.DriveFilters{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("failed to list drives: %w", err)
	}
	return drives, nil
}

func driveFromRequest(req *CreateDriveRequest) *models.PlacementDrive {
	skills := req.SkillsRequired
	if skills == nil {
		skills = []string{}
	}
	steps := req.ProcessSteps
	if steps == nil {
		steps = []string{}
	}

	return &models.PlacementDrive{
		CompanyName:         req.CompanyName,
		CompanyLogo:         req.CompanyLogo,
		Role:                req.Role,
		Description:         req.Description,
		Eligibility:         req.Eligibility,
		CTC:                 req.CTC,
		Location:            req.Location,
		ApplicationDeadline: req.ApplicationDeadline,
		InterviewDate:       req.InterviewDate,
		SkillsRequired:      skills,
		ProcessSteps:        steps,
		Status:              models.DriveActive,
	}
}
