package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
	"github.com/MehulChauhan-07/placement-pro/internal/validator"
)

type profileService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewProfileService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) ProfileService {
	return &profileService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *profileService) Get(ctx context.Context, userID string) (*ProfileResponse, error) {
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	profile, err := s.repo.Profile().GetByUserID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return &ProfileResponse{User: user, Profile: profile}, nil
}

// Update applies a partial update: only fields present in the request
// change; everything else keeps its stored value.
func (s *profileService) Update(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.StudentProfile, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	profile, err := s.repo.Profile().GetByUserID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if req.Phone != nil {
		profile.Phone = req.Phone
	}
	if req.College != nil {
		profile.College = req.College
	}
	if req.Degree != nil {
		profile.Degree = req.Degree
	}
	if req.GraduationYear != nil {
		profile.GraduationYear = req.GraduationYear
	}
	if req.Skills != nil {
		profile.Skills = req.Skills
	}
	if req.CGPA != nil {
		profile.CGPA = req.CGPA
	}
	if req.ResumeURL != nil {
		profile.ResumeURL = req.ResumeURL
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := s.repo.Profile().Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info("profile updated", "user_id", userID)
	return profile, nil
}
