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

type resourceService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewResourceService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) ResourceService {
	return &resourceService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *resourceService) Create(ctx context.Context, req *CreateResourceRequest) (*models.Resource, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	resource := &models.Resource{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Type:        models.ResourceType(req.Type),
		URL:         req.URL,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Resource().Create(ctx, resource); err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	s.logger.Info("resource created", "resource_id", resource.ID, "title", resource.Title)
	return resource, nil
}

func (s *resourceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Resource().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrResourceNotFound
		}
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	s.logger.Info("resource deleted", "resource_id", id)
	return nil
}

func (s *resourceService) List(ctx context.Context) ([]*models.Resource, error) {
	resources, err := s.repo.Resource().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	return resources, nil
}
