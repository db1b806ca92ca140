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

// recentAnnouncementLimit caps the public announcements feed.
const recentAnnouncementLimit = 10

type announcementService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewAnnouncementService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) AnnouncementService {
	return &announcementService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

func (s *announcementService) Create(ctx context.Context, req *CreateAnnouncementRequest) (*models.Announcement, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	priority := models.AnnouncementPriority(req.Priority)
	if priority == "" {
		priority = models.PriorityNormal
	}

	announcement := &models.Announcement{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		Priority:  priority,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Announcement().Create(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	s.logger.Info("announcement created", "announcement_id", announcement.ID, "priority", priority)

	if s.publisher != nil {
		event := events.NewEvent(events.EventAnnouncementCreated, map[string]interface{}{
			"announcement_id": announcement.ID,
			"title":           announcement.Title,
			"priority":        announcement.Priority,
		})
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish announcement event", "announcement_id", announcement.ID, "error", err)
		}
	}

	return announcement, nil
}

func (s *announcementService) ListRecent(ctx context.Context) ([]*models.Announcement, error) {
	announcements, err := s.repo.Announcement().ListRecent(ctx, recentAnnouncementLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return announcements, nil
}
