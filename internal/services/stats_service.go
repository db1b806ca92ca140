package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
)

type statsService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewStatsService(repo repositories.Repository, logger *slog.Logger) StatsService {
	return &statsService{
		repo:   repo,
		logger: logger,
	}
}

func (s *statsService) GetPlacementStats(ctx context.Context) (*repositories.PlacementStats, error) {
	stats, err := s.repo.Stats().GetPlacementStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get placement stats: %w", err)
	}
	return stats, nil
}
