package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
)

type StatsPostgreSQL struct {
	db *gorm.DB
}

func NewStatsPostgreSQL(db *gorm.DB) repositories.StatsRepository {
	return &StatsPostgreSQL{db: db}
}

func (s *StatsPostgreSQL) GetPlacementStats(ctx context.Context) (*repositories.PlacementStats, error) {
	stats := &repositories.PlacementStats{}

	if err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", models.RoleStudent).
		Count(&stats.TotalStudents).Error; err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}

	if err := s.db.WithContext(ctx).
		Model(&models.PlacementDrive{}).
		Count(&stats.TotalDrives).Error; err != nil {
		return nil, fmt.Errorf("failed to count drives: %w", err)
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Application{}).
		Count(&stats.TotalApplications).Error; err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("status = ?", models.ApplicationSelected).
		Count(&stats.PlacedStudents).Error; err != nil {
		return nil, fmt.Errorf("failed to count placed students: %w", err)
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&stats.StatusBreakdown).Error; err != nil {
		return nil, fmt.Errorf("failed to get status breakdown: %w", err)
	}

	return stats, nil
}
