package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
)

type ApplicationPostgreSQL struct {
	db *gorm.DB
}

func NewApplicationPostgreSQL(db *gorm.DB) repositories.ApplicationRepository {
	return &ApplicationPostgreSQL{db: db}
}

func (a *ApplicationPostgreSQL) Create(ctx context.Context, application *models.Application) error {
	return a.db.WithContext(ctx).Create(application).Error
}

func (a *ApplicationPostgreSQL) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	result := a.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (a *ApplicationPostgreSQL) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var application models.Application
	if err := a.db.WithContext(ctx).First(&application, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (a *ApplicationPostgreSQL) GetByDriveAndUser(ctx context.Context, driveID, userID string) (*models.Application, error) {
	var application models.Application
	if err := a.db.WithContext(ctx).First(&application, "drive_id = ? AND user_id = ?", driveID, userID).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (a *ApplicationPostgreSQL) ListByUser(ctx context.Context, userID string) ([]*models.Application, error) {
	var applications []*models.Application
	if err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (a *ApplicationPostgreSQL) ListByDrive(ctx context.Context, driveID string) ([]*models.Application, error) {
	var applications []*models.Application
	if err := a.db.WithContext(ctx).
		Where("drive_id = ?", driveID).
		Order("applied_at ASC").
		Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}
