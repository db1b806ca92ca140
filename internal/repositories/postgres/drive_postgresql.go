package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
)

const defaultListLimit = 100

type DrivePostgreSQL struct {
	db *gorm.DB
}

func NewDrivePostgreSQL(db *gorm.DB) repositories.DriveRepository {
	return &DrivePostgreSQL{db: db}
}

func (d *DrivePostgreSQL) Create(ctx context.Context, drive *models.PlacementDrive) error {
	return d.db.WithContext(ctx).Create(drive).Error
}

// Update replaces the drive's authored fields; status and created_at are
// managed separately and left untouched.
func (d *DrivePostgreSQL) Update(ctx context.Context, drive *models.PlacementDrive) error {
	result := d.db.WithContext(ctx).Model(&models.PlacementDrive{}).
		Where("id = ?", drive.ID).
		Select("*").Omit("id", "status", "created_at").
		Updates(drive)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *DrivePostgreSQL) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&models.PlacementDrive{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *DrivePostgreSQL) GetByID(ctx context.Context, id string) (*models.PlacementDrive, error) {
	var drive models.PlacementDrive
	if err := d.db.WithContext(ctx).First(&drive, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &drive, nil
}

func (d *DrivePostgreSQL) List(ctx context.Context, filters repositories.DriveFilters) ([]*models.PlacementDrive, error) {
	query := d.db.WithContext(ctx).Model(&models.PlacementDrive{})

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var drives []*models.PlacementDrive
	if err := query.Order("created_at DESC").Limit(limit).Find(&drives).Error; err != nil {
		return nil, err
	}
	return drives, nil
}
