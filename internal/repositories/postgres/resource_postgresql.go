package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
)

type ResourcePostgreSQL struct {
	db *gorm.DB
}

func NewResourcePostgreSQL(db *gorm.DB) repositories.ResourceRepository {
	return &ResourcePostgreSQL{db: db}
}

func (r *ResourcePostgreSQL) Create(ctx context.Context, resource *models.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *ResourcePostgreSQL) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Resource{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ResourcePostgreSQL) List(ctx context.Context) ([]*models.Resource, error) {
	var resources []*models.Resource
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(defaultListLimit).
		Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

type AnnouncementPostgreSQL struct {
	db *gorm.DB
}

func NewAnnouncementPostgreSQL(db *gorm.DB) repositories.AnnouncementRepository {
	return &AnnouncementPostgreSQL{db: db}
}

func (a *AnnouncementPostgreSQL) Create(ctx context.Context, announcement *models.Announcement) error {
	return a.db.WithContext(ctx).Create(announcement).Error
}

func (a *AnnouncementPostgreSQL) ListRecent(ctx context.Context, limit int) ([]*models.Announcement, error) {
	var announcements []*models.Announcement
	if err := a.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}
