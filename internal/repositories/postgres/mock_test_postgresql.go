package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
)

type MockTestPostgreSQL struct {
	db *gorm.DB
}

func NewMockTestPostgreSQL(db *gorm.DB) repositories.MockTestRepository {
	return &MockTestPostgreSQL{db: db}
}

func (m *MockTestPostgreSQL) Create(ctx context.Context, test *models.MockTest) error {
	return m.db.WithContext(ctx).Create(test).Error
}

// GetByID returns the authoritative test including correct answers. Callers
// serving test takers must sanitize the questions.
func (m *MockTestPostgreSQL) GetByID(ctx context.Context, id string) (*models.MockTest, error) {
	var test models.MockTest
	if err := m.db.WithContext(ctx).First(&test, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

// ListMetadata returns tests without their question payloads.
func (m *MockTestPostgreSQL) ListMetadata(ctx context.Context) ([]*models.MockTest, error) {
	var tests []*models.MockTest
	if err := m.db.WithContext(ctx).
		Select("id", "title", "category", "duration", "created_at").
		Order("created_at DESC").
		Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

type AttemptPostgreSQL struct {
	db *gorm.DB
}

func NewAttemptPostgreSQL(db *gorm.DB) repositories.AttemptRepository {
	return &AttemptPostgreSQL{db: db}
}

func (a *AttemptPostgreSQL) Create(ctx context.Context, attempt *models.TestAttempt) error {
	return a.db.WithContext(ctx).Create(attempt).Error
}

func (a *AttemptPostgreSQL) ListByUser(ctx context.Context, userID string) ([]*models.TestAttempt, error) {
	var attempts []*models.TestAttempt
	if err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("attempted_at DESC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}
