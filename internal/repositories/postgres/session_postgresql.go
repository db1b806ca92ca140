package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/MehulChauhan-07/placement-pro/internal/cache"
	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
)

type SessionPostgreSQL struct {
	db          *gorm.DB
	cacheHelper *cache.CacheHelper
}

func NewSessionPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.SessionRepository {
	return &SessionPostgreSQL{
		db:          db,
		cacheHelper: cache.NewCacheHelper(redisClient, cache.SessionCacheConfig.Prefix),
	}
}

func (s *SessionPostgreSQL) Create(ctx context.Context, session *models.UserSession) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *SessionPostgreSQL) GetByToken(ctx context.Context, token string) (*models.UserSession, error) {
	var session models.UserSession

	err := s.cacheHelper.CacheOrExecute(ctx, token, &session, cache.SessionCacheConfig.TTL, func() (interface{}, error) {
		var dbSession models.UserSession
		if err := s.db.WithContext(ctx).First(&dbSession, "session_token = ?", token).Error; err != nil {
			return nil, err
		}
		return &dbSession, nil
	})
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}

func (s *SessionPostgreSQL) DeleteByToken(ctx context.Context, token string) error {
	if err := s.db.WithContext(ctx).Delete(&models.UserSession{}, "session_token = ?", token).Error; err != nil {
		return err
	}
	return s.cacheHelper.Delete(ctx, token)
}

// DeleteExpired removes sessions past their expiry. Run opportunistically;
// expired rows are also rejected at resolve time.
func (s *SessionPostgreSQL) DeleteExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&models.UserSession{}, "expires_at <= ?", time.Now().UTC())
	return result.RowsAffected, result.Error
}
