package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface
type PostgreSQLRepository struct {
	db          *gorm.DB
	redisClient *redis.Client

	user         repositories.UserRepository
	session      repositories.SessionRepository
	profile      repositories.ProfileRepository
	drive        repositories.DriveRepository
	application  repositories.ApplicationRepository
	mockTest     repositories.MockTestRepository
	attempt      repositories.AttemptRepository
	resource     repositories.ResourceRepository
	announcement repositories.AnnouncementRepository
	stats        repositories.StatsRepository
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	DB          *gorm.DB
	RedisClient *redis.Client
}

// NewPostgreSQLRepository creates a new repository manager with all
// sub-repositories. Session and user lookups are cached in Redis when a
// client is provided.
func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	return &PostgreSQLRepository{
		db:          config.DB,
		redisClient: config.RedisClient,

		user:         NewUserPostgreSQL(config.DB, config.RedisClient),
		session:      NewSessionPostgreSQL(config.DB, config.RedisClient),
		profile:      NewProfilePostgreSQL(config.DB),
		drive:        NewDrivePostgreSQL(config.DB),
		application:  NewApplicationPostgreSQL(config.DB),
		mockTest:     NewMockTestPostgreSQL(config.DB),
		attempt:      NewAttemptPostgreSQL(config.DB),
		resource:     NewResourcePostgreSQL(config.DB),
		announcement: NewAnnouncementPostgreSQL(config.DB),
		stats:        NewStatsPostgreSQL(config.DB),
	}
}

func (r *PostgreSQLRepository) User() repositories.UserRepository                 { return r.user }
func (r *PostgreSQLRepository) Session() repositories.SessionRepository          { return r.session }
func (r *PostgreSQLRepository) Profile() repositories.ProfileRepository          { return r.profile }
func (r *PostgreSQLRepository) Drive() repositories.DriveRepository              { return r.drive }
func (r *PostgreSQLRepository) Application() repositories.ApplicationRepository  { return r.application }
func (r *PostgreSQLRepository) MockTest() repositories.MockTestRepository        { return r.mockTest }
func (r *PostgreSQLRepository) Attempt() repositories.AttemptRepository          { return r.attempt }
func (r *PostgreSQLRepository) Resource() repositories.ResourceRepository        { return r.resource }
func (r *PostgreSQLRepository) Announcement() repositories.AnnouncementRepository {
	return r.announcement
}
func (r *PostgreSQLRepository) Stats() repositories.StatsRepository { return r.stats }

func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql db: %w", err)
	}
	return sqlDB.Close()
}

// RepositoryManager owns the Repository lifecycle.
type RepositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

func NewRepositoryManager(config RepositoryConfig) *RepositoryManager {
	return &RepositoryManager{config: config}
}

func (m *RepositoryManager) Initialize() error {
	if m.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}
	m.repo = NewPostgreSQLRepository(m.config)
	return nil
}

func (m *RepositoryManager) GetRepository() repositories.Repository {
	return m.repo
}
