package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
)

// memoryRepository is a hand-rolled in-memory Repository shared by the
// service tests. Not-found conditions surface as gorm.ErrRecordNotFound so
// repositories.IsNotFoundError behaves the same as against Postgres.
type memoryRepository struct {
	mu sync.Mutex

	users         map[string]*models.User
	sessions      map[string]*models.UserSession
	profiles      map[string]*models.StudentProfile
	drives        map[string]*models.PlacementDrive
	applications  map[string]*models.Application
	tests         map[string]*models.MockTest
	attempts      []*models.TestAttempt
	resources     map[string]*models.Resource
	announcements []*models.Announcement
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		users:        make(map[string]*models.User),
		sessions:     make(map[string]*models.UserSession),
		profiles:     make(map[string]*models.StudentProfile),
		drives:       make(map[string]*models.PlacementDrive),
		applications: make(map[string]*models.Application),
		tests:        make(map[string]*models.MockTest),
		resources:    make(map[string]*models.Resource),
	}
}

func (r *memoryRepository) User() repositories.UserRepository                 { return &memoryUserRepo{r} }
func (r *memoryRepository) Session() repositories.SessionRepository           { return &memorySessionRepo{r} }
func (r *memoryRepository) Profile() repositories.ProfileRepository           { return &memoryProfileRepo{r} }
func (r *memoryRepository) Drive() repositories.DriveRepository               { return &memoryDriveRepo{r} }
func (r *memoryRepository) Application() repositories.ApplicationRepository   { return &memoryApplicationRepo{r} }
func (r *memoryRepository) MockTest() repositories.MockTestRepository         { return &memoryMockTestRepo{r} }
func (r *memoryRepository) Attempt() repositories.AttemptRepository           { return &memoryAttemptRepo{r} }
func (r *memoryRepository) Resource() repositories.ResourceRepository         { return &memoryResourceRepo{r} }
func (r *memoryRepository) Announcement() repositories.AnnouncementRepository { return &memoryAnnouncementRepo{r} }
func (r *memoryRepository) Stats() repositories.StatsRepository               { return &memoryStatsRepo{r} }

func (r *memoryRepository) Ping(_ context.Context) error { return nil }
func (r *memoryRepository) Close() error                 { return nil }

// ===== USERS =====

type memoryUserRepo struct{ r *memoryRepository }

func (m *memoryUserRepo) Create(_ context.Context, user *models.User) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	m.r.users[user.ID] = user
	return nil
}

func (m *memoryUserRepo) Update(_ context.Context, user *models.User) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	if _, ok := m.r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.r.users[user.ID] = user
	return nil
}

func (m *memoryUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	user, ok := m.r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *memoryUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	for _, user := range m.r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ===== SESSIONS =====

type memorySessionRepo struct{ r *memoryRepository }

func (m *memorySessionRepo) Create(_ context.Context, session *models.UserSession) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	m.r.sessions[session.SessionToken] = session
	return nil
}

func (m *memorySessionRepo) GetByToken(_ context.Context, token string) (*models.UserSession, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	session, ok := m.r.sessions[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return session, nil
}

func (m *memorySessionRepo) DeleteByToken(_ context.Context, token string) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	delete(m.r.sessions, token)
	return nil
}

func (m *memorySessionRepo) DeleteExpired(_ context.Context) (int64, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	now := time.Now().UTC()
	var deleted int64
	for token, session := range m.r.sessions {
		if session.IsExpired(now) {
			delete(m.r.sessions, token)
			deleted++
		}
	}
	return deleted, nil
}

// ===== PROFILES =====

type memoryProfileRepo struct{ r *memoryRepository }

func (m *memoryProfileRepo) Create(_ context.Context, profile *models.StudentProfile) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	m.r.profiles[profile.UserID] = profile
	return nil
}

func (m *memoryProfileRepo) Update(_ context.Context, profile *models.StudentProfile) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	if _, ok := m.r.profiles[profile.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.r.profiles[profile.UserID] = profile
	return nil
}

func (m *memoryProfileRepo) GetByUserID(_ context.Context, userID string) (*models.StudentProfile, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	profile, ok := m.r.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *profile
	if profile.Skills != nil {
		copied.Skills = append([]string{}, profile.Skills...)
	}
	return &copied, nil
}

// ===== DRIVES =====

type memoryDriveRepo struct{ r *memoryRepository }

func (m *memoryDriveRepo) Create(_ context.Context, drive *models.PlacementDrive) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	m.r.drives[drive.ID] = drive
	return nil
}

func (m *memoryDriveRepo) Update(_ context.Context, drive *models.PlacementDrive) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	existing, ok := m.r.drives[drive.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	// Match the Postgres repository contract: status and created_at are
	// never touched by Update.
	drive.Status = existing.Status
	drive.CreatedAt = existing.CreatedAt
	m.r.drives[drive.ID] = drive
	return nil
}

func (m *memoryDriveRepo) Delete(_ context.Context, id string) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	if _, ok := m.r.drives[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.r.drives, id)
	return nil
}

func (m *memoryDriveRepo) GetByID(_ context.Context, id string) (*models.PlacementDrive, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	drive, ok := m.r.drives[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return drive, nil
}

func (m *memoryDriveRepo) List(_ context.Context, filters repositories.DriveFilters) ([]*models.PlacementDrive, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	out := make([]*models.PlacementDrive, 0, len(m.r.drives))
	for _, drive := range m.r.drives {
		if filters.Status != nil && drive.Status != *filters.Status {
			continue
		}
		out = append(out, drive)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if filters.Limit > 0 && len(out) > filters.Limit {
		out = out[:filters.Limit]
	}
	return out, nil
}

// ===== APPLICATIONS =====

type memoryApplicationRepo struct{ r *memoryRepository }

func (m *memoryApplicationRepo) Create(_ context.Context, application *models.Application) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	m.r.applications[application.ID] = application
	return nil
}

func (m *memoryApplicationRepo) UpdateStatus(_ context.Context, id string, status models.ApplicationStatus) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	application, ok := m.r.applications[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	application.Status = status
	application.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memoryApplicationRepo) GetByID(_ context.Context, id string) (*models.Application, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	application, ok := m.r.applications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return application, nil
}

func (m *memoryApplicationRepo) GetByDriveAndUser(_ context.Context, driveID, userID string) (*models.Application, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	for _, application := range m.r.applications {
		if application.DriveID == driveID && application.UserID == userID {
			return application, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryApplicationRepo) ListByUser(_ context.Context, userID string) ([]*models.Application, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	var out []*models.Application
	for _, application := range m.r.applications {
		if application.UserID == userID {
			out = append(out, application)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

func (m *memoryApplicationRepo) ListByDrive(_ context.Context, driveID string) ([]*models.Application, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	var out []*models.Application
	for _, application := range m.r.applications {
		if application.DriveID == driveID {
			out = append(out, application)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.Before(out[j].AppliedAt) })
	return out, nil
}

// ===== MOCK TESTS =====

type memoryMockTestRepo struct{ r *memoryRepository }

func (m *memoryMockTestRepo) Create(_ context.Context, test *models.MockTest) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	m.r.tests[test.ID] = test
	return nil
}

func (m *memoryMockTestRepo) GetByID(_ context.Context, id string) (*models.MockTest, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	test, ok := m.r.tests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// Copy so callers blanking Questions do not corrupt the store.
	copied := *test
	copied.Questions = append([]models.TestQuestion(nil), test.Questions...)
	return &copied, nil
}

func (m *memoryMockTestRepo) ListMetadata(_ context.Context) ([]*models.MockTest, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	out := make([]*models.MockTest, 0, len(m.r.tests))
	for _, test := range m.r.tests {
		copied := *test
		copied.Questions = nil
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ===== ATTEMPTS =====

type memoryAttemptRepo struct{ r *memoryRepository }

func (m *memoryAttemptRepo) Create(_ context.Context, attempt *models.TestAttempt) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	m.r.attempts = append(m.r.attempts, attempt)
	return nil
}

func (m *memoryAttemptRepo) ListByUser(_ context.Context, userID string) ([]*models.TestAttempt, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	var out []*models.TestAttempt
	for _, attempt := range m.r.attempts {
		if attempt.UserID == userID {
			out = append(out, attempt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AttemptedAt.After(out[j].AttemptedAt) })
	return out, nil
}

// ===== RESOURCES =====

type memoryResourceRepo struct{ r *memoryRepository }

func (m *memoryResourceRepo) Create(_ context.Context, resource *models.Resource) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	m.r.resources[resource.ID] = resource
	return nil
}

func (m *memoryResourceRepo) Delete(_ context.Context, id string) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	if _, ok := m.r.resources[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.r.resources, id)
	return nil
}

func (m *memoryResourceRepo) List(_ context.Context) ([]*models.Resource, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	out := make([]*models.Resource, 0, len(m.r.resources))
	for _, resource := range m.r.resources {
		out = append(out, resource)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ===== ANNOUNCEMENTS =====

type memoryAnnouncementRepo struct{ r *memoryRepository }

func (m *memoryAnnouncementRepo) Create(_ context.Context, announcement *models.Announcement) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	m.r.announcements = append(m.r.announcements, announcement)
	return nil
}

func (m *memoryAnnouncementRepo) ListRecent(_ context.Context, limit int) ([]*models.Announcement, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	out := append([]*models.Announcement(nil), m.r.announcements...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ===== STATS =====

type memoryStatsRepo struct{ r *memoryRepository }

func (m *memoryStatsRepo) GetPlacementStats(_ context.Context) (*repositories.PlacementStats, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()

	stats := &repositories.PlacementStats{
		TotalDrives:       int64(len(m.r.drives)),
		TotalApplications: int64(len(m.r.applications)),
	}
	for _, user := range m.r.users {
		if user.Role == models.RoleStudent {
			stats.TotalStudents++
		}
	}
	byStatus := make(map[models.ApplicationStatus]int64)
	for _, application := range m.r.applications {
		byStatus[application.Status]++
	}
	stats.PlacedStudents = byStatus[models.ApplicationSelected]
	for status, count := range byStatus {
		stats.StatusBreakdown = append(stats.StatusBreakdown, repositories.StatusCount{Status: status, Count: count})
	}
	sort.Slice(stats.StatusBreakdown, func(i, j int) bool {
		return stats.StatusBreakdown[i].Status < stats.StatusBreakdown[j].Status
	})
	return stats, nil
}
