package repositories

import "context"

// Repository aggregates all collection-level repositories behind one
// injection point, constructed once at process start.
type Repository interface {
	User() UserRepository
	Session() SessionRepository
	Profile() ProfileRepository
	Drive() DriveRepository
	Application() ApplicationRepository
	MockTest() MockTestRepository
	Attempt() AttemptRepository
	Resource() ResourceRepository
	Announcement() AnnouncementRepository
	Stats() StatsRepository

	Ping(ctx context.Context) error
	Close() error
}
