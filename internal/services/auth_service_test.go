package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/repositories/identity"
)

type stubIdentityExchanger struct {
	data *identity.SessionData
	err  error
}

func (s *stubIdentityExchanger) ExchangeSession(_ context.Context, _ string) (*identity.SessionData, error) {
	return s.data, s.err
}

func newAuthService(repo *memoryRepository, exchanger IdentityExchanger) AuthService {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewAuthService(repo, exchanger, logger)
}

func TestAuthService_CreateSession(t *testing.T) {
	ctx := context.Background()
	picture := "https://example.com/avatar.png"

	t.Run("first login creates user and profile", func(t *testing.T) {
		repo := newMemoryRepository()
		service := newAuthService(repo, &stubIdentityExchanger{
			data: &identity.SessionData{
				ID:           "ext-user-1",
				Email:        "priya@college.edu",
				Name:         "Priya Sharma",
				Picture:      &picture,
				SessionToken: "token-1",
			},
		})

		result, err := service.CreateSession(ctx, "session-id-1")
		if err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
		if result.SessionToken != "token-1" {
			t.Errorf("Expected token-1, got %s", result.SessionToken)
		}
		if result.User.Role != models.RoleStudent {
			t.Errorf("New users must default to student, got %s", result.User.Role)
		}

		profile, err := repo.Profile().GetByUserID(ctx, result.User.ID)
		if err != nil {
			t.Fatalf("Profile should exist after first login: %v", err)
		}
		if profile.Skills == nil || len(profile.Skills) != 0 {
			t.Errorf("Fresh profile should have empty skills, got %v", profile.Skills)
		}

		wantExpiry := time.Now().UTC().Add(models.SessionTTL)
		if diff := result.ExpiresAt.Sub(wantExpiry); diff < -time.Minute || diff > time.Minute {
			t.Errorf("Session expiry off by %v", diff)
		}
	})

	t.Run("repeat login refreshes identity fields", func(t *testing.T) {
		repo := newMemoryRepository()
		exchanger := &stubIdentityExchanger{
			data: &identity.SessionData{
				ID:           "ext-user-1",
				Email:        "priya@college.edu",
				Name:         "Priya Sharma",
				SessionToken: "token-1",
			},
		}
		service := newAuthService(repo, exchanger)

		first, err := service.CreateSession(ctx, "session-id-1")
		if err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}

		// Promote to admin between logins; the next login must not reset it.
		first.User.Role = models.RoleAdmin
		if err := repo.User().Update(ctx, first.User); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		exchanger.data = &identity.SessionData{
			ID:           "ext-user-1",
			Email:        "priya@college.edu",
			Name:         "Priya S.",
			Picture:      &picture,
			SessionToken: "token-2",
		}
		second, err := service.CreateSession(ctx, "session-id-2")
		if err != nil {
			t.Fatalf("Second CreateSession failed: %v", err)
		}

		if second.User.ID != first.User.ID {
			t.Error("Repeat login must reuse the existing user")
		}
		if second.User.Name != "Priya S." {
			t.Errorf("Name should refresh from identity, got %q", second.User.Name)
		}
		if second.User.Role != models.RoleAdmin {
			t.Errorf("Role must survive repeat logins, got %s", second.User.Role)
		}
	})

	t.Run("exchange failure", func(t *testing.T) {
		repo := newMemoryRepository()
		service := newAuthService(repo, &stubIdentityExchanger{err: fmt.Errorf("upstream said no")})

		_, err := service.CreateSession(ctx, "bad-session-id")
		if !errors.Is(err, ErrIdentityExchangeFailed) {
			t.Errorf("Expected ErrIdentityExchangeFailed, got %v", err)
		}
	})
}

func TestAuthService_ResolveUser(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, expiresAt time.Time) (*memoryRepository, AuthService, *models.User) {
		t.Helper()
		repo := newMemoryRepository()
		user := &models.User{ID: "user-1", Email: "a@b.edu", Name: "A", Role: models.RoleStudent}
		if err := repo.User().Create(ctx, user); err != nil {
			t.Fatalf("Create user failed: %v", err)
		}
		session := &models.UserSession{
			ID:           "sess-1",
			UserID:       user.ID,
			SessionToken: "token-1",
			ExpiresAt:    expiresAt,
			CreatedAt:    time.Now().UTC(),
		}
		if err := repo.Session().Create(ctx, session); err != nil {
			t.Fatalf("Create session failed: %v", err)
		}
		return repo, newAuthService(repo, &stubIdentityExchanger{}), user
	}

	t.Run("valid session", func(t *testing.T) {
		_, service, want := setup(t, time.Now().UTC().Add(time.Hour))
		user, err := service.ResolveUser(ctx, "token-1")
		if err != nil {
			t.Fatalf("ResolveUser failed: %v", err)
		}
		if user.ID != want.ID {
			t.Errorf("Expected user %s, got %s", want.ID, user.ID)
		}
	})

	t.Run("empty token", func(t *testing.T) {
		_, service, _ := setup(t, time.Now().UTC().Add(time.Hour))
		if _, err := service.ResolveUser(ctx, ""); !errors.Is(err, ErrNotAuthenticated) {
			t.Errorf("Expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		_, service, _ := setup(t, time.Now().UTC().Add(time.Hour))
		if _, err := service.ResolveUser(ctx, "no-such-token"); !errors.Is(err, ErrSessionInvalid) {
			t.Errorf("Expected ErrSessionInvalid, got %v", err)
		}
	})

	t.Run("expired session", func(t *testing.T) {
		_, service, _ := setup(t, time.Now().UTC().Add(-time.Second))
		if _, err := service.ResolveUser(ctx, "token-1"); !errors.Is(err, ErrSessionExpired) {
			t.Errorf("Expected ErrSessionExpired, got %v", err)
		}
	})

	t.Run("user deleted behind session", func(t *testing.T) {
		repo, service, _ := setup(t, time.Now().UTC().Add(time.Hour))
		delete(repo.users, "user-1")
		if _, err := service.ResolveUser(ctx, "token-1"); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("Expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserSession_ExpiryBoundaryInclusive(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	session := &models.UserSession{ExpiresAt: at}

	if session.IsExpired(at.Add(-time.Nanosecond)) {
		t.Error("Session must be valid just before expires_at")
	}
	if !session.IsExpired(at) {
		t.Error("Session checked exactly at expires_at must be expired")
	}
	if !session.IsExpired(at.Add(time.Nanosecond)) {
		t.Error("Session must be expired after expires_at")
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository()
	service := newAuthService(repo, &stubIdentityExchanger{})

	session := &models.UserSession{
		ID:           "sess-1",
		UserID:       "user-1",
		SessionToken: "token-1",
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
	}
	if err := repo.Session().Create(ctx, session); err != nil {
		t.Fatalf("Create session failed: %v", err)
	}

	if err := service.Logout(ctx, "token-1"); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := repo.Session().GetByToken(ctx, "token-1"); err == nil {
		t.Error("Session should be gone after logout")
	}

	// Logging out again, or with an unknown token, is not an error.
	if err := service.Logout(ctx, "token-1"); err != nil {
		t.Errorf("Repeated logout must be idempotent: %v", err)
	}
	if err := service.Logout(ctx, ""); err != nil {
		t.Errorf("Logout with empty token must be a no-op: %v", err)
	}
}

func TestAuthService_CleanupExpiredSessions(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository()
	service := newAuthService(repo, &stubIdentityExchanger{})

	sessions := []*models.UserSession{
		{ID: "sess-1", UserID: "user-1", SessionToken: "live-token", ExpiresAt: time.Now().UTC().Add(time.Hour)},
		{ID: "sess-2", UserID: "user-1", SessionToken: "stale-token", ExpiresAt: time.Now().UTC().Add(-time.Hour)},
		{ID: "sess-3", UserID: "user-2", SessionToken: "older-token", ExpiresAt: time.Now().UTC().Add(-48 * time.Hour)},
	}
	for _, session := range sessions {
		if err := repo.Session().Create(ctx, session); err != nil {
			t.Fatalf("Create session failed: %v", err)
		}
	}

	removed, err := service.CleanupExpiredSessions(ctx)
	if err != nil {
		t.Fatalf("CleanupExpiredSessions failed: %v", err)
	}
	if removed != 2 {
		t.Errorf("Expected 2 expired sessions removed, got %d", removed)
	}

	if _, err := repo.Session().GetByToken(ctx, "live-token"); err != nil {
		t.Errorf("Live session must survive cleanup: %v", err)
	}
	if _, err := repo.Session().GetByToken(ctx, "stale-token"); err == nil {
		t.Error("Expired session should be gone after cleanup")
	}

	// Nothing left to remove on a second run.
	removed, err = service.CleanupExpiredSessions(ctx)
	if err != nil {
		t.Fatalf("CleanupExpiredSessions failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("Expected no removals on a clean store, got %d", removed)
	}
}
