package services

import (
	"fmt"
	"log/slog"
	"time"

	"context"

	"github.com/google/uuid"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
)

type authService struct {
	repo     repositories.Repository
	identity IdentityExchanger
	logger   *slog.Logger
}

func NewAuthService(repo repositories.Repository, identity IdentityExchanger, logger *slog.Logger) AuthService {
	return &authService{
		repo:     repo,
		identity: identity,
		logger:   logger,
	}
}

func (s *authService) CreateSession(ctx context.Context, sessionID string) (*SessionResult, error) {
	data, err := s.identity.ExchangeSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentityExchangeFailed, err)
	}

	user, err := s.upsertUser(ctx, data.ID, data.Email, data.Name, data.Picture)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &models.UserSession{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		SessionToken: data.SessionToken,
		ExpiresAt:    now.Add(models.SessionTTL),
		CreatedAt:    now,
	}
	if err := s.repo.Session().Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.Info("session created", "user_id", user.ID, "expires_at", session.ExpiresAt)

	return &SessionResult{
		User:         user,
		SessionToken: session.SessionToken,
		ExpiresAt:    session.ExpiresAt,
	}, nil
}

// upsertUser reconciles the identity payload with the users table. First
// sight also creates an empty student profile.
func (s *authService) upsertUser(ctx context.Context, id, email, name string, picture *string) (*models.User, error) {
	existing, err := s.repo.User().GetByEmail(ctx, email)
	if err != nil {
		if !repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}

		user := &models.User{
			ID:        id,
			Email:     email,
			Name:      name,
			Picture:   picture,
			Role:      models.RoleStudent,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.repo.User().Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		profile := &models.StudentProfile{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			Skills:    []string{},
			UpdatedAt: time.Now().UTC(),
		}
		if err := s.repo.Profile().Create(ctx, profile); err != nil {
			return nil, fmt.Errorf("failed to create student profile: %w", err)
		}

		s.logger.Info("new user registered", "user_id", user.ID)
		return user, nil
	}

	// Refresh identity-owned fields; role and created_at stay ours.
	existing.Name = name
	existing.Picture = picture
	if err := s.repo.User().Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return existing, nil
}

func (s *authService) ResolveUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	session, err := s.repo.Session().GetByToken(ctx, token)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSessionInvalid
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	if session.IsExpired(time.Now().UTC()) {
		return nil, ErrSessionExpired
	}

	user, err := s.repo.User().GetByID(ctx, session.UserID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.repo.Session().DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *authService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := s.repo.Session().DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	if removed > 0 {
		s.logger.Info("Removed expired sessions", "count", removed)
	}
	return removed, nil
}
