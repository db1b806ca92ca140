package models

import (
	"time"
)

// UserSession stores the opaque bearer token handed back by the identity
// provider. Sessions are valid for SessionTTL from creation.
type UserSession struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	UserID       string    `json:"user_id" gorm:"not null;index;size:255"`
	SessionToken string    `json:"session_token" gorm:"uniqueIndex;not null;size:500"`
	ExpiresAt    time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (UserSession) TableName() string {
	return "user_sessions"
}

const SessionTTL = 7 * 24 * time.Hour

// IsExpired reports whether the session is no longer usable. The boundary
// is inclusive: a session checked exactly at expires_at is expired.
func (s *UserSession) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
