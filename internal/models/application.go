package models

import (
	"time"
)

type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "applied"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationSelected    ApplicationStatus = "selected"
)

// Application is a student's submitted interest in a drive. Unique per
// (drive_id, user_id); status transitions are admin-driven with no state
// machine beyond membership in the enumerated set.
type Application struct {
	ID      string            `json:"id" gorm:"primaryKey;size:36"`
	DriveID string            `json:"drive_id" gorm:"not null;size:36;uniqueIndex:idx_drive_user"`
	UserID  string            `json:"user_id" gorm:"not null;size:255;uniqueIndex:idx_drive_user;index"`
	Status  ApplicationStatus `json:"status" gorm:"not null;default:applied;size:20;index"`

	AppliedAt time.Time `json:"applied_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Drive PlacementDrive `json:"-" gorm:"foreignKey:DriveID"`
	User  User           `json:"-" gorm:"foreignKey:UserID"`
}

func (Application) TableName() string {
	return "applications"
}
