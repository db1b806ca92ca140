package models

import (
	"time"
)

type DriveStatus string

const (
	DriveActive DriveStatus = "active"
	DriveClosed DriveStatus = "closed"
)

// PlacementDrive is a company's recruitment campaign, authored by admins.
type PlacementDrive struct {
	ID                  string      `json:"id" gorm:"primaryKey;size:36"`
	CompanyName         string      `json:"company_name" gorm:"not null;size:255"`
	CompanyLogo         *string     `json:"company_logo,omitempty" gorm:"size:500"`
	Role                string      `json:"role" gorm:"not null;size:255"`
	Description         string      `json:"description" gorm:"type:text"`
	Eligibility         string      `json:"eligibility" gorm:"type:text"`
	CTC                 string      `json:"ctc" gorm:"size:100"`
	Location            string      `json:"location" gorm:"size:255"`
	ApplicationDeadline time.Time   `json:"application_deadline" gorm:"not null"`
	InterviewDate       *time.Time  `json:"interview_date,omitempty"`
	SkillsRequired      []string    `json:"skills_required" gorm:"serializer:json;type:jsonb"`
	ProcessSteps        []string    `json:"process_steps" gorm:"serializer:json;type:jsonb"`
	Status              DriveStatus `json:"status" gorm:"not null;default:active;size:20;index"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (PlacementDrive) TableName() string {
	return "placement_drives"
}
