package models

import (
	"time"
)

type AnnouncementPriority string

const (
	PriorityHigh   AnnouncementPriority = "high"
	PriorityNormal AnnouncementPriority = "normal"
	PriorityLow    AnnouncementPriority = "low"
)

type Announcement struct {
	ID       string               `json:"id" gorm:"primaryKey;size:36"`
	Title    string               `json:"title" gorm:"not null;size:255"`
	Content  string               `json:"content" gorm:"type:text"`
	Priority AnnouncementPriority `json:"priority" gorm:"not null;default:normal;size:20"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (Announcement) TableName() string {
	return "announcements"
}
