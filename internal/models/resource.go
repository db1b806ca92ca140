package models

import (
	"time"
)

type ResourceType string

const (
	ResourcePDF   ResourceType = "pdf"
	ResourceVideo ResourceType = "video"
	ResourceLink  ResourceType = "link"
)

type Resource struct {
	ID          string       `json:"id" gorm:"primaryKey;size:36"`
	Title       string       `json:"title" gorm:"not null;size:255"`
	Description string       `json:"description" gorm:"type:text"`
	Category    string       `json:"category" gorm:"size:100;index"`
	Type        ResourceType `json:"type" gorm:"not null;size:20"`
	URL         string       `json:"url" gorm:"not null;size:500"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (Resource) TableName() string {
	return "resources"
}
