package models

import (
	"time"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID      string   `json:"id" gorm:"primaryKey;size:255"`
	Email   string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Name    string   `json:"name" gorm:"not null;size:100"`
	Picture *string  `json:"picture,omitempty" gorm:"size:500"`
	Role    UserRole `json:"role" gorm:"not null;default:student;size:20;index"`

	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
