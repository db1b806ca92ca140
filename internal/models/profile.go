package models

import (
	"time"
)

// StudentProfile is 1:1 with User, created empty on first login.
type StudentProfile struct {
	ID             string   `json:"id" gorm:"primaryKey;size:36"`
	UserID         string   `json:"user_id" gorm:"uniqueIndex;not null;size:255"`
	Phone          *string  `json:"phone,omitempty" gorm:"size:20"`
	College        *string  `json:"college,omitempty" gorm:"size:255"`
	Degree         *string  `json:"degree,omitempty" gorm:"size:100"`
	GraduationYear *int     `json:"graduation_year,omitempty"`
	Skills         []string `json:"skills" gorm:"serializer:json;type:jsonb"`
	CGPA           *float64 `json:"cgpa,omitempty"`
	ResumeURL      *string  `json:"resume_url,omitempty" gorm:"size:500"`

	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (StudentProfile) TableName() string {
	return "student_profiles"
}
