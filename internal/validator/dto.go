package validator

import (
	"time"
)

// Request DTOs validated at the API boundary. Services alias these types so
// validation rules live in one place.

type ProfileUpdateRequest struct {
	Phone          *string  `json:"phone" validate:"omitempty,max=20"`
	College        *string  `json:"college" validate:"omitempty,max=255"`
	Degree         *string  `json:"degree" validate:"omitempty,max=100"`
	GraduationYear *int     `json:"graduation_year" validate:"omitempty,min=1950,max=2100"`
	Skills         []string `json:"skills" validate:"omitempty,dive,max=100"`
	CGPA           *float64 `json:"cgpa" validate:"omitempty,min=0,max=10"`
	ResumeURL      *string  `json:"resume_url" validate:"omitempty,url,max=500"`
}

type DriveCreateRequest struct {
	CompanyName         string     `json:"company_name" validate:"required,max=255"`
	CompanyLogo         *string    `json:"company_logo" validate:"omitempty,url,max=500"`
	Role                string     `json:"role" validate:"required,max=255"`
	Description         string     `json:"description" validate:"required"`
	Eligibility         string     `json:"eligibility" validate:"required"`
	CTC                 string     `json:"ctc" validate:"required,max=100"`
	Location            string     `json:"location" validate:"required,max=255"`
	ApplicationDeadline time.Time  `json:"application_deadline" validate:"required"`
	InterviewDate       *time.Time `json:"interview_date"`
	SkillsRequired      []string   `json:"skills_required" validate:"omitempty,dive,max=100"`
	ProcessSteps        []string   `json:"process_steps" validate:"omitempty,dive,max=255"`
}

type ApplicationStatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=applied shortlisted rejected selected"`
}

type TestSubmissionRequest struct {
	TestID  string            `json:"test_id" validate:"required,uuid4"`
	Answers []SubmittedAnswer `json:"answers" validate:"required,dive"`
}

// SubmittedAnswer carries the answer text for one question. Position in the
// Answers slice determines which question it is scored against.
type SubmittedAnswer struct {
	Answer string `json:"answer"`
}

type ResourceCreateRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required,max=100"`
	Type        string `json:"type" validate:"required,oneof=pdf video link"`
	URL         string `json:"url" validate:"required,url,max=500"`
}

type AnnouncementCreateRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
	Priority string `json:"priority" validate:"omitempty,oneof=high normal low"`
}
