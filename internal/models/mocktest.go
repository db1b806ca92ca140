package models

import (
	"time"

	"gorm.io/datatypes"
)

type TestCategory string

const (
	CategoryAptitude  TestCategory = "aptitude"
	CategoryTechnical TestCategory = "technical"
	CategoryCoding    TestCategory = "coding"
)

// TestQuestion is a single multiple-choice question. CorrectAnswer is only
// serialized on the authoritative record; API responses for test takers go
// through Sanitized().
type TestQuestion struct {
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
}

// Sanitized returns a copy safe to serve to test takers.
func (q TestQuestion) Sanitized() TestQuestion {
	q.CorrectAnswer = ""
	return q
}

type MockTest struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	Title     string         `json:"title" gorm:"not null;size:255"`
	Category  TestCategory   `json:"category" gorm:"not null;size:20;index"`
	Duration  int            `json:"duration"` // minutes
	Questions []TestQuestion `json:"questions,omitempty" gorm:"serializer:json;type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
}

func (MockTest) TableName() string {
	return "mock_tests"
}

// TestAttempt is a scored submission. Rows are immutable once created; the
// raw submitted answers are kept verbatim for review.
type TestAttempt struct {
	ID      string         `json:"id" gorm:"primaryKey;size:36"`
	TestID  string         `json:"test_id" gorm:"not null;size:36;index"`
	UserID  string         `json:"user_id" gorm:"not null;size:255;index"`
	Score   int            `json:"score"`
	Total   int            `json:"total"`
	Answers datatypes.JSON `json:"answers" gorm:"type:jsonb"`

	AttemptedAt time.Time `json:"attempted_at" gorm:"index"`

	Test MockTest `json:"-" gorm:"foreignKey:TestID"`
	User User     `json:"-" gorm:"foreignKey:UserID"`
}

func (TestAttempt) TableName() string {
	return "test_attempts"
}
