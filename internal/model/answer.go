package model

import (
	"time"
)

// Answer is one saved free-text answer, keyed by the catalog question key
// ("section-question", zero-based). A row is created on first edit and
// updated in place on every later edit; rows are never deleted.
type Answer struct {
	QuestionKey string    `json:"question_key" gorm:"primaryKey;column:question_key"`
	Answer      string    `json:"answer" gorm:"type:text;not null"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Answer) TableName() string {
	return "answers"
}
