package model

import (
	"time"
)

// ProgressID is the primary key of the singleton progress row.
const ProgressID = 1

// Progress is the single persistent record of milestone state. Each
// Notified* flag is one-shot: once true it is never reset, and each
// corresponds to at most one email dispatch for the record's lifetime.
type Progress struct {
	ID             uint       `json:"id" gorm:"primarykey"`
	StartedAt      *time.Time `json:"started_at" gorm:"column:started_at"`
	Reached50      bool       `json:"reached_50" gorm:"column:reached_50"`
	SubmittedAt    *time.Time `json:"submitted_at" gorm:"column:submitted_at"`
	NotifiedStart  bool       `json:"notified_start" gorm:"column:notified_start"`
	Notified50     bool       `json:"notified_50" gorm:"column:notified_50"`
	NotifiedSubmit bool       `json:"notified_submit" gorm:"column:notified_submit"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (Progress) TableName() string {
	return "progress"
}
