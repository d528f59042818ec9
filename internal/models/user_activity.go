package models

import (
	"time"

	"gorm.io/gorm"
)

type ActivityStatus int

const (
	StatusPending ActivityStatus = iota
	StatusDone
)

// UserActivity joins a user to an activity and carries the per-assignment
// completion state.
type UserActivity struct {
	ID                 uint64         `gorm:"primarykey" json:"id"`
	ActivityID         uint64         `gorm:"not null;index" json:"activity_id"`
	UserID             uint64         `gorm:"not null;index" json:"user_id"`
	Status             ActivityStatus `gorm:"not null" json:"status"`
	IsOnTime           *bool          `json:"is_on_time"`
	StartedWorkedOn    *time.Time     `json:"started_worked_on"`
	TimeTookToComplete time.Duration  `gorm:"column:time_took_to_complete" json:"time_took_to_complete"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Activity Activity `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`
	User     User     `gorm:"foreignKey:UserID" json:"-"`
}
