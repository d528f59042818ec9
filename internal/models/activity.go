package models

import (
	"time"

	"gorm.io/gorm"
)

type Activity struct {
	ID                 uint64         `gorm:"primarykey" json:"id"`
	Title              string         `gorm:"type:varchar(50)" json:"title"`
	Tag                string         `gorm:"type:varchar(50)" json:"tag"`
	Description        string         `gorm:"type:varchar(4000);not null" json:"description"`
	Week               int            `gorm:"not null" json:"week"`
	TimeEstimation     time.Duration  `gorm:"column:time_estimation" json:"time_estimation"`
	UserAverageTime    time.Duration  `gorm:"column:user_average_time" json:"user_average_time"`
	UserCompletedCount int            `json:"user_completed_count"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	UserActivities []UserActivity `gorm:"foreignKey:ActivityID" json:"-"`
	Templates      []Template     `gorm:"many2many:template_activities" json:"-"`
}
