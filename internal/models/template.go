package models

import (
	"time"

	"gorm.io/gorm"
)

// Template is a named bundle of activities that can be bulk-assigned to a user.
type Template struct {
	ID         uint64         `gorm:"primarykey" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	Department string         `gorm:"not null" json:"department"`
	CompanyID  uint64         `gorm:"not null;index" json:"company_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Company    Company    `gorm:"foreignKey:CompanyID" json:"-"`
	Activities []Activity `gorm:"many2many:template_activities" json:"activities,omitempty"`
}
