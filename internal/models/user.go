package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole int

const (
	RoleEmployee UserRole = iota
	RoleManager
	RoleAdmin
)

type User struct {
	ID         uint64         `gorm:"primarykey" json:"id"`
	Email      string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"email"`
	FirstName  string         `gorm:"type:varchar(50)" json:"first_name"`
	LastName   string         `gorm:"type:varchar(50)" json:"last_name"`
	Role       UserRole       `gorm:"not null" json:"role"`
	Department string         `gorm:"not null" json:"department"`
	CompanyID  uint64         `gorm:"not null;index" json:"company_id"`
	ManagerID  *uint64        `gorm:"index" json:"manager_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Company        Company        `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	UserActivities []UserActivity `gorm:"foreignKey:UserID" json:"-"`
}
