package dto

import (
	"github.com/hiboard/hiboard-api/internal/models"
)

// UserDTO represents a user in API requests and responses. Password and
// NewPassword are write-only: credentials live at the identity provider and
// are never persisted or echoed back.
type UserDTO struct {
	ID                  uint64          `json:"id"`
	Email               string          `json:"email" binding:"omitempty,email"`
	Password            string          `json:"password,omitempty"`
	NewPassword         string          `json:"new_password,omitempty"`
	FirstName           string          `json:"first_name"`
	LastName            string          `json:"last_name"`
	Role                models.UserRole `json:"role"`
	Department          string          `json:"department"`
	CompanyID           uint64          `json:"company_id"`
	ManagerID           *uint64         `json:"manager_id"`
	TotalActivities     int64           `json:"total_activities"`
	CompletedActivities int64           `json:"completed_activities"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:         user.ID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Role:       user.Role,
		Department: user.Department,
		CompanyID:  user.CompanyID,
		ManagerID:  user.ManagerID,
	}
}

// ToUserModel converts a UserDTO to a User model for persistence. The
// password fields are intentionally not mapped anywhere.
func ToUserModel(dto UserDTO) models.User {
	return models.User{
		ID:         dto.ID,
		Email:      dto.Email,
		FirstName:  dto.FirstName,
		LastName:   dto.LastName,
		Role:       dto.Role,
		Department: dto.Department,
		CompanyID:  dto.CompanyID,
		ManagerID:  dto.ManagerID,
	}
}
