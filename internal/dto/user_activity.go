package dto

import (
	"time"

	"github.com/hiboard/hiboard-api/internal/models"
)

// UserActivityDTO represents a user-activity assignment in API requests and
// responses
type UserActivityDTO struct {
	ID                 uint64                `json:"id"`
	ActivityID         uint64                `json:"activity_id"`
	UserID             uint64                `json:"user_id"`
	Status             models.ActivityStatus `json:"status"`
	IsOnTime           *bool                 `json:"is_on_time"`
	StartedWorkedOn    *time.Time            `json:"started_worked_on"`
	TimeTookToComplete time.Duration         `json:"time_took_to_complete"`
}

// UserActivityPatchDTO carries the mutable fields of a user activity. Nil
// means the field was not supplied.
type UserActivityPatchDTO struct {
	Status             *models.ActivityStatus `json:"status"`
	IsOnTime           *bool                  `json:"is_on_time"`
	StartedWorkedOn    *time.Time             `json:"started_worked_on"`
	TimeTookToComplete *time.Duration         `json:"time_took_to_complete"`
}

// ToUserActivityDTO converts a UserActivity model to UserActivityDTO
func ToUserActivityDTO(ua models.UserActivity) UserActivityDTO {
	return UserActivityDTO{
		ID:                 ua.ID,
		ActivityID:         ua.ActivityID,
		UserID:             ua.UserID,
		Status:             ua.Status,
		IsOnTime:           ua.IsOnTime,
		StartedWorkedOn:    ua.StartedWorkedOn,
		TimeTookToComplete: ua.TimeTookToComplete,
	}
}

// ToUserActivityModel converts a UserActivityDTO to a UserActivity model
func ToUserActivityModel(dto UserActivityDTO) models.UserActivity {
	return models.UserActivity{
		ID:                 dto.ID,
		ActivityID:         dto.ActivityID,
		UserID:             dto.UserID,
		Status:             dto.Status,
		IsOnTime:           dto.IsOnTime,
		StartedWorkedOn:    dto.StartedWorkedOn,
		TimeTookToComplete: dto.TimeTookToComplete,
	}
}
