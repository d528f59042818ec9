package dto

import (
	"time"

	"github.com/hiboard/hiboard-api/internal/models"
)

// ActivityDTO represents an activity in API requests and responses
type ActivityDTO struct {
	ID                 uint64        `json:"id"`
	Title              string        `json:"title" binding:"omitempty,max=50"`
	Tag                string        `json:"tag" binding:"omitempty,max=50"`
	Description        string        `json:"description" binding:"omitempty,max=4000"`
	Week               int           `json:"week"`
	TimeEstimation     time.Duration `json:"time_estimation"`
	UserAverageTime    time.Duration `json:"user_average_time"`
	UserCompletedCount int           `json:"user_completed_count"`
}

// ToActivityDTO converts an Activity model to ActivityDTO
func ToActivityDTO(activity models.Activity) ActivityDTO {
	return ActivityDTO{
		ID:                 activity.ID,
		Title:              activity.Title,
		Tag:                activity.Tag,
		Description:        activity.Description,
		Week:               activity.Week,
		TimeEstimation:     activity.TimeEstimation,
		UserAverageTime:    activity.UserAverageTime,
		UserCompletedCount: activity.UserCompletedCount,
	}
}

// ToActivityModel converts an ActivityDTO to an Activity model
func ToActivityModel(dto ActivityDTO) models.Activity {
	return models.Activity{
		ID:                 dto.ID,
		Title:              dto.Title,
		Tag:                dto.Tag,
		Description:        dto.Description,
		Week:               dto.Week,
		TimeEstimation:     dto.TimeEstimation,
		UserAverageTime:    dto.UserAverageTime,
		UserCompletedCount: dto.UserCompletedCount,
	}
}
