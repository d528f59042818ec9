package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hiboard/hiboard-api/internal/dto"
	apierrors "github.com/hiboard/hiboard-api/internal/errors"
	"github.com/hiboard/hiboard-api/internal/repository"
	"github.com/hiboard/hiboard-api/internal/utils"
)

// ActivityHandler serves the /api/activities routes.
type ActivityHandler struct {
	activityRepo repository.ActivityRepository
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityRepo repository.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{activityRepo: activityRepo}
}

// ListActivities returns activities, optionally filtered by week or tag
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var filter repository.ActivityFilter
	if raw := c.Query("week"); raw != "" {
		week, err := strconv.Atoi(raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid week")
			return
		}
		filter.Week = &week
	}
	if tag := c.Query("tag"); tag != "" {
		filter.Tag = &tag
	}

	activities, total, err := h.activityRepo.List(c.Request.Context(), filter, params)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	activityDTOs := make([]dto.ActivityDTO, len(activities))
	for i, activity := range activities {
		activityDTOs[i] = dto.ToActivityDTO(activity)
	}

	c.JSON(http.StatusOK, gin.H{
		"data": activityDTOs,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetActivity returns an activity by ID
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	activityID, err := parseIDParam(c, "activityId")
	if err != nil {
		return
	}

	activity, err := h.activityRepo.FindByID(c.Request.Context(), activityID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, dto.ToActivityDTO(*activity))
}

// CreateActivity creates a new activity
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req dto.ActivityDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.Title == "" {
		apierrors.BadRequest(c, "title is required")
		return
	}

	activity := dto.ToActivityModel(req)
	activity.ID = 0

	if err := h.activityRepo.Create(c.Request.Context(), &activity); err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, dto.ToActivityDTO(activity))
}

// UpdateActivity updates the writable fields of an activity
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	activityID, err := parseIDParam(c, "activityId")
	if err != nil {
		return
	}

	var req dto.ActivityDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	activity, err := h.activityRepo.FindByID(c.Request.Context(), activityID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if req.Title != "" {
		activity.Title = req.Title
	}
	activity.Tag = req.Tag
	activity.Description = req.Description
	activity.Week = req.Week
	activity.TimeEstimation = req.TimeEstimation

	if err := h.activityRepo.Update(c.Request.Context(), activity); err != nil {
		respondStoreError(c, err)
		return
	}

	respondData(c, dto.ToActivityDTO(*activity))
}

// DeleteActivity soft deletes an activity
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	activityID, err := parseIDParam(c, "activityId")
	if err != nil {
		return
	}

	if err := h.activityRepo.Delete(c.Request.Context(), activityID); err != nil {
		respondStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
